package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSheetName(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "prefix and suffix stripped",
			path:     "stats-parser_a.csv",
			expected: "parser_a",
		},
		{
			name:     "directory components dropped",
			path:     "out/runs/stats-parser_a.csv",
			expected: "parser_a",
		},
		{
			name:     "no prefix",
			path:     "parser_a.csv",
			expected: "parser_a",
		},
		{
			name:     "no suffix",
			path:     "stats-parser_a",
			expected: "parser_a",
		},
		{
			name:     "plain name untouched",
			path:     "baseline",
			expected: "baseline",
		},
		{
			name:     "long name truncated to 30",
			path:     "stats-" + strings.Repeat("x", 35) + ".csv",
			expected: strings.Repeat("x", 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SheetName(tt.path)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, len(got), MaxSheetNameLen)
		})
	}
}
