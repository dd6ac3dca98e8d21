// Package models defines data structures for parse-timing statistics.
package models

import (
	"path/filepath"
	"strings"
)

// MaxSheetNameLen is the longest sheet name the workbook format allows.
const MaxSheetNameLen = 30

// StatRow represents the measured timings for one analyzed file.
type StatRow struct {
	// File is the analyzed file's identifier as it appears in the input.
	File string
	// AST is the AST construction time in nanoseconds.
	AST int64
	// Walk is the tree walk time in nanoseconds.
	Walk int64
	// AppendComments is the comment-append time in nanoseconds.
	AppendComments int64
	// WalkComments is the comment walk time in nanoseconds.
	WalkComments int64
	// Total is the summed stage time in nanoseconds, taken from the input
	// as-is and never recomputed.
	Total int64
	// FileSizeBytes is the analyzed file's size in bytes.
	FileSizeBytes int64
}

// Dataset represents the rows read from one input CSV.
type Dataset struct {
	// Name is the derived sheet name (see SheetName).
	Name string
	// Source is the input file path the rows were read from.
	Source string
	// Rows contains the parsed rows, sorted by file size descending.
	Rows []StatRow
}

// SheetName derives a worksheet name from an input path: the base name with a
// leading "stats-" and a trailing ".csv" stripped, truncated to
// MaxSheetNameLen. Names that collide after truncation are not disambiguated.
func SheetName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimPrefix(name, "stats-")
	name = strings.TrimSuffix(name, ".csv")
	if len(name) > MaxSheetNameLen {
		name = name[:MaxSheetNameLen]
	}
	return name
}
