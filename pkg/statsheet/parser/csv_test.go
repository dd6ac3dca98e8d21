package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statsheet/pkg/statsheet/models"
)

const sampleCSV = `File,ast,walk,append comments,walk comments,total,file size (bytes)
Foo.java,100,200,300,400,1000,50

Bar.java,10,20,30,40,100,200
Baz.java,1,2,3,4,10,10
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadRecords(t *testing.T) {
	path := writeTemp(t, "stats-sample.csv", sampleCSV)

	records, err := ReadRecords(path)
	require.NoError(t, err)

	// Header dropped, blank line skipped by the CSV reader.
	require.Len(t, records, 3)
	assert.Equal(t, "Foo.java", records[0][0])
	assert.Equal(t, "Baz.java", records[2][0])
}

func TestReadRecordsMissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestReadRecordsEmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")

	records, err := ReadRecords(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParseRows(t *testing.T) {
	records := [][]string{
		{"Foo.java", "100", "200", "300", "400", "1000", "50"},
		{},
		{"Bar.java", "10", "20", "30", "40", "100", "200"},
	}

	rows, err := ParseRows("stats.csv", records)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, models.StatRow{
		File:           "Foo.java",
		AST:            100,
		Walk:           200,
		AppendComments: 300,
		WalkComments:   400,
		Total:          1000,
		FileSizeBytes:  50,
	}, rows[0])
	assert.Equal(t, "Bar.java", rows[1].File)
}

func TestParseRowsErrors(t *testing.T) {
	tests := []struct {
		name   string
		record []string
		field  string
	}{
		{
			name:   "non-numeric stage time",
			record: []string{"Foo.java", "abc", "2", "3", "4", "10", "50"},
			field:  "ast",
		},
		{
			name:   "non-numeric file size",
			record: []string{"Foo.java", "1", "2", "3", "4", "10", "big"},
			field:  "file size",
		},
		{
			name:   "short record",
			record: []string{"Foo.java", "1", "2"},
			field:  "record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRows("stats.csv", [][]string{tt.record})
			require.Error(t, err)

			var rowErr *RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, "stats.csv", rowErr.File)
			assert.Equal(t, 1, rowErr.Line)
			assert.Equal(t, tt.field, rowErr.Field)
		})
	}
}

func TestSortBySize(t *testing.T) {
	rows := []models.StatRow{
		{File: "a", FileSizeBytes: 50},
		{File: "b", FileSizeBytes: 200},
		{File: "c", FileSizeBytes: 10},
		{File: "d", FileSizeBytes: 200},
	}

	SortBySize(rows)

	var order []string
	for _, r := range rows {
		order = append(order, r.File)
	}
	// Descending by size; b before d since the sort is stable.
	assert.Equal(t, []string{"b", "d", "a", "c"}, order)
}

func TestReadDataset(t *testing.T) {
	path := writeTemp(t, "stats-sample.csv", sampleCSV)

	ds, err := ReadDataset(path)
	require.NoError(t, err)

	assert.Equal(t, "sample", ds.Name)
	assert.Equal(t, path, ds.Source)
	require.Len(t, ds.Rows, 3)
	assert.Equal(t, "Bar.java", ds.Rows[0].File) // size 200
	assert.Equal(t, "Foo.java", ds.Rows[1].File) // size 50
	assert.Equal(t, "Baz.java", ds.Rows[2].File) // size 10
}
