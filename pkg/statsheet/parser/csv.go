// Package parser reads per-file timing statistics from CSV input.
package parser

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"

	"statsheet/pkg/statsheet/models"
)

// fieldNames labels the seven input columns, in order.
var fieldNames = [...]string{
	"file",
	"ast",
	"walk",
	"append comments",
	"walk comments",
	"total",
	"file size",
}

// RowError represents a malformed row in an input CSV.
type RowError struct {
	File  string
	Line  int // 1-based data line, header excluded
	Field string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: row %d: field %q: %v", e.File, e.Line, e.Field, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ReadRecords reads a comma-delimited file and returns its records with the
// header row dropped. No schema validation happens here; malformed records
// surface when ParseRows converts them.
func ReadRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // field-count errors belong to ParseRows

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// ParseRows converts raw CSV records into typed rows. Empty records are
// skipped; any record with the wrong field count or a non-integer numeric
// field is a hard error.
func ParseRows(file string, records [][]string) ([]models.StatRow, error) {
	var rows []models.StatRow
	for i, rec := range records {
		if len(rec) == 0 {
			continue
		}
		if len(rec) != len(fieldNames) {
			return nil, &RowError{
				File: file, Line: i + 1, Field: "record",
				Err: fmt.Errorf("expected %d fields, got %d", len(fieldNames), len(rec)),
			}
		}

		nums := make([]int64, len(rec)-1)
		for j, s := range rec[1:] {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, &RowError{File: file, Line: i + 1, Field: fieldNames[j+1], Err: err}
			}
			nums[j] = n
		}

		rows = append(rows, models.StatRow{
			File:           rec[0],
			AST:            nums[0],
			Walk:           nums[1],
			AppendComments: nums[2],
			WalkComments:   nums[3],
			Total:          nums[4],
			FileSizeBytes:  nums[5],
		})
	}
	return rows, nil
}

// SortBySize sorts rows by file size descending. The sort is stable, so
// equal sizes keep their input order.
func SortBySize(rows []models.StatRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].FileSizeBytes > rows[j].FileSizeBytes
	})
}

// ReadDataset reads one input CSV into a sorted, named Dataset.
func ReadDataset(path string) (models.Dataset, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return models.Dataset{}, err
	}
	rows, err := ParseRows(path, records)
	if err != nil {
		return models.Dataset{}, err
	}
	SortBySize(rows)
	return models.Dataset{
		Name:   models.SheetName(path),
		Source: path,
		Rows:   rows,
	}, nil
}
