// Package statsheet renders per-file parse-timing CSVs into an Excel workbook.
package statsheet

// DefaultOutput is the workbook written when no output path is configured.
const DefaultOutput = "stats.xlsx"

// Options configures workbook building.
type Options struct {
	// Output is the workbook path, overwritten if it exists.
	Output string
}

// DefaultOptions returns default build options.
func DefaultOptions() Options {
	return Options{
		Output: DefaultOutput,
	}
}
