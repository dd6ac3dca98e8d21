package statsheet

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"statsheet/pkg/statsheet/models"
	"statsheet/pkg/statsheet/parser"
	"statsheet/pkg/statsheet/render"
)

// defaultSheet is the sheet excelize seeds a new workbook with.
const defaultSheet = "Sheet1"

// Build reads every input CSV, renders one worksheet per input in argument
// order plus a trailing summary sheet, and writes the workbook to
// opts.Output. Any failure aborts the run before the output file is touched.
func Build(ctx context.Context, inputs []string, opts Options) error {
	log := zerolog.Ctx(ctx)

	if len(inputs) == 0 {
		return ErrNoInput
	}
	if opts.Output == "" {
		opts.Output = DefaultOutput
	}

	// Read everything up front so a bad input fails the run before any
	// output exists.
	datasets := make([]models.Dataset, 0, len(inputs))
	for _, path := range inputs {
		ds, err := parser.ReadDataset(path)
		if err != nil {
			return err // already carries the input path
		}
		datasets = append(datasets, ds)
	}

	f := excelize.NewFile()
	defer f.Close()

	formats, err := render.NewFormats(f)
	if err != nil {
		return fmt.Errorf("registering styles: %w", err)
	}

	names := make([]string, 0, len(datasets))
	keepDefault := false
	for _, ds := range datasets {
		log.Info().Str("dataset", ds.Name).Int("rows", len(ds.Rows)).Msg("building worksheet")
		name, err := render.WriteDataset(f, formats, ds)
		if err != nil {
			return fmt.Errorf("building sheet %s: %w", ds.Name, err)
		}
		if name == defaultSheet {
			keepDefault = true
		}
		names = append(names, name)
	}

	if !keepDefault {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return err
		}
	}

	if err := render.WriteSummary(f, formats, names); err != nil {
		return fmt.Errorf("building summary sheet: %w", err)
	}

	if err := f.SaveAs(opts.Output); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Output, err)
	}
	log.Info().Str("output", opts.Output).Int("sheets", len(names)+1).Msg("workbook written")
	return nil
}
