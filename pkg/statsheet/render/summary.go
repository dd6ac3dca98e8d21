package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// SummarySheet is the name of the cross-dataset summary sheet.
const SummarySheet = "Total"

// WriteSummary renders the summary sheet: one row per dataset referencing
// that sheet's grand-total cell, its share of the overall total, an aggregate
// row, and a pie chart over the per-dataset totals. Every referenced sheet
// must already exist; the formulas resolve by name when the file is opened.
func WriteSummary(f *excelize.File, fm *Formats, names []string) error {
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return err
	}

	// The per-dataset grand total lives in the summary panel's value column.
	totalCell, err := excelize.CoordinatesToCellName(panelValueCol, 6, true)
	if err != nil {
		return err
	}

	aggRow := len(names) + 3
	aggCell, err := excelize.CoordinatesToCellName(2, aggRow, true)
	if err != nil {
		return err
	}

	for i, name := range names {
		row := i + 1
		ref := fmt.Sprintf("%s!%s", quoteSheet(name), totalCell)

		nameCell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SummarySheet, nameCell, name); err != nil {
			return err
		}

		msCell, err := excelize.CoordinatesToCellName(2, row)
		if err != nil {
			return err
		}
		if err := f.SetCellFormula(SummarySheet, msCell, ref); err != nil {
			return err
		}

		shareCell, err := excelize.CoordinatesToCellName(3, row)
		if err != nil {
			return err
		}
		if err := f.SetCellFormula(SummarySheet, shareCell, ref+"/"+aggCell); err != nil {
			return err
		}
		if err := f.SetCellStyle(SummarySheet, shareCell, shareCell, fm.Percent); err != nil {
			return err
		}
	}

	aggNameCell, err := excelize.CoordinatesToCellName(1, aggRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStr(SummarySheet, aggNameCell, "Total"); err != nil {
		return err
	}

	sumTop, err := excelize.CoordinatesToCellName(2, 1, true)
	if err != nil {
		return err
	}
	sumBottom, err := excelize.CoordinatesToCellName(2, len(names), true)
	if err != nil {
		return err
	}
	aggFormula, err := excelize.CoordinatesToCellName(2, aggRow)
	if err != nil {
		return err
	}
	if err := f.SetCellFormula(SummarySheet, aggFormula, fmt.Sprintf("SUM(%s:%s)", sumTop, sumBottom)); err != nil {
		return err
	}

	return addTotalPie(f, len(names))
}

func addTotalPie(f *excelize.File, n int) error {
	categories, err := absRange(SummarySheet, 1, 1, n)
	if err != nil {
		return err
	}
	values, err := absRange(SummarySheet, 2, 1, n)
	if err != nil {
		return err
	}

	return f.AddChart(SummarySheet, "A1", &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       "total time",
			Categories: categories,
			Values:     values,
		}},
	})
}
