package render

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"statsheet/pkg/statsheet/models"
)

// Column layout of a dataset sheet (1-based).
const (
	colFile = iota + 1
	colAST
	colASTPct
	colWalk
	colWalkPct
	colAppendComments
	colAppendCommentsPct
	colWalkComments
	colWalkCommentsPct
	colTotal
	colFileSize
)

// Summary panel columns: one-column gap after the data, then labels, values,
// and the unit marker.
const (
	panelLabelCol = colFileSize + 3
	panelValueCol = panelLabelCol + 1
	panelUnitCol  = panelLabelCol + 2
)

// chartAnchorRow is where the pie chart sits, below the summary panel.
const chartAnchorRow = 8

var headers = []string{
	"File",
	"ast",
	"ast %",
	"walk",
	"walk %",
	"append comments",
	"append comments %",
	"walk comments",
	"walk comments %",
	"total",
	"file size (bytes)",
}

var pctColumns = []int{colASTPct, colWalkPct, colAppendCommentsPct, colWalkCommentsPct}

// WriteDataset renders one dataset onto its own sheet: header, data rows with
// live percentage formulas, tiered conditional formatting, the summary panel,
// and a pie chart of the stage averages. It returns the sheet name for the
// summary sheet to reference later.
func WriteDataset(f *excelize.File, fm *Formats, ds models.Dataset) (string, error) {
	sheet := ds.Name
	if _, err := f.NewSheet(sheet); err != nil {
		return "", err
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", err
		}
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return "", err
		}
	}

	for i, row := range ds.Rows {
		if err := writeRow(f, fm, sheet, i+2, row); err != nil {
			return "", err
		}
	}

	if err := applyTiers(f, fm, sheet, len(ds.Rows)); err != nil {
		return "", err
	}
	if err := writePanel(f, fm, sheet, len(ds.Rows)); err != nil {
		return "", err
	}
	if err := addStagePie(f, sheet); err != nil {
		return "", err
	}

	return sheet, nil
}

func writeRow(f *excelize.File, fm *Formats, sheet string, rowNum int, row models.StatRow) error {
	totalCell, err := excelize.CoordinatesToCellName(colTotal, rowNum)
	if err != nil {
		return err
	}

	set := func(col int, v interface{}) error {
		cell, err := excelize.CoordinatesToCellName(col, rowNum)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}
	// Percentages are written as division formulas against the row's total
	// cell, so the sheet recomputes live if a timing cell is edited.
	pct := func(col, stageCol int) error {
		cell, err := excelize.CoordinatesToCellName(col, rowNum)
		if err != nil {
			return err
		}
		stageCell, err := excelize.CoordinatesToCellName(stageCol, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellFormula(sheet, cell, stageCell+"/"+totalCell); err != nil {
			return err
		}
		return f.SetCellStyle(sheet, cell, cell, fm.Percent)
	}

	if err := set(colFile, row.File); err != nil {
		return err
	}
	values := []struct {
		col int
		v   int64
	}{
		{colAST, row.AST},
		{colWalk, row.Walk},
		{colAppendComments, row.AppendComments},
		{colWalkComments, row.WalkComments},
		{colTotal, row.Total},
		{colFileSize, row.FileSizeBytes},
	}
	for _, c := range values {
		if err := set(c.col, c.v); err != nil {
			return err
		}
	}
	for _, col := range pctColumns {
		if err := pct(col, col-1); err != nil {
			return err
		}
	}
	return nil
}

// applyTiers sets the four-tier background coloring on every percentage
// column. Rules are declared highest threshold first and stop on match, so
// the highest exceeded threshold always wins.
func applyTiers(f *excelize.File, fm *Formats, sheet string, n int) error {
	if n == 0 {
		return nil
	}

	rule := func(style int, threshold string) excelize.ConditionalFormatOptions {
		return excelize.ConditionalFormatOptions{
			Type:       "cell",
			Criteria:   ">",
			Value:      threshold,
			Format:     &style,
			StopIfTrue: true,
		}
	}
	rules := []excelize.ConditionalFormatOptions{
		rule(fm.Black, "0.75"),
		rule(fm.Red, "0.5"),
		rule(fm.Yellow, "0.25"),
		rule(fm.Green, "0"),
	}

	for _, col := range pctColumns {
		top, err := excelize.CoordinatesToCellName(col, 2)
		if err != nil {
			return err
		}
		bottom, err := excelize.CoordinatesToCellName(col, n+1)
		if err != nil {
			return err
		}
		if err := f.SetConditionalFormat(sheet, top+":"+bottom, rules); err != nil {
			return err
		}
	}
	return nil
}

func writePanel(f *excelize.File, fm *Formats, sheet string, n int) error {
	lastRow := n + 1
	if lastRow < 2 {
		lastRow = 2
	}

	colRange := func(col int) (string, error) {
		top, err := excelize.CoordinatesToCellName(col, 2)
		if err != nil {
			return "", err
		}
		bottom, err := excelize.CoordinatesToCellName(col, lastRow)
		if err != nil {
			return "", err
		}
		return top + ":" + bottom, nil
	}
	avg := func(col int) (string, error) {
		r, err := colRange(col)
		if err != nil {
			return "", err
		}
		return "AVERAGE(" + r + ")", nil
	}

	totalRange, err := colRange(colTotal)
	if err != nil {
		return err
	}

	entries := []struct {
		label string
		col   int // averaged column; 0 means the total formula below
		style int
	}{
		{label: "Average AST time", col: colAST},
		{label: "AST creation", col: colASTPct, style: fm.Percent},
		{label: "Walk", col: colWalkPct, style: fm.Percent},
		{label: "Append Comments", col: colAppendCommentsPct, style: fm.Percent},
		{label: "Walk Comments", col: colWalkCommentsPct, style: fm.Percent},
		{label: "Total", style: fm.TwoDecimal},
	}

	for i, e := range entries {
		labelCell, err := excelize.CoordinatesToCellName(panelLabelCol, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, labelCell, e.label); err != nil {
			return err
		}

		formula := "SUM(" + totalRange + ")/1000/1000" // nanoseconds to ms
		if e.col != 0 {
			if formula, err = avg(e.col); err != nil {
				return err
			}
		}
		valueCell, err := excelize.CoordinatesToCellName(panelValueCol, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellFormula(sheet, valueCell, formula); err != nil {
			return err
		}
		if e.style != 0 {
			if err := f.SetCellStyle(sheet, valueCell, valueCell, e.style); err != nil {
				return err
			}
		}
	}

	unitCell, err := excelize.CoordinatesToCellName(panelUnitCol, len(entries))
	if err != nil {
		return err
	}
	return f.SetCellStr(sheet, unitCell, "ms")
}

// addStagePie charts the four stage-percentage averages from the summary
// panel (rows 2-5: the percentage entries).
func addStagePie(f *excelize.File, sheet string) error {
	categories, err := absRange(sheet, panelLabelCol, 2, 5)
	if err != nil {
		return err
	}
	values, err := absRange(sheet, panelValueCol, 2, 5)
	if err != nil {
		return err
	}
	anchor, err := excelize.CoordinatesToCellName(panelLabelCol, chartAnchorRow)
	if err != nil {
		return err
	}

	return f.AddChart(sheet, anchor, &excelize.Chart{
		Type: excelize.Pie,
		Series: []excelize.ChartSeries{{
			Name:       "stage share",
			Categories: categories,
			Values:     values,
		}},
	})
}

// absRange builds an absolute single-column range reference like
// "'sheet'!$N$2:$N$5".
func absRange(sheet string, col, top, bottom int) (string, error) {
	topCell, err := excelize.CoordinatesToCellName(col, top, true)
	if err != nil {
		return "", err
	}
	bottomCell, err := excelize.CoordinatesToCellName(col, bottom, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s!%s:%s", quoteSheet(sheet), topCell, bottomCell), nil
}

// quoteSheet quotes a sheet name for use in a formula reference. Names are
// always quoted since they derive from arbitrary file names.
func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
