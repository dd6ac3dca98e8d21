// Package render writes timing datasets into worksheets of an Excel workbook.
package render

import (
	"github.com/xuri/excelize/v2"
)

// Builtin number format IDs (ECMA-376 §18.8.30).
const (
	numFmtTwoDecimal = 2  // 0.00
	numFmtPercent    = 10 // 0.00%
)

// Formats holds the workbook-scoped style IDs shared by every sheet. Styles
// are registered once per workbook and referenced by ID afterwards.
type Formats struct {
	Percent    int
	TwoDecimal int

	// Conditional styles for the percentage columns, one per tier.
	Green  int
	Yellow int
	Red    int
	Black  int
}

// NewFormats registers the shared styles on a workbook.
func NewFormats(f *excelize.File) (*Formats, error) {
	percent, err := f.NewStyle(&excelize.Style{NumFmt: numFmtPercent})
	if err != nil {
		return nil, err
	}
	twoDecimal, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimal})
	if err != nil {
		return nil, err
	}

	fm := &Formats{Percent: percent, TwoDecimal: twoDecimal}

	tiers := []struct {
		id    *int
		style *excelize.Style
	}{
		{&fm.Green, bgStyle("00FF00", "")},
		{&fm.Yellow, bgStyle("FFFF00", "")},
		{&fm.Red, bgStyle("FF0000", "")},
		{&fm.Black, bgStyle("000000", "FFFFFF")},
	}
	for _, tier := range tiers {
		id, err := f.NewConditionalStyle(tier.style)
		if err != nil {
			return nil, err
		}
		*tier.id = id
	}

	return fm, nil
}

func bgStyle(bg, font string) *excelize.Style {
	s := &excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{bg}},
	}
	if font != "" {
		s.Font = &excelize.Font{Color: font}
	}
	return s
}
