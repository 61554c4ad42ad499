package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

// WriteXLSX writes the analysis to a spreadsheet: an Analysis sheet
// with one row per station and a Summary sheet with the reactions.
func WriteXLSX(res *model.AnalysisResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const analysisSheet = "Analysis"
	if err := f.SetSheetName("Sheet1", analysisSheet); err != nil {
		return err
	}

	for col, header := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(analysisSheet, cell, header); err != nil {
			return err
		}
	}
	for i := range res.X {
		row := i + 2
		values := []float64{res.X[i], res.Shear[i], res.Moment[i]}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(analysisSheet, cell, v); err != nil {
				return err
			}
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	summary := []struct {
		label string
		value float64
	}{
		{"Reaction A (kN)", res.ReactionA},
		{"Reaction B (kN)", res.ReactionB},
		{"Fixed-end Moment (kNm)", res.FixedEndMoment},
		{"Max Moment (kNm)", res.MaxMoment},
		{"Stations", float64(res.Stations())},
	}
	for i, s := range summary {
		row := i + 1
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), s.label); err != nil {
			return err
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), s.value); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
