// Package export serializes analysis results to tabular files and
// reports: CSV, XLSX and a PDF summary.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

// Column headers of the tabular exports, one row per sample station.
var columns = []string{"X (m)", "Shear (kN)", "Moment (kNm)"}

// WriteCSV writes the sampled sequences as CSV.
func WriteCSV(res *model.AnalysisResult, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for i := range res.X {
		row := []string{
			formatValue(res.X[i]),
			formatValue(res.Shear[i]),
			formatValue(res.Moment[i]),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the sampled sequences to a CSV file.
func WriteCSVFile(res *model.AnalysisResult, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	if err := WriteCSV(res, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
