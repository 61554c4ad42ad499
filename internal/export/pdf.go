package export

import (
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

// reportTableRows caps the station table in the PDF; the full series
// belongs in the CSV/XLSX exports, the report shows an excerpt.
const reportTableRows = 25

// WriteReport writes a one-page PDF summary of the analysis: the
// beam geometry, the load list, the reactions and a station excerpt.
func WriteReport(b model.Beam, loads []model.Load, res *model.AnalysisResult, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Beam Analysis Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Structure")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Span: %g m    Support type: %s", b.Length, b.Support))
	pdf.Ln(6)
	if b.Support == model.Cantilever {
		pdf.Cell(0, 6, fmt.Sprintf("Fixed support at %g m, free end at %g m", b.SupportA, b.Length))
	} else {
		pdf.Cell(0, 6, fmt.Sprintf("Support A at %g m, support B at %g m", b.SupportA, b.SupportB))
	}
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Loads")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	if len(loads) == 0 {
		pdf.Cell(0, 6, "(none)")
		pdf.Ln(6)
	}
	for i, l := range loads {
		pdf.Cell(0, 6, fmt.Sprintf("%d. %s", i+1, l.String()))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Results")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Reaction A: %.2f kN    Reaction B: %.2f kN", res.ReactionA, res.ReactionB))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Fixed-end moment: %.2f kNm    Max moment: %.2f kNm", res.FixedEndMoment, res.MaxMoment))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "Station excerpt")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "B", 9)
	for _, h := range columns {
		pdf.CellFormat(40, 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	step := 1
	if res.Stations() > reportTableRows {
		step = res.Stations() / reportTableRows
	}
	for i := 0; i < res.Stations(); i += step {
		pdf.CellFormat(40, 5, fmt.Sprintf("%.3f", res.X[i]), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 5, fmt.Sprintf("%.3f", res.Shear[i]), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 5, fmt.Sprintf("%.3f", res.Moment[i]), "1", 0, "R", false, 0, "")
		pdf.Ln(5)
	}

	return pdf.OutputFileAndClose(path)
}
