package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

// ExportShearDiagram exports the shear force diagram to an image file.
func ExportShearDiagram(res *model.AnalysisResult, filename string) error {
	p := plot.New()
	p.Title.Text = "Shear Force Diagram"
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = "Shear (kN)"

	return exportSeries(p, res.X, res.Shear,
		color.RGBA{R: 3, G: 169, B: 244, A: 255},
		color.RGBA{R: 3, G: 169, B: 244, A: 60},
		filename)
}

// ExportMomentDiagram exports the bending moment diagram to an image file.
func ExportMomentDiagram(res *model.AnalysisResult, filename string) error {
	p := plot.New()
	p.Title.Text = "Bending Moment Diagram"
	p.X.Label.Text = "Position (m)"
	p.Y.Label.Text = "Moment (kNm)"

	return exportSeries(p, res.X, res.Moment,
		color.RGBA{R: 255, G: 152, B: 0, A: 255},
		color.RGBA{R: 255, G: 152, B: 0, A: 60},
		filename)
}

// exportSeries draws one sampled series as a line with the area to
// the zero axis filled, plus a grid and a zero reference line.
func exportSeries(p *plot.Plot, xs, ys []float64, lineColor, fillColor color.Color, filename string) error {
	if len(xs) == 0 {
		return fmt.Errorf("no stations to plot")
	}

	// Fill between the curve and the zero axis.
	area := make(plotter.XYs, 0, len(xs)+2)
	area = append(area, plotter.XY{X: xs[0], Y: 0})
	for i := range xs {
		area = append(area, plotter.XY{X: xs[i], Y: ys[i]})
	}
	area = append(area, plotter.XY{X: xs[len(xs)-1], Y: 0})

	fill, err := plotter.NewPolygon(area)
	if err != nil {
		return err
	}
	fill.Color = fillColor
	fill.LineStyle.Width = 0
	p.Add(fill)

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = lineColor
	p.Add(line)

	zero, err := plotter.NewLine(plotter.XYs{
		{X: xs[0], Y: 0},
		{X: xs[len(xs)-1], Y: 0},
	})
	if err != nil {
		return err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)

	p.Add(plotter.NewGrid())

	return saveDiagram(p, 8*vg.Inch, 3*vg.Inch, filename)
}

// ExportSchematic exports the beam schematic (beam line, support
// glyphs, load arrows and distributed-load bands) to an image file.
func ExportSchematic(b model.Beam, loads []model.Load, filename string) error {
	p := plot.New()
	p.Title.Text = "Beam Schematic"
	p.HideAxes()

	p.X.Min = -b.Length * 0.1
	p.X.Max = b.Length * 1.1
	p.Y.Min = -2
	p.Y.Max = 4

	// Beam line.
	beamLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: b.Length, Y: 0},
	})
	if err != nil {
		return err
	}
	beamLine.LineStyle.Width = vg.Points(6)
	beamLine.LineStyle.Color = color.Gray{Y: 158}
	p.Add(beamLine)

	// Supports.
	if b.Support == model.Cantilever {
		wall, err := plotter.NewLine(plotter.XYs{
			{X: b.SupportA, Y: -1},
			{X: b.SupportA, Y: 1},
		})
		if err != nil {
			return err
		}
		wall.LineStyle.Width = vg.Points(6)
		wall.LineStyle.Color = color.Gray{Y: 176}
		p.Add(wall)
	} else {
		supA, err := plotter.NewScatter(plotter.XYs{{X: b.SupportA, Y: -0.2}})
		if err != nil {
			return err
		}
		supA.GlyphStyle.Shape = draw.PyramidGlyph{}
		supA.GlyphStyle.Radius = vg.Points(7)
		supA.GlyphStyle.Color = color.Gray{Y: 176}
		p.Add(supA)

		supB, err := plotter.NewScatter(plotter.XYs{{X: b.SupportB, Y: -0.2}})
		if err != nil {
			return err
		}
		supB.GlyphStyle.Shape = draw.CircleGlyph{}
		supB.GlyphStyle.Radius = vg.Points(6)
		supB.GlyphStyle.Color = color.Gray{Y: 176}
		p.Add(supB)
	}

	// Loads.
	for _, l := range loads {
		switch ld := l.(type) {
		case model.PointLoad:
			arrow, err := plotter.NewLine(plotter.XYs{
				{X: ld.Location, Y: 1.5},
				{X: ld.Location, Y: 0.2},
			})
			if err != nil {
				return err
			}
			arrow.LineStyle.Width = vg.Points(2)
			arrow.LineStyle.Color = color.RGBA{R: 255, G: 82, B: 82, A: 255}
			p.Add(arrow)

			head, err := plotter.NewScatter(plotter.XYs{{X: ld.Location, Y: 0.2}})
			if err != nil {
				return err
			}
			head.GlyphStyle.Shape = draw.PyramidGlyph{}
			head.GlyphStyle.Radius = vg.Points(4)
			head.GlyphStyle.Color = color.RGBA{R: 255, G: 82, B: 82, A: 255}
			p.Add(head)

		case model.UniformLoad:
			band, err := plotter.NewPolygon(plotter.XYs{
				{X: ld.Start, Y: 0.3},
				{X: ld.End, Y: 0.3},
				{X: ld.End, Y: 0.8},
				{X: ld.Start, Y: 0.8},
			})
			if err != nil {
				return err
			}
			band.Color = color.RGBA{R: 3, G: 169, B: 244, A: 128}
			p.Add(band)

		case model.VaryingLoad:
			// Band height tracks the intensity at each end.
			h1 := 0.3 + ld.StartIntensity/50
			h2 := 0.3 + ld.EndIntensity/50
			band, err := plotter.NewPolygon(plotter.XYs{
				{X: ld.Start, Y: 0.3},
				{X: ld.End, Y: 0.3},
				{X: ld.End, Y: h2},
				{X: ld.Start, Y: h1},
			})
			if err != nil {
				return err
			}
			band.Color = color.RGBA{R: 255, G: 152, B: 0, A: 128}
			p.Add(band)
		}
	}

	return saveDiagram(p, 8*vg.Inch, 2.5*vg.Inch, filename)
}

// saveDiagram writes the plot with the format chosen by the file
// extension, defaulting to png, creating the directory if needed.
func saveDiagram(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
