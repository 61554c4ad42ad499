// Package diagram renders the beam schematic and the shear/moment
// diagrams, both as terminal output and as exported image files.
package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

const (
	schematicWidth = 61
	chartWidth     = 72
	chartHeight    = 12
)

// DrawSchematic creates an ASCII beam schematic: one row per load
// above the beam line, then the support glyphs and their positions.
func DrawSchematic(b model.Beam, loads []model.Load) string {
	var sb strings.Builder

	col := func(pos float64) int {
		c := int(pos / b.Length * float64(schematicWidth-1))
		if c < 0 {
			c = 0
		}
		if c > schematicWidth-1 {
			c = schematicWidth - 1
		}
		return c
	}

	sb.WriteString("\n")
	sb.WriteString("  BEAM SCHEMATIC\n")
	sb.WriteString("  ──────────────\n\n")

	for i, l := range loads {
		row := []rune(strings.Repeat(" ", schematicWidth))
		var label string

		switch ld := l.(type) {
		case model.PointLoad:
			row[col(ld.Location)] = '↓'
			label = fmt.Sprintf("%g kN @ %g m", ld.Magnitude, ld.Location)
		case model.UniformLoad:
			for c := col(ld.Start); c <= col(ld.End); c++ {
				row[c] = '▒'
			}
			label = fmt.Sprintf("%g kN/m over %g-%g m", ld.Intensity, ld.Start, ld.End)
		case model.VaryingLoad:
			c0, c1 := col(ld.Start), col(ld.End)
			peak := ld.StartIntensity
			if ld.EndIntensity > peak {
				peak = ld.EndIntensity
			}
			for c := c0; c <= c1; c++ {
				t := 0.0
				if c1 > c0 {
					t = float64(c-c0) / float64(c1-c0)
				}
				w := ld.StartIntensity + t*(ld.EndIntensity-ld.StartIntensity)
				row[c] = shade(w, peak)
			}
			label = fmt.Sprintf("%g→%g kN/m over %g-%g m",
				ld.StartIntensity, ld.EndIntensity, ld.Start, ld.End)
		}

		sb.WriteString(fmt.Sprintf("  %s  %d. %s\n", string(row), i+1, label))
	}
	if len(loads) == 0 {
		sb.WriteString(fmt.Sprintf("  %s  (no loads)\n", strings.Repeat(" ", schematicWidth)))
	}

	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("═", schematicWidth)))

	supports := []rune(strings.Repeat(" ", schematicWidth))
	if b.Support == model.Cantilever {
		supports[col(b.SupportA)] = '█'
		sb.WriteString(fmt.Sprintf("  %s\n", string(supports)))
		sb.WriteString(fmt.Sprintf("  Fixed @ %g m, free end @ %g m\n", b.SupportA, b.Length))
	} else {
		supports[col(b.SupportA)] = '▲'
		supports[col(b.SupportB)] = '●'
		sb.WriteString(fmt.Sprintf("  %s\n", string(supports)))
		sb.WriteString(fmt.Sprintf("  ▲ A @ %g m   ● B @ %g m   span %g m\n",
			b.SupportA, b.SupportB, b.Length))
	}

	return sb.String()
}

// shade maps an intensity to a density character so the taper of a
// varying load stays visible in plain text.
func shade(w, peak float64) rune {
	if peak <= 0 {
		return '░'
	}
	switch ratio := w / peak; {
	case ratio <= 0.34:
		return '░'
	case ratio <= 0.67:
		return '▒'
	default:
		return '▓'
	}
}

// DrawShearChart renders the shear force diagram as a terminal chart.
func DrawShearChart(res *model.AnalysisResult) string {
	return asciigraph.Plot(res.Shear,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("Shear force (kN) along the span"))
}

// DrawMomentChart renders the bending moment diagram as a terminal chart.
func DrawMomentChart(res *model.AnalysisResult) string {
	return asciigraph.Plot(res.Moment,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("Bending moment (kNm) along the span"))
}

// DrawSummaryBox creates a boxed summary for results.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
