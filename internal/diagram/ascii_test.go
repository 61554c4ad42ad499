package diagram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

func TestDrawSchematic_SimplySupported(t *testing.T) {
	b := model.Beam{Length: 10, Support: model.SimplySupported, SupportA: 0, SupportB: 10}
	loads := []model.Load{
		model.PointLoad{Magnitude: 10, Location: 5},
		model.UniformLoad{Intensity: 5, Start: 2, End: 8},
		model.VaryingLoad{StartIntensity: 0, EndIntensity: 10, Start: 2, End: 8},
	}

	out := DrawSchematic(b, loads)

	assert.Contains(t, out, "▲")
	assert.Contains(t, out, "●")
	assert.Contains(t, out, "↓")
	assert.Contains(t, out, "10 kN @ 5 m")
	assert.Contains(t, out, "5 kN/m over 2-8 m")
	assert.Contains(t, out, "0→10 kN/m over 2-8 m")
}

func TestDrawSchematic_Cantilever(t *testing.T) {
	b := model.Beam{Length: 6, Support: model.Cantilever, SupportA: 0, SupportB: 6}
	out := DrawSchematic(b, nil)

	assert.Contains(t, out, "█")
	assert.Contains(t, out, "Fixed @ 0 m")
	assert.Contains(t, out, "(no loads)")
}

func TestDrawCharts(t *testing.T) {
	res := &model.AnalysisResult{
		X:      []float64{0, 2.5, 5, 7.5, 10},
		Shear:  []float64{0, 5, 5, -5, -5},
		Moment: []float64{0, 12.5, 25, 12.5, 0},
	}

	shear := DrawShearChart(res)
	require.NotEmpty(t, shear)
	assert.Contains(t, shear, "Shear force (kN)")

	moment := DrawMomentChart(res)
	require.NotEmpty(t, moment)
	assert.Contains(t, moment, "Bending moment (kNm)")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("ANALYSIS SUMMARY", []string{
		"Reaction A  = 5.00 kN",
		"Reaction B  = 5.00 kN",
	})

	assert.Contains(t, out, "ANALYSIS SUMMARY")
	assert.Contains(t, out, "Reaction A  = 5.00 kN")
	assert.Equal(t, 6, strings.Count(out, "\n"))
}
