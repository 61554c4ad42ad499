package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Load
		want Load
	}{
		{
			name: "point load untouched",
			in:   PointLoad{Magnitude: 10, Location: 5},
			want: PointLoad{Magnitude: 10, Location: 5},
		},
		{
			name: "udl already ordered",
			in:   UniformLoad{Intensity: 5, Start: 2, End: 8},
			want: UniformLoad{Intensity: 5, Start: 2, End: 8},
		},
		{
			name: "udl inverted range",
			in:   UniformLoad{Intensity: 5, Start: 8, End: 2},
			want: UniformLoad{Intensity: 5, Start: 2, End: 8},
		},
		{
			name: "uvl inverted range swaps intensities too",
			in:   VaryingLoad{StartIntensity: 10, EndIntensity: 2, Start: 9, End: 3},
			want: VaryingLoad{StartIntensity: 2, EndIntensity: 10, Start: 3, End: 9},
		},
		{
			name: "uvl ordered range keeps intensities",
			in:   VaryingLoad{StartIntensity: 10, EndIntensity: 2, Start: 3, End: 9},
			want: VaryingLoad{StartIntensity: 10, EndIntensity: 2, Start: 3, End: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestLoadString(t *testing.T) {
	assert.Equal(t, "POINT: 10 kN @ 5 m", PointLoad{Magnitude: 10, Location: 5}.String())
	assert.Equal(t, "UDL: 5 kN/m over 2-8 m", UniformLoad{Intensity: 5, Start: 2, End: 8}.String())
	assert.Equal(t, "UVL: 0->10 kN/m over 2-8 m",
		VaryingLoad{StartIntensity: 0, EndIntensity: 10, Start: 2, End: 8}.String())
}

func TestAnalysisResultStations(t *testing.T) {
	r := AnalysisResult{X: make([]float64, 500)}
	assert.Equal(t, 500, r.Stations())
}
