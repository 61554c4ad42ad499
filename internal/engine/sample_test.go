package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

func TestSample_StationSpacing(t *testing.T) {
	b := simpleBeam(10)
	x, shear, moment := Sample(b, nil, Reactions{}, 11)

	require.Len(t, x, 11)
	require.Len(t, shear, 11)
	require.Len(t, moment, 11)
	assert.Equal(t, 0.0, x[0])
	assert.Equal(t, 10.0, x[10])
	assert.InDelta(t, 1.0, x[1], 1e-12)
}

func TestSample_NoLoadsIsFlatZero(t *testing.T) {
	b := simpleBeam(10)
	r := SolveReactions(b, nil)
	_, shear, moment := Sample(b, nil, r, 101)

	for i := range shear {
		assert.Zero(t, shear[i])
		assert.Zero(t, moment[i])
	}
}

func TestSample_MidspanPointLoad(t *testing.T) {
	b := simpleBeam(10)
	loads := []model.Load{model.PointLoad{Magnitude: 10, Location: 5}}
	r := SolveReactions(b, loads)
	x, shear, moment := Sample(b, loads, r, 11)

	// Nothing has engaged at x = 0: the support sits exactly there
	// and engagement is strictly past the position.
	assert.Zero(t, shear[0])
	assert.Zero(t, moment[0])

	// Left of the load only Ra acts.
	assert.InDelta(t, 5, shear[3], 1e-9)
	assert.InDelta(t, 5*x[3], moment[3], 1e-9)

	// At the load station the load itself is still excluded.
	require.Equal(t, 5.0, x[5])
	assert.InDelta(t, 5, shear[5], 1e-9)
	assert.InDelta(t, 25, moment[5], 1e-9)

	// Just past it the shear flips.
	assert.InDelta(t, -5, shear[6], 1e-9)

	// Free of bending at the right support.
	assert.InDelta(t, 0, moment[10], 1e-9)
}

func TestSample_FullSpanUDL(t *testing.T) {
	b := simpleBeam(10)
	loads := []model.Load{model.UniformLoad{Intensity: 5, Start: 0, End: 10}}
	r := SolveReactions(b, loads)
	x, _, moment := Sample(b, loads, r, 11)

	// Midspan moment of a full-span UDL: w*L^2/8 = 62.5 kNm.
	require.Equal(t, 5.0, x[5])
	assert.InDelta(t, 62.5, moment[5], 1e-9)
	assert.InDelta(t, 0, moment[10], 1e-9)
}

func TestSample_PartialUDLBeyondItsEnd(t *testing.T) {
	// 5 kN/m over [2,4]; past the load the full 10 kN resultant acts
	// at 3 m.
	b := simpleBeam(10)
	loads := []model.Load{model.UniformLoad{Intensity: 5, Start: 2, End: 4}}
	r := SolveReactions(b, loads)
	x, shear, moment := Sample(b, loads, r, 11)

	require.Equal(t, 8.0, x[8])
	assert.InDelta(t, r.A-10, shear[8], 1e-9)
	assert.InDelta(t, r.A*8-10*(8-3), moment[8], 1e-9)
}

func TestSample_VaryingLoadClipped(t *testing.T) {
	// Triangle 0 to 10 kN/m over the whole span. At midspan the
	// engaged slice is a 0-to-5 triangle: 12.5 kN with its centroid
	// 5/3 m from the left end of the slice.
	b := simpleBeam(10)
	loads := []model.Load{model.VaryingLoad{StartIntensity: 0, EndIntensity: 10, Start: 0, End: 10}}
	r := SolveReactions(b, loads)
	x, shear, moment := Sample(b, loads, r, 11)

	require.Equal(t, 5.0, x[5])
	assert.InDelta(t, r.A-12.5, shear[5], 1e-9)
	assert.InDelta(t, r.A*5-12.5*(5-5.0/3.0), moment[5], 1e-9)
}

func TestSample_ZeroIntensityVaryingLoad(t *testing.T) {
	// Both intensities zero: no force anywhere, and the centroid
	// division must not blow up.
	b := simpleBeam(10)
	loads := []model.Load{model.VaryingLoad{StartIntensity: 0, EndIntensity: 0, Start: 2, End: 8}}
	r := SolveReactions(b, loads)
	_, shear, moment := Sample(b, loads, r, 101)

	for i := range shear {
		assert.False(t, shear[i] != shear[i], "NaN shear at station %d", i)
		assert.Zero(t, shear[i])
		assert.Zero(t, moment[i])
	}
}

func TestSample_CantileverTipLoad(t *testing.T) {
	b := model.Beam{Length: 6, Support: model.Cantilever, SupportA: 0, SupportB: 6}
	loads := []model.Load{model.PointLoad{Magnitude: 12, Location: 6}}
	r := SolveReactions(b, loads)
	x, shear, moment := Sample(b, loads, r, 601)

	// Just past the fixed end the moment is Ra*x - Ma, near -72.
	assert.Zero(t, moment[0])
	assert.InDelta(t, 12*x[1]-72, moment[1], 1e-9)
	assert.InDelta(t, -71.88, moment[1], 1e-6)

	// Along the span the shear is the full reaction; at the free end
	// the moment has decayed to zero.
	assert.InDelta(t, 12, shear[300], 1e-9)
	assert.InDelta(t, 0, moment[600], 1e-9)
}

func TestSample_LoadOrderIndependent(t *testing.T) {
	b := simpleBeam(10)
	a := []model.Load{
		model.PointLoad{Magnitude: 4, Location: 3},
		model.UniformLoad{Intensity: 2, Start: 1, End: 7},
		model.VaryingLoad{StartIntensity: 0, EndIntensity: 3, Start: 5, End: 10},
	}
	bLoads := []model.Load{a[2], a[0], a[1]}

	ra := SolveReactions(b, a)
	rb := SolveReactions(b, bLoads)
	require.InDelta(t, ra.A, rb.A, 1e-12)
	require.InDelta(t, ra.B, rb.B, 1e-12)

	_, s1, m1 := Sample(b, a, ra, 101)
	_, s2, m2 := Sample(b, bLoads, rb, 101)
	for i := range s1 {
		assert.InDelta(t, s1[i], s2[i], 1e-9)
		assert.InDelta(t, m1[i], m2[i], 1e-9)
	}
}
