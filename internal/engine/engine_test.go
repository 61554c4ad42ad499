package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

func TestAnalyze_MidspanPointLoad(t *testing.T) {
	b := simpleBeam(10)
	loads := []model.Load{model.PointLoad{Magnitude: 10, Location: 5}}

	res, err := Analyze(b, loads, 501)
	require.NoError(t, err)

	assert.Equal(t, 501, res.Stations())
	assert.Len(t, res.Shear, 501)
	assert.Len(t, res.Moment, 501)

	assert.InDelta(t, 5, res.ReactionA, 1e-9)
	assert.InDelta(t, 5, res.ReactionB, 1e-9)
	assert.Zero(t, res.FixedEndMoment)
	assert.InDelta(t, 25, res.MaxMoment, 1e-9)
}

func TestAnalyze_CantileverSignedMaxMoment(t *testing.T) {
	b := model.Beam{Length: 6, Support: model.Cantilever, SupportA: 0, SupportB: 6}
	loads := []model.Load{model.PointLoad{Magnitude: 12, Location: 6}}

	res, err := Analyze(b, loads, model.DefaultStations)
	require.NoError(t, err)

	assert.InDelta(t, 12, res.ReactionA, 1e-9)
	assert.Zero(t, res.ReactionB)
	assert.InDelta(t, 72, res.FixedEndMoment, 1e-9)

	// The hogging moment near the wall dominates; MaxMoment keeps
	// its sign.
	assert.Less(t, res.MaxMoment, 0.0)
	assert.InDelta(t, -72, res.MaxMoment, 0.2)
}

func TestAnalyze_NoLoads(t *testing.T) {
	res, err := Analyze(simpleBeam(10), nil, model.DefaultStations)
	require.NoError(t, err)

	assert.Zero(t, res.ReactionA)
	assert.Zero(t, res.ReactionB)
	assert.Zero(t, res.MaxMoment)
	for i := range res.Shear {
		assert.Zero(t, res.Shear[i])
		assert.Zero(t, res.Moment[i])
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	b := simpleBeam(10)
	loads := []model.Load{
		model.PointLoad{Magnitude: 3, Location: 2.5},
		model.VaryingLoad{StartIntensity: 1, EndIntensity: 4, Start: 1, End: 9},
	}

	r1, err := Analyze(b, loads, 200)
	require.NoError(t, err)
	r2, err := Analyze(b, loads, 200)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
}

func TestAnalyze_InvalidBeam(t *testing.T) {
	_, err := Analyze(model.Beam{Length: 0, Support: model.SimplySupported, SupportB: 1}, nil, 100)
	require.Error(t, err)
	assert.Equal(t, KindInvalidSpan, KindOf(err))

	_, err = Analyze(model.Beam{Length: 10, Support: model.SimplySupported, SupportA: 3, SupportB: 3}, nil, 100)
	require.Error(t, err)
	assert.Equal(t, KindDegenerateSupportSpan, KindOf(err))
}

func TestAnalyze_TooFewStations(t *testing.T) {
	_, err := Analyze(simpleBeam(10), nil, 1)
	require.Error(t, err)
	assert.Equal(t, ErrorKind(""), KindOf(err))
}

func TestAnalyze_DoesNotMutateLoads(t *testing.T) {
	b := simpleBeam(10)
	loads := []model.Load{
		model.UniformLoad{Intensity: 5, Start: 2, End: 8},
		model.PointLoad{Magnitude: 1, Location: 1},
	}
	orig := make([]model.Load, len(loads))
	copy(orig, loads)

	_, err := Analyze(b, loads, 100)
	require.NoError(t, err)
	assert.Equal(t, orig, loads)
}
