package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/engine"
	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

func testBeam() model.Beam {
	return model.Beam{Length: 10, Support: model.SimplySupported, SupportA: 0, SupportB: 10}
}

func TestSession_AddAndAnalyze(t *testing.T) {
	s := New(testBeam())
	require.NoError(t, s.Add(model.PointLoad{Magnitude: 10, Location: 5}))
	require.Equal(t, 1, s.Len())

	res, err := s.Analyze(model.DefaultStations)
	require.NoError(t, err)
	assert.InDelta(t, 5, res.ReactionA, 1e-9)
	assert.InDelta(t, 5, res.ReactionB, 1e-9)
}

func TestSession_RejectedLoadLeavesSetUnchanged(t *testing.T) {
	s := New(testBeam())
	require.NoError(t, s.Add(model.PointLoad{Magnitude: 10, Location: 5}))

	err := s.Add(model.PointLoad{Magnitude: 3, Location: 15})
	require.Error(t, err)
	assert.Equal(t, engine.KindOutOfBounds, engine.KindOf(err))
	assert.Equal(t, 1, s.Len())

	// The analysis still runs on the valid set.
	res, err := s.Analyze(100)
	require.NoError(t, err)
	assert.InDelta(t, 10, res.ReactionA+res.ReactionB, 1e-9)
}

func TestSession_AddNormalizesInvertedRange(t *testing.T) {
	s := New(testBeam())
	require.NoError(t, s.Add(model.UniformLoad{Intensity: 5, Start: 8, End: 2}))

	loads := s.Loads()
	require.Len(t, loads, 1)
	u := loads[0].(model.UniformLoad)
	assert.Equal(t, 2.0, u.Start)
	assert.Equal(t, 8.0, u.End)
}

func TestSession_RemoveAndClear(t *testing.T) {
	s := New(testBeam())
	require.NoError(t, s.Add(model.PointLoad{Magnitude: 1, Location: 1}))
	require.NoError(t, s.Add(model.PointLoad{Magnitude: 2, Location: 2}))
	require.NoError(t, s.Add(model.PointLoad{Magnitude: 3, Location: 3}))

	require.NoError(t, s.Remove(1))
	loads := s.Loads()
	require.Len(t, loads, 2)
	assert.Equal(t, model.PointLoad{Magnitude: 1, Location: 1}, loads[0])
	assert.Equal(t, model.PointLoad{Magnitude: 3, Location: 3}, loads[1])

	assert.Error(t, s.Remove(5))
	assert.Error(t, s.Remove(-1))

	s.Clear()
	assert.Zero(t, s.Len())
}

func TestSession_LoadsReturnsCopy(t *testing.T) {
	s := New(testBeam())
	require.NoError(t, s.Add(model.PointLoad{Magnitude: 1, Location: 1}))

	loads := s.Loads()
	loads[0] = model.PointLoad{Magnitude: 99, Location: 9}

	assert.Equal(t, model.PointLoad{Magnitude: 1, Location: 1}, s.Loads()[0])
}
