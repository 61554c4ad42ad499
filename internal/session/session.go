// Package session owns the mutable load collection across repeated
// analyses. The engine itself is stateless; the session is the
// caller-side list with the add/remove/clear lifecycle, where every
// candidate load is normalized and validated before it is admitted.
package session

import (
	"fmt"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/engine"
	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

// Session holds a beam and its active load set. Insertion order is
// preserved for display; it has no effect on the analysis.
type Session struct {
	beam  model.Beam
	loads []model.Load
}

// New creates a session for the given beam with an empty load set.
func New(beam model.Beam) *Session {
	return &Session{beam: beam}
}

// Beam returns the current beam geometry.
func (s *Session) Beam() model.Beam { return s.beam }

// SetBeam replaces the beam geometry. Already admitted loads are kept
// as-is; they were validated against the beam current at add time.
func (s *Session) SetBeam(b model.Beam) { s.beam = b }

// Add normalizes and validates a candidate load, then appends it.
// On rejection the load set is left unchanged and the validation
// error is returned for display.
func (s *Session) Add(l model.Load) error {
	l = l.Normalize()
	if err := engine.ValidateLoad(s.beam, l); err != nil {
		return err
	}
	s.loads = append(s.loads, l)
	return nil
}

// Remove deletes the load at index i (insertion order).
func (s *Session) Remove(i int) error {
	if i < 0 || i >= len(s.loads) {
		return fmt.Errorf("no load at index %d (have %d)", i, len(s.loads))
	}
	s.loads = append(s.loads[:i], s.loads[i+1:]...)
	return nil
}

// Clear removes all loads.
func (s *Session) Clear() { s.loads = nil }

// Len returns the number of admitted loads.
func (s *Session) Len() int { return len(s.loads) }

// Loads returns a copy of the active load set; callers cannot reach
// into the session's backing slice.
func (s *Session) Loads() []model.Load {
	out := make([]model.Load, len(s.loads))
	copy(out, s.loads)
	return out
}

// Analyze runs the engine on the current beam and load set.
func (s *Session) Analyze(stations int) (*model.AnalysisResult, error) {
	return engine.Analyze(s.beam, s.loads, stations)
}
