// Package engine is the statics core: load validation, support
// reaction solution by equilibrium, and superposition sampling of the
// shear-force and bending-moment distributions along the span.
//
// The engine is a pure function of its inputs. It holds no state
// between invocations, never mutates the load slice it is given, and
// produces bit-for-bit identical results for identical inputs.
package engine

import (
	"fmt"
	"math"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

// Analyze runs the full pipeline: beam validation, reaction solution,
// station sampling and result aggregation. Loads are assumed to have
// passed ValidateLoad already. stations must be at least 2 (both span
// ends are always sampled); pass model.DefaultStations for the normal
// resolution.
func Analyze(b model.Beam, loads []model.Load, stations int) (*model.AnalysisResult, error) {
	if stations < 2 {
		return nil, fmt.Errorf("station count must be at least 2, got %d", stations)
	}
	if err := ValidateBeam(b); err != nil {
		return nil, err
	}

	r := SolveReactions(b, loads)
	x, shear, moment := Sample(b, loads, r, stations)

	// Signed maximum-absolute moment; strict comparison keeps the
	// first occurrence on ties.
	maxM := 0.0
	for _, m := range moment {
		if math.Abs(m) > math.Abs(maxM) {
			maxM = m
		}
	}

	return &model.AnalysisResult{
		X:              x,
		Shear:          shear,
		Moment:         moment,
		ReactionA:      r.A,
		ReactionB:      r.B,
		FixedEndMoment: r.MomentA,
		MaxMoment:      maxM,
	}, nil
}
