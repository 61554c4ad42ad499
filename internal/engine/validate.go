package engine

import (
	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

// ValidateBeam checks the beam geometry itself: a positive span and,
// for a simply supported beam, two distinct supports. The reaction
// solver divides by the support distance, so a degenerate support
// span must be rejected here.
func ValidateBeam(b model.Beam) error {
	if b.Length <= 0 {
		return NewValidationError(KindInvalidSpan, "beam length must be positive, got %g m", b.Length)
	}
	if b.Support == model.SimplySupported && b.SupportA == b.SupportB {
		return NewValidationError(KindDegenerateSupportSpan,
			"supports A and B coincide at %g m", b.SupportA)
	}
	return nil
}

// ValidateLoad checks a candidate load against the beam bounds.
// Distributed loads are expected to be normalized (Start <= End)
// before validation; ValidateLoad does not reorder ranges itself.
func ValidateLoad(b model.Beam, l model.Load) error {
	if err := ValidateBeam(b); err != nil {
		return err
	}

	switch ld := l.(type) {
	case model.PointLoad:
		if ld.Location < 0 || ld.Location > b.Length {
			return NewValidationError(KindOutOfBounds,
				"location %g m is outside beam (0-%g m)", ld.Location, b.Length)
		}
	case model.UniformLoad:
		return validateRange(b, ld.Start, ld.End)
	case model.VaryingLoad:
		return validateRange(b, ld.Start, ld.End)
	default:
		return NewValidationError(KindInvalidInput, "unknown load kind %T", l)
	}
	return nil
}

func validateRange(b model.Beam, start, end float64) error {
	if start < 0 || end > b.Length {
		return NewValidationError(KindOutOfBounds,
			"range %g-%g m is outside beam (0-%g m)", start, end, b.Length)
	}
	if start == end {
		return NewValidationError(KindDegenerateRange,
			"start and end cannot be the same point (%g m)", start)
	}
	return nil
}
