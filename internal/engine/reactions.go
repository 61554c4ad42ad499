package engine

import (
	"math"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

// Reactions holds the support reactions of a solved beam.
type Reactions struct {
	A       float64 // vertical reaction at support A (kN)
	B       float64 // vertical reaction at support B (kN), 0 for cantilever
	MomentA float64 // fixed-end moment at A (kNm), 0 unless cantilever
}

// SolveReactions computes the support reactions by static equivalence.
// One pass accumulates the total vertical force and the total moment
// about support A, then the support type picks the closed-form split.
// Inputs are assumed validated; the solver does not re-check them.
func SolveReactions(b model.Beam, loads []model.Load) Reactions {
	var fSum, mSum float64

	for _, l := range loads {
		switch ld := l.(type) {
		case model.PointLoad:
			fSum += ld.Magnitude
			mSum += ld.Magnitude * (ld.Location - b.SupportA)

		case model.UniformLoad:
			length := ld.End - ld.Start
			f := ld.Intensity * length
			fSum += f
			mSum += f * (ld.Start + length/2 - b.SupportA)

		case model.VaryingLoad:
			// Rectangle of the lower intensity plus a triangular
			// excess whose centroid sits toward the taller end.
			w1, w2 := ld.StartIntensity, ld.EndIntensity
			length := ld.End - ld.Start
			f1 := math.Min(w1, w2) * length
			f2 := 0.5 * math.Abs(w2-w1) * length
			c1 := ld.Start + length/2 - b.SupportA
			var c2 float64
			if w2 > w1 {
				c2 = ld.Start + (2.0/3.0)*length - b.SupportA
			} else {
				c2 = ld.Start + (1.0/3.0)*length - b.SupportA
			}
			fSum += f1 + f2
			mSum += f1*c1 + f2*c2
		}
	}

	if b.Support == model.Cantilever {
		// The fixed support carries everything; the free end has no
		// reaction, so no second equilibrium equation is needed.
		return Reactions{A: fSum, MomentA: mSum}
	}

	rb := mSum / (b.SupportB - b.SupportA)
	return Reactions{A: fSum - rb, B: rb}
}
