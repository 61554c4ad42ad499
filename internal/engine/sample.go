package engine

import (
	"math"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

// Sample evaluates shear and moment at stations evenly spaced over
// [0, L], both ends inclusive, by superposition of the reactions and
// the loads. A contribution engages only once the station is strictly
// past its position: a load starting exactly at a station is excluded
// there, so the jump of a point load appears just after it, not at it.
func Sample(b model.Beam, loads []model.Load, r Reactions, stations int) (x, shear, moment []float64) {
	x = make([]float64, stations)
	shear = make([]float64, stations)
	moment = make([]float64, stations)

	for i := 0; i < stations; i++ {
		xi := b.Length * float64(i) / float64(stations-1)
		x[i] = xi

		var v, m float64
		if xi > b.SupportA {
			v += r.A
			m += r.A*(xi-b.SupportA) - r.MomentA
		}
		if b.Support != model.Cantilever && xi > b.SupportB {
			v += r.B
			m += r.B * (xi - b.SupportB)
		}

		for _, l := range loads {
			dv, dm := loadAt(l, xi)
			v -= dv
			m -= dm
		}

		shear[i] = v
		moment[i] = m
	}
	return x, shear, moment
}

// loadAt returns the force and moment a single load exerts at station
// x, clipped to the part of the load already passed. Both are zero
// until x is strictly past the load.
func loadAt(l model.Load, x float64) (force, moment float64) {
	switch ld := l.(type) {
	case model.PointLoad:
		if x > ld.Location {
			return ld.Magnitude, ld.Magnitude * (x - ld.Location)
		}

	case model.UniformLoad:
		if x > ld.Start {
			ov := math.Min(x, ld.End) - ld.Start
			f := ld.Intensity * ov
			return f, f * (x - (ld.Start + ov/2))
		}

	case model.VaryingLoad:
		if x > ld.Start {
			dx := math.Min(x, ld.End) - ld.Start
			w1 := ld.StartIntensity
			// Intensity at the clipped right edge, interpolated over
			// the full load span.
			wClip := w1 + (ld.EndIntensity-w1)*(dx/(ld.End-ld.Start))
			f := (w1 + wClip) / 2 * dx

			// Trapezoid centroid of the overlapped sub-range, measured
			// from its start. When both intensities are zero the
			// resultant is zero too and the centroid is irrelevant;
			// guard the division anyway.
			var cent float64
			if w1+wClip != 0 {
				cent = (dx / 3) * (2*w1 + wClip) / (w1 + wClip)
			}
			return f, f * (x - (ld.Start + cent))
		}
	}
	return 0, 0
}
