// Package model defines the value types shared by the statics engine:
// beam geometry, the supported load kinds and the analysis result.
package model

import "fmt"

// SupportType identifies the support configuration of the beam.
type SupportType string

const (
	// SimplySupported is a beam resting on two vertical-force supports.
	SimplySupported SupportType = "simply-supported"

	// Cantilever is a beam fixed (force and moment) at support A
	// and free at the far end.
	Cantilever SupportType = "cantilever"
)

// Beam describes a single-span beam and its supports.
// All positions are measured from the left end in meters.
type Beam struct {
	Length   float64     // L - total span (m)
	Support  SupportType // support configuration
	SupportA float64     // position of support A (m)
	SupportB float64     // position of support B (m), ignored for cantilever
}

// DefaultStations is the number of sample stations used when the
// caller does not ask for a specific resolution.
const DefaultStations = 500

// Load is a closed set of load kinds: PointLoad, UniformLoad and
// VaryingLoad. The engine matches exhaustively on the concrete type.
type Load interface {
	// Normalize returns the load with an inverted range corrected.
	// Loads must be normalized before validation.
	Normalize() Load

	fmt.Stringer

	isLoad()
}

// PointLoad is a concentrated transverse force.
type PointLoad struct {
	Magnitude float64 // kN
	Location  float64 // m from the left end
}

func (p PointLoad) isLoad() {}

// Normalize is a no-op for point loads; a single position has no range.
func (p PointLoad) Normalize() Load { return p }

func (p PointLoad) String() string {
	return fmt.Sprintf("POINT: %g kN @ %g m", p.Magnitude, p.Location)
}

// UniformLoad is a constant-intensity distributed load (UDL).
type UniformLoad struct {
	Intensity float64 // kN/m
	Start     float64 // m
	End       float64 // m
}

func (u UniformLoad) isLoad() {}

// Normalize swaps Start and End when they were supplied inverted.
func (u UniformLoad) Normalize() Load {
	if u.Start > u.End {
		u.Start, u.End = u.End, u.Start
	}
	return u
}

func (u UniformLoad) String() string {
	return fmt.Sprintf("UDL: %g kN/m over %g-%g m", u.Intensity, u.Start, u.End)
}

// VaryingLoad is a linearly varying distributed load (UVL); the
// intensity runs from StartIntensity at Start to EndIntensity at End.
type VaryingLoad struct {
	StartIntensity float64 // kN/m at Start
	EndIntensity   float64 // kN/m at End
	Start          float64 // m
	End            float64 // m
}

func (v VaryingLoad) isLoad() {}

// Normalize swaps an inverted range. The intensities swap together
// with the positions so the physical taper keeps its direction.
func (v VaryingLoad) Normalize() Load {
	if v.Start > v.End {
		v.Start, v.End = v.End, v.Start
		v.StartIntensity, v.EndIntensity = v.EndIntensity, v.StartIntensity
	}
	return v
}

func (v VaryingLoad) String() string {
	return fmt.Sprintf("UVL: %g->%g kN/m over %g-%g m",
		v.StartIntensity, v.EndIntensity, v.Start, v.End)
}

// AnalysisResult carries the sampled internal-force distributions and
// the support reactions for one analysis run. The three slices are
// parallel: Shear[i] and Moment[i] belong to station X[i].
type AnalysisResult struct {
	X      []float64 // station positions (m), 0..L inclusive
	Shear  []float64 // shear force at each station (kN)
	Moment []float64 // bending moment at each station (kNm)

	ReactionA      float64 // vertical reaction at support A (kN)
	ReactionB      float64 // vertical reaction at support B (kN), 0 for cantilever
	FixedEndMoment float64 // moment reaction at A (kNm), 0 unless cantilever

	// MaxMoment is the signed value of the largest absolute sampled
	// moment; ties keep the first occurrence in sampling order.
	MaxMoment float64
}

// Stations returns the number of sample stations in the result.
func (r *AnalysisResult) Stations() int { return len(r.X) }
