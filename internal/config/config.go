// Package config reads beam definition files. A definition is a YAML
// document carrying the beam geometry and an ordered load list:
//
//	beam:
//	  length: 10
//	  support: simply-supported   # or cantilever
//	  support_a: 0
//	  support_b: 10
//	loads:
//	  - type: point
//	    magnitude: 10
//	    location: 5
//	  - type: udl
//	    intensity: 5
//	    start: 2
//	    end: 8
//	  - type: uvl
//	    start_intensity: 0
//	    end_intensity: 10
//	    start: 2
//	    end: 8
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/engine"
	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

// Definition mirrors the YAML document structure.
type Definition struct {
	Beam  BeamDefinition   `yaml:"beam"`
	Loads []LoadDefinition `yaml:"loads"`
}

// BeamDefinition is the geometry block of a definition file.
type BeamDefinition struct {
	Length   float64 `yaml:"length"`
	Support  string  `yaml:"support"`
	SupportA float64 `yaml:"support_a"`
	SupportB float64 `yaml:"support_b"`
}

// LoadDefinition is one entry of the load list, discriminated by Type.
// Only the fields relevant to the type are read; the rest stay zero.
type LoadDefinition struct {
	Type string `yaml:"type"` // point | udl | uvl

	Magnitude float64 `yaml:"magnitude"` // point
	Location  float64 `yaml:"location"`  // point

	Intensity      float64 `yaml:"intensity"`       // udl
	StartIntensity float64 `yaml:"start_intensity"` // uvl
	EndIntensity   float64 `yaml:"end_intensity"`   // uvl
	Start          float64 `yaml:"start"`           // udl, uvl
	End            float64 `yaml:"end"`             // udl, uvl
}

// Parse decodes a definition document into model values. Unparseable
// numeric fields surface as INVALID_INPUT validation errors; the
// returned loads are raw (not yet normalized or validated).
func Parse(data []byte) (model.Beam, []model.Load, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		var te *yaml.TypeError
		if errors.As(err, &te) {
			return model.Beam{}, nil, engine.NewValidationError(engine.KindInvalidInput,
				"definition has non-numeric or mistyped fields: %s", strings.Join(te.Errors, "; "))
		}
		return model.Beam{}, nil, fmt.Errorf("parsing beam definition: %w", err)
	}

	support, err := ParseSupportType(def.Beam.Support)
	if err != nil {
		return model.Beam{}, nil, err
	}

	beam := model.Beam{
		Length:   def.Beam.Length,
		Support:  support,
		SupportA: def.Beam.SupportA,
		SupportB: def.Beam.SupportB,
	}
	if support == model.Cantilever {
		// The free end is the far end of the span; no support B.
		beam.SupportB = beam.Length
	}

	loads := make([]model.Load, 0, len(def.Loads))
	for i, ld := range def.Loads {
		l, err := ld.Load()
		if err != nil {
			return model.Beam{}, nil, fmt.Errorf("load %d: %w", i+1, err)
		}
		loads = append(loads, l)
	}
	return beam, loads, nil
}

// LoadFile reads and parses a definition file from disk.
func LoadFile(path string) (model.Beam, []model.Load, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Beam{}, nil, fmt.Errorf("reading beam definition: %w", err)
	}
	return Parse(data)
}

// Load converts one definition entry into its model variant.
func (d LoadDefinition) Load() (model.Load, error) {
	switch strings.ToLower(strings.TrimSpace(d.Type)) {
	case "point":
		return model.PointLoad{Magnitude: d.Magnitude, Location: d.Location}, nil
	case "udl", "uniform":
		return model.UniformLoad{Intensity: d.Intensity, Start: d.Start, End: d.End}, nil
	case "uvl", "varying":
		return model.VaryingLoad{
			StartIntensity: d.StartIntensity,
			EndIntensity:   d.EndIntensity,
			Start:          d.Start,
			End:            d.End,
		}, nil
	default:
		return nil, engine.NewValidationError(engine.KindInvalidInput,
			"unknown load type %q (want point, udl or uvl)", d.Type)
	}
}

// ParseSupportType maps the definition-file spelling of a support
// type to its model tag. An empty value defaults to simply supported.
func ParseSupportType(s string) (model.SupportType, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "-")) {
	case "", "simply-supported", "simple":
		return model.SimplySupported, nil
	case "cantilever":
		return model.Cantilever, nil
	default:
		return "", engine.NewValidationError(engine.KindInvalidInput,
			"unknown support type %q (want simply-supported or cantilever)", s)
	}
}
