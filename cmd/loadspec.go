package cmd

import (
	"strconv"
	"strings"

	"github.com/SIVAkumar-0801/beam-studio-web/internal/engine"
	"github.com/SIVAkumar-0801/beam-studio-web/internal/model"
)

// Flag formats for loads:
//
//	point  MAG@LOC           10@5
//	udl    W@START:END       5@0:10
//	uvl    W1~W2@START:END   0~10@2:8

func parsePointSpec(spec string) (model.Load, error) {
	mag, rest, ok := strings.Cut(spec, "@")
	if !ok {
		return nil, engine.NewValidationError(engine.KindInvalidInput,
			"point load %q: want MAG@LOC, e.g. 10@5", spec)
	}
	m, err := parseNumber(mag)
	if err != nil {
		return nil, err
	}
	loc, err := parseNumber(rest)
	if err != nil {
		return nil, err
	}
	return model.PointLoad{Magnitude: m, Location: loc}, nil
}

func parseUDLSpec(spec string) (model.Load, error) {
	w, rest, ok := strings.Cut(spec, "@")
	if !ok {
		return nil, engine.NewValidationError(engine.KindInvalidInput,
			"uniform load %q: want W@START:END, e.g. 5@0:10", spec)
	}
	intensity, err := parseNumber(w)
	if err != nil {
		return nil, err
	}
	start, end, err := parseRange(rest)
	if err != nil {
		return nil, err
	}
	return model.UniformLoad{Intensity: intensity, Start: start, End: end}, nil
}

func parseUVLSpec(spec string) (model.Load, error) {
	ws, rest, ok := strings.Cut(spec, "@")
	if !ok {
		return nil, engine.NewValidationError(engine.KindInvalidInput,
			"varying load %q: want W1~W2@START:END, e.g. 0~10@2:8", spec)
	}
	w1s, w2s, ok := strings.Cut(ws, "~")
	if !ok {
		return nil, engine.NewValidationError(engine.KindInvalidInput,
			"varying load %q: want two intensities W1~W2", spec)
	}
	w1, err := parseNumber(w1s)
	if err != nil {
		return nil, err
	}
	w2, err := parseNumber(w2s)
	if err != nil {
		return nil, err
	}
	start, end, err := parseRange(rest)
	if err != nil {
		return nil, err
	}
	return model.VaryingLoad{StartIntensity: w1, EndIntensity: w2, Start: start, End: end}, nil
}

func parseRange(s string) (start, end float64, err error) {
	ss, es, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, engine.NewValidationError(engine.KindInvalidInput,
			"range %q: want START:END, e.g. 2:8", s)
	}
	if start, err = parseNumber(ss); err != nil {
		return 0, 0, err
	}
	if end, err = parseNumber(es); err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, engine.NewValidationError(engine.KindInvalidInput,
			"cannot read %q as a number", s)
	}
	return v, nil
}
