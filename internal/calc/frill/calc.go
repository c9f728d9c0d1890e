package frill

import (
	"math"

	"Tailor/internal/calc/numeric"
)

type Input struct {
	ArcLength numeric.Text `json:"arc_length"`
	Angle     numeric.Text `json:"angle"`
	Width     numeric.Text `json:"width"`
}

type Result struct {
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`
}

// Calculate sizes an annular frill whose inner edge has the given arc length.
// arc = r * angle(rad), solved for r.
func Calculate(in Input) (Result, error) {
	arc, err := numeric.Require("arc_length", in.ArcLength)
	if err != nil {
		return Result{}, err
	}
	angle, err := numeric.Require("angle", in.Angle)
	if err != nil {
		return Result{}, err
	}
	width, err := numeric.Require("width", in.Width)
	if err != nil {
		return Result{}, err
	}

	rad := angle * math.Pi / 180
	inner := arc / rad
	outer := inner + width
	res := Result{
		InnerRadius: numeric.Round2(inner),
		OuterRadius: numeric.Round2(outer),
	}
	if err := numeric.Finite(res.InnerRadius, res.OuterRadius); err != nil {
		return Result{}, err
	}
	return res, nil
}
