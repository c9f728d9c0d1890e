package skirt

import (
	"math"

	"Tailor/internal/calc/numeric"
)

type Input struct {
	Waist  numeric.Text `json:"waist"`
	Angle  numeric.Text `json:"angle"`
	Length numeric.Text `json:"length"`
}

type Result struct {
	InnerRadius        float64 `json:"inner_radius"`
	OuterRadius        float64 `json:"outer_radius"`
	WaistWithAllowance float64 `json:"waist_with_allowance"`
}

// seamAllowance is added to the waist echo. It is zero until the pattern sheet grows an allowance setting.
const seamAllowance = 0.0

// Calculate drafts a flare skirt. The waist is the arc of a circle sector of
// the given angle, so r = waist*360 / (angle*2π); the hem sits length further out.
// Angles are not clamped to (0, 360].
func Calculate(in Input) (Result, error) {
	waist, err := numeric.Require("waist", in.Waist)
	if err != nil {
		return Result{}, err
	}
	angle, err := numeric.Require("angle", in.Angle)
	if err != nil {
		return Result{}, err
	}
	length, err := numeric.Require("length", in.Length)
	if err != nil {
		return Result{}, err
	}

	inner := (waist * 360) / (angle * 2 * math.Pi)
	outer := inner + length
	total := waist + seamAllowance
	res := Result{
		InnerRadius:        numeric.Round2(inner),
		OuterRadius:        numeric.Round2(outer),
		WaistWithAllowance: numeric.Round2(total),
	}
	if err := numeric.Finite(res.InnerRadius, res.OuterRadius, res.WaistWithAllowance); err != nil {
		return Result{}, err
	}
	return res, nil
}
