package pythagorean

import (
	"math"

	"Tailor/internal/calc/numeric"
)

type Input struct {
	SideA numeric.Text `json:"side_a"`
	SideB numeric.Text `json:"side_b"`
}

type Result struct {
	Hypotenuse float64 `json:"hypotenuse"`
}

// Calculate returns c = sqrt(a² + b²). Signs are ignored.
func Calculate(in Input) (Result, error) {
	a, err := numeric.Require("side_a", in.SideA)
	if err != nil {
		return Result{}, err
	}
	b, err := numeric.Require("side_b", in.SideB)
	if err != nil {
		return Result{}, err
	}

	c := numeric.Round2(math.Hypot(a, b))
	if err := numeric.Finite(c); err != nil {
		return Result{}, err
	}
	return Result{Hypotenuse: c}, nil
}
