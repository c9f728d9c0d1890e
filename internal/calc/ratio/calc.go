package ratio

import "Tailor/internal/calc/numeric"

// Input reads as "answer : Known1 = Target : Known2". With Known1=3 and
// Known2=4 (3 on the pattern is 4 in real life), Target=1 gives 0.75.
type Input struct {
	Known1 numeric.Text `json:"known1"`
	Known2 numeric.Text `json:"known2"`
	Target numeric.Text `json:"target"`
}

type Result struct {
	Answer float64 `json:"answer"`
}

func Calculate(in Input) (Result, error) {
	k1, err := numeric.Require("known1", in.Known1)
	if err != nil {
		return Result{}, err
	}
	k2, err := numeric.Require("known2", in.Known2)
	if err != nil {
		return Result{}, err
	}
	t, err := numeric.Require("target", in.Target)
	if err != nil {
		return Result{}, err
	}

	answer := numeric.Round2((t * k1) / k2)
	if err := numeric.Finite(answer); err != nil {
		return Result{}, err
	}
	return Result{Answer: answer}, nil
}
