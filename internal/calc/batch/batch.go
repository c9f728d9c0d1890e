package batch

import (
	"errors"
	"fmt"

	"Tailor/internal/calc/catalog"
	"Tailor/internal/calc/frill"
	"Tailor/internal/calc/numeric"
	"Tailor/internal/calc/pythagorean"
	"Tailor/internal/calc/ratio"
	"Tailor/internal/calc/skirt"
)

var ErrEmpty = errors.New("no items")

// Item carries the raw form fields of one calculation. Only the fields the
// chosen kind reads are used.
type Item struct {
	Kind   catalog.Kind            `json:"kind"`
	Fields map[string]numeric.Text `json:"fields"`
}

type Outcome struct {
	Kind   catalog.Kind `json:"kind"`
	Result any          `json:"result,omitempty"`
	Error  string       `json:"error,omitempty"`
}

type Input struct {
	Items []Item `json:"items"`
}

type Result struct {
	Computed int       `json:"computed"`
	Skipped  int       `json:"skipped"`
	Outcomes []Outcome `json:"outcomes"`
}

// Calculate runs every item independently; a bad item never aborts the rest.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, ErrEmpty
	}
	out := Result{Outcomes: make([]Outcome, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := Run(item)
		o := Outcome{Kind: item.Kind}
		if err != nil {
			o.Error = err.Error()
			out.Skipped++
		} else {
			o.Result = res
			out.Computed++
		}
		out.Outcomes = append(out.Outcomes, o)
	}
	return out, nil
}

// Run dispatches one item to its calculator.
func Run(item Item) (any, error) {
	f := item.Fields
	switch item.Kind {
	case catalog.KindSkirt:
		return skirt.Calculate(skirt.Input{Waist: f["waist"], Angle: f["angle"], Length: f["length"]})
	case catalog.KindFrill:
		return frill.Calculate(frill.Input{ArcLength: f["arc_length"], Angle: f["angle"], Width: f["width"]})
	case catalog.KindRatio:
		return ratio.Calculate(ratio.Input{Known1: f["known1"], Known2: f["known2"], Target: f["target"]})
	case catalog.KindPythagorean:
		return pythagorean.Calculate(pythagorean.Input{SideA: f["side_a"], SideB: f["side_b"]})
	default:
		return nil, fmt.Errorf("unknown calculator %q", item.Kind)
	}
}
