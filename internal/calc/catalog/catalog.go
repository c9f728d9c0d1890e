// Package catalog describes the calculators for the front-end: which ones
// exist, in menu order, and what each form field asks for.
package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type Kind string

const (
	KindSkirt       Kind = "circular-skirt"
	KindFrill       Kind = "circular-frill"
	KindRatio       Kind = "ratio"
	KindPythagorean Kind = "pythagorean"
)

// Field is a form input or, in Tool.Results, an output line. For outputs
// Hint holds the unit suffix shown next to the value.
type Field struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
	Default     string `json:"default,omitempty"`
	Hint        string `json:"hint,omitempty"`
}

type Tool struct {
	Kind     Kind    `json:"kind"`
	Menu     string  `json:"menu"`
	Title    string  `json:"title"`
	Summary  string  `json:"summary,omitempty"`
	Endpoint string  `json:"endpoint"`
	Fields   []Field `json:"fields"`
	Results  []Field `json:"results"`
	Example  string  `json:"example,omitempty"`
}

var tools = []Tool{
	{
		Kind:     KindSkirt,
		Menu:     "Circular Skirt",
		Title:    "Flare Skirt Pattern Calculator",
		Endpoint: "/api/tools/skirt/calc",
		Fields: []Field{
			{Name: "waist", Label: "Waist Size (cm)", Placeholder: "e.g., 70"},
			{Name: "angle", Label: "Desired Angle (degrees)", Placeholder: "e.g., 180",
				Hint: "90° = quarter circle, 180° = half circle, 360° = full circle"},
			{Name: "length", Label: "Length excluding belt (cm)", Placeholder: "e.g., 60"},
		},
		Results: []Field{
			{Name: "inner_radius", Label: "A (Inner Radius)", Hint: "cm"},
			{Name: "outer_radius", Label: "B (Outer Radius)", Hint: "cm"},
			{Name: "waist_with_allowance", Label: "C (Waist + Allowance)", Hint: "cm"},
		},
	},
	{
		Kind:     KindFrill,
		Menu:     "Circular Frill",
		Title:    "Circular Frill Radius Calculator",
		Endpoint: "/api/tools/frill/calc",
		Fields: []Field{
			{Name: "arc_length", Label: "Desired Arc Length (cm)", Default: "200",
				Hint: "Length where the frill will be attached"},
			{Name: "angle", Label: "Desired Angle (degrees)", Default: "180"},
			{Name: "width", Label: "Frill Width (cm)", Default: "5"},
		},
		Results: []Field{
			{Name: "inner_radius", Label: "Inner Circle Radius A", Hint: "cm"},
			{Name: "outer_radius", Label: "Outer Circle Radius B", Hint: "cm"},
		},
	},
	{
		Kind:     KindRatio,
		Menu:     "Ratio Scale",
		Title:    "Ratio Scale Calculator",
		Summary:  "Use this to scale patterns or create life-size items from references",
		Endpoint: "/api/tools/ratio/calc",
		Fields: []Field{
			{Name: "known1", Label: "Pattern value", Placeholder: "3"},
			{Name: "target", Label: "Target", Placeholder: "1"},
			{Name: "known2", Label: "Real-life value", Placeholder: "4"},
		},
		Results: []Field{
			{Name: "answer", Label: "Result", Hint: "units (same as inputs)"},
		},
		Example: "Example: If 3cm in pattern = 4cm in real life, what is 1cm in pattern?",
	},
	{
		Kind:     KindPythagorean,
		Menu:     "Pythagorean",
		Title:    "Pythagorean Theorem Calculator",
		Summary:  "Calculate beveled edge lengths and diagonal measurements",
		Endpoint: "/api/tools/pythagorean/calc",
		Fields: []Field{
			{Name: "side_a", Label: "Side A (cm)", Placeholder: "e.g., 30"},
			{Name: "side_b", Label: "Side B (cm)", Placeholder: "e.g., 40"},
		},
		Results: []Field{
			{Name: "hypotenuse", Label: "Result", Hint: "cm"},
		},
	},
}

// List returns the calculators in menu order. Callers may modify the result.
func List() []Tool {
	out := make([]Tool, len(tools))
	for i, t := range tools {
		out[i] = t.clone()
	}
	return out
}

func Lookup(kind Kind) (Tool, bool) {
	for _, t := range tools {
		if t.Kind == kind {
			return t.clone(), true
		}
	}
	return Tool{}, false
}

func (t Tool) clone() Tool {
	t.Fields = append([]Field(nil), t.Fields...)
	t.Results = append([]Field(nil), t.Results...)
	return t
}

type Handler struct{}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(List())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	t, ok := Lookup(Kind(mux.Vars(r)["kind"]))
	if !ok {
		http.Error(w, "Unknown calculator", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}
