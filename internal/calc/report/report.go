package report

import (
	"fmt"
	"io"
	"time"

	"Tailor/internal/calc/catalog"
	"Tailor/internal/calc/frill"
	"Tailor/internal/calc/pythagorean"
	"Tailor/internal/calc/ratio"
	"Tailor/internal/calc/skirt"

	"github.com/phpdave11/gofpdf"
)

// Input selects the calculations printed on the sheet. Nil sections are left out.
type Input struct {
	Project     string             `json:"project"`
	Author      string             `json:"author"`
	Title       string             `json:"title"`
	Notes       string             `json:"notes"`
	Skirt       *skirt.Input       `json:"skirt,omitempty"`
	Frill       *frill.Input       `json:"frill,omitempty"`
	Ratio       *ratio.Input       `json:"ratio,omitempty"`
	Pythagorean *pythagorean.Input `json:"pythagorean,omitempty"`
}

type Line struct {
	Label string
	Value string
}

type Section struct {
	Title string
	Lines []Line
	// Missing is set when the inputs gave no result.
	Missing bool
}

const missingText = "Not enough data: every field needs a non-zero number."

// FormatValue renders a result the way the calculator pages show it.
func FormatValue(v float64, suffix string) string {
	if suffix == "" {
		return fmt.Sprintf("%.2f", v)
	}
	return fmt.Sprintf("%.2f %s", v, suffix)
}

// FormatCM is FormatValue with the centimetre suffix.
func FormatCM(v float64) string {
	return FormatValue(v, "cm")
}

func Sections(in Input) []Section {
	var out []Section
	if in.Skirt != nil {
		res, err := skirt.Calculate(*in.Skirt)
		out = append(out, section(catalog.KindSkirt, err, res.InnerRadius, res.OuterRadius, res.WaistWithAllowance))
	}
	if in.Frill != nil {
		res, err := frill.Calculate(*in.Frill)
		out = append(out, section(catalog.KindFrill, err, res.InnerRadius, res.OuterRadius))
	}
	if in.Ratio != nil {
		res, err := ratio.Calculate(*in.Ratio)
		out = append(out, section(catalog.KindRatio, err, res.Answer))
	}
	if in.Pythagorean != nil {
		res, err := pythagorean.Calculate(*in.Pythagorean)
		out = append(out, section(catalog.KindPythagorean, err, res.Hypotenuse))
	}
	return out
}

// section pairs values with the catalog's result labels, in order.
func section(kind catalog.Kind, err error, values ...float64) Section {
	tool, _ := catalog.Lookup(kind)
	s := Section{Title: tool.Title}
	if err != nil {
		s.Missing = true
		return s
	}
	for i, v := range values {
		label := tool.Results[i]
		s.Lines = append(s.Lines, Line{Label: label.Label, Value: FormatValue(v, label.Hint)})
	}
	return s
}

// Write renders the sheet as an A4 PDF.
func Write(w io.Writer, in Input, date time.Time) error {
	if in.Title == "" {
		in.Title = "Pattern Sheet"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if in.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", in.Project)))
		pdf.Ln(6)
	}
	if in.Author != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", in.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(10)

	for _, s := range Sections(in) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr(s.Title))
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
		if s.Missing {
			pdf.Cell(0, 6, missingText)
			pdf.Ln(8)
			continue
		}
		for _, l := range s.Lines {
			pdf.CellFormat(70, 6, tr(l.Label+":"), "", 0, "L", false, 0, "")
			pdf.CellFormat(0, 6, tr(l.Value), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if in.Notes != "" {
		pdf.MultiCell(0, 6, tr(in.Notes), "", "L", false)
	}
	return pdf.Output(w)
}
