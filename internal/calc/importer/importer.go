package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"Tailor/internal/calc/batch"
	"Tailor/internal/calc/catalog"
	"Tailor/internal/calc/numeric"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("empty sheet")

// Import reads the first sheet of a workbook. Row 1 is a header; each later
// row is `kind, value, value, ...` with values in the calculator's form order
// (see catalog.Tool.Fields).
func Import(r io.Reader) (batch.Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return batch.Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	// Raw values: the display format of a styled cell may round the number.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return batch.Result{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return batch.Result{}, ErrEmptySheet
	}

	items := make([]batch.Item, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		items = append(items, parseRow(row))
	}
	if len(items) == 0 {
		return batch.Result{}, ErrEmptySheet
	}
	return batch.Calculate(batch.Input{Items: items})
}

func parseRow(row []string) batch.Item {
	kind := catalog.Kind(strings.ToLower(strings.TrimSpace(row[0])))
	item := batch.Item{Kind: kind, Fields: map[string]numeric.Text{}}
	tool, ok := catalog.Lookup(kind)
	if !ok {
		return item
	}
	for i, field := range tool.Fields {
		if i+1 < len(row) {
			item.Fields[field.Name] = numeric.Text(row[i+1])
		}
	}
	return item
}
