package importer

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Tailor/internal/calc/frill"
	"Tailor/internal/calc/ratio"
	"Tailor/internal/calc/skirt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImport(t *testing.T) {
	buf := workbook(t, [][]any{
		{"kind", "a", "b", "c"},
		{"circular-skirt", "70", "180", "60"},
		{"Circular-Frill", 200, 180, 5},
		{"ratio", "3", "1", "4"},
		{"pythagorean", "0", "40"},
		{"sleeve", "1", "2"},
	})

	res, err := Import(buf)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Computed)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Outcomes, 5)
	assert.Equal(t, skirt.Result{InnerRadius: 22.28, OuterRadius: 82.28, WaistWithAllowance: 70}, res.Outcomes[0].Result)
	assert.Equal(t, frill.Result{InnerRadius: 63.66, OuterRadius: 68.66}, res.Outcomes[1].Result)
	assert.Equal(t, ratio.Result{Answer: 0.75}, res.Outcomes[2].Result)
	assert.Equal(t, "invalid input: side_a", res.Outcomes[3].Error)
	assert.Contains(t, res.Outcomes[4].Error, "unknown calculator")
}

func TestImportUsesRawCellValues(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"kind", "a", "b", "c"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"circular-skirt", 70.6, 180, 60}))
	style, err := f.NewStyle(&excelize.Style{NumFmt: 1})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle(sheet, "B2", "B2", style))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	res, err := Import(buf)
	require.NoError(t, err)
	require.Len(t, res.Outcomes, 1)
	assert.Equal(t, skirt.Result{InnerRadius: 22.47, OuterRadius: 82.47, WaistWithAllowance: 70.6}, res.Outcomes[0].Result)
}

func TestImportHeaderOnly(t *testing.T) {
	_, err := Import(workbook(t, [][]any{{"kind", "a", "b", "c"}}))
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestImportNotAWorkbook(t *testing.T) {
	_, err := Import(strings.NewReader("kind,a,b\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptySheet)
}

func TestHandlerUpload(t *testing.T) {
	buf := workbook(t, [][]any{
		{"kind", "a", "b"},
		{"pythagorean", "30", "40"},
	})
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "pattern.xlsx")
	require.NoError(t, err)
	_, err = part.Write(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/import/xlsx", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Upload(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"computed":1,"skipped":0,"outcomes":[{"kind":"pythagorean","result":{"hypotenuse":50}}]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	(&Handler{}).Upload(rec, httptest.NewRequest(http.MethodPost, "/api/user/tools/import/xlsx", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
