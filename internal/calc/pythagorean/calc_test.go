package pythagorean

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Tailor/internal/calc/numeric"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{SideA: "30", SideB: "40"})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Hypotenuse)

	res, err = Calculate(Input{SideA: "1", SideB: "1"})
	require.NoError(t, err)
	assert.Equal(t, 1.41, res.Hypotenuse)

	res, err = Calculate(Input{SideA: "-30", SideB: "40"})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Hypotenuse)
}

func TestCalculateZeroSide(t *testing.T) {
	res, err := Calculate(Input{SideA: "0", SideB: "40"})
	assert.ErrorIs(t, err, numeric.ErrInvalidInput)
	assert.Equal(t, Result{}, res)
}

func TestCalculateNeverNonFinite(t *testing.T) {
	for _, in := range []Input{
		{SideA: "1e308", SideB: "1e308"},
		{SideA: "abc", SideB: "3"},
		{SideA: "", SideB: ""},
		{SideA: "+Inf", SideB: "3"},
	} {
		res, err := Calculate(in)
		assert.ErrorIs(t, err, numeric.ErrInvalidInput, "%+v", in)
		assert.False(t, math.IsNaN(res.Hypotenuse) || math.IsInf(res.Hypotenuse, 0))
	}
}

func TestHandlerCalcNoResult(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/pythagorean/calc",
		strings.NewReader(`{"side_a":"0","side_b":"40"}`))
	h.Calc(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"invalid input: side_a"}`, rec.Body.String())
}
