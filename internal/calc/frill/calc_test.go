package frill

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Tailor/internal/calc/numeric"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		in        Input
		wantInner float64
		wantOuter float64
	}{
		{"half circle", Input{ArcLength: "200", Angle: "180", Width: "5"}, 63.66, 68.66},
		{"full circle", Input{ArcLength: "100", Angle: "360", Width: "10"}, 15.92, 25.92},
		{"quarter circle", Input{ArcLength: "50", Angle: "90", Width: "7.5"}, 31.83, 39.33},
		{"one radian", Input{ArcLength: "12", Angle: "57.29577951308232", Width: "3"}, 12, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantInner, res.InnerRadius)
			assert.Equal(t, tt.wantOuter, res.OuterRadius)
		})
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	for _, in := range []Input{
		{ArcLength: "200", Angle: "0", Width: "5"},
		{ArcLength: "", Angle: "180", Width: "5"},
		{ArcLength: "200", Angle: "180", Width: "wide"},
		{ArcLength: "1e308", Angle: "1e-300", Width: "5"},
	} {
		_, err := Calculate(in)
		assert.ErrorIs(t, err, numeric.ErrInvalidInput, "%+v", in)
	}
}

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/frill/calc",
		strings.NewReader(`{"arc_length":"200","angle":"180","width":"5"}`))
	h.Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"inner_radius":63.66,"outer_radius":68.66}`, rec.Body.String())
}
