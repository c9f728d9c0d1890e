package numeric

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput covers unparseable, missing and zero values alike.
var ErrInvalidInput = errors.New("invalid input")

// Text is a raw form value. In JSON it may arrive as a string, a number or null.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*t = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*t = Text(n)
		return nil
	}
}

// ParseOptionalNumber reads a raw form value. It reports false for empty text,
// text that is not a number, NaN, infinities and zero.
func ParseOptionalNumber(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Require parses a named field and wraps ErrInvalidInput with the field name.
func Require(field string, text Text) (float64, error) {
	v, ok := ParseOptionalNumber(string(text))
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidInput, field)
	}
	return v, nil
}

// Round2 rounds to 2 decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Finite fails with ErrInvalidInput when any value overflowed, so no NaN or Inf reaches a caller.
func Finite(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: result out of range", ErrInvalidInput)
		}
	}
	return nil
}
