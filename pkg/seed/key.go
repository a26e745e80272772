package seed

import (
	"math"
	"strconv"
	"strings"
)

// FormatAlpha renders alpha in its shortest round-trip decimal form. Integral
// values keep a trailing ".0" and magnitudes below 1e-4 or from 1e16 upwards
// switch to exponent notation, so 0 becomes "0.0", 1e-5 becomes "1e-05" and
// 1.5e16 becomes "1.5e+16".
func FormatAlpha(alpha float64) string {
	switch {
	case math.IsNaN(alpha):
		return "nan"
	case math.IsInf(alpha, 1):
		return "inf"
	case math.IsInf(alpha, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(alpha, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		// FormatFloat always emits a parsable exponent.
		panic(err)
	}
	if alpha != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(alpha, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Key builds the identifying string for a parameter triple.
func Key(alpha float64, trial, t int) string {
	b := make([]byte, 0, 24)
	b = append(b, FormatAlpha(alpha)...)
	b = append(b, '-')
	b = strconv.AppendInt(b, int64(trial), 10)
	b = append(b, '-')
	b = strconv.AppendInt(b, int64(t), 10)
	return string(b)
}
