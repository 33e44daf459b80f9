package calculator

import (
	"math"
	"strconv"
)

// roundScale keeps ten decimal digits of the raw result, which is enough to
// suppress binary floating-point noise (0.1 + 0.2 must read 0.3).
const roundScale = 1e10

// roundResult rounds a raw arithmetic result to ten decimal digits. An
// overflowing result stays infinite and is rejected by the caller.
func roundResult(v float64) float64 {
	return math.Round(v*roundScale) / roundScale
}

// FormatValue renders a value for the display and for history results. The
// plain decimal form is used as long as it fits the display width; beyond
// that, very large and very small magnitudes switch to scientific notation
// with six fractional digits, and everything else is trimmed to eight
// significant digits.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if len(s) <= MaxInputLength {
		return s
	}
	abs := math.Abs(v)
	if abs >= 1e12 || (abs > 0 && abs < 1e-6) {
		return strconv.FormatFloat(v, 'e', 6, 64)
	}
	return strconv.FormatFloat(roundSignificant(v, 8), 'f', -1, 64)
}

// FormatOperand renders a stored operand for expression history: plain
// decimal, no thousands separators, at most eight fractional digits. Operand
// strings that fail to parse are returned unchanged.
func FormatOperand(s string) string {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	if r := math.Round(v*1e8) / 1e8; !math.IsInf(r, 0) && !math.IsNaN(r) {
		v = r
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// roundSignificant rounds v to the given number of significant digits.
func roundSignificant(v float64, digits int) float64 {
	if v == 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	exp := math.Floor(math.Log10(math.Abs(v)))
	scale := math.Pow(10, float64(digits-1)-exp)
	return math.Round(v*scale) / scale
}
