package sample

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// FormatValue renders v the way the sequence literal shows it: integral
// values keep a trailing ".0", and very large or very small magnitudes use
// exponent notation.
func FormatValue(v float64) string {
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatSequence renders xs as "[x1, x2, ...]".
func FormatSequence(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = FormatValue(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// FormatStdDev renders a standard deviation with two decimal places.
func FormatStdDev(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Report writes the entered values followed by the standard deviation line.
func Report(w io.Writer, s Sample, stdDev float64, m Messages) error {
	_, err := fmt.Fprintf(w, "\n%s %s\n%s\n", m.Entered, s, m.StdDevLine(FormatStdDev(stdDev)))
	return err
}
