package convert

import (
	"math"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapunit/pkg/unit"
)

// Formatter renders values of one unit in engineering notation.
type Formatter struct {
	unit      unit.Unit
	precision int
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithPrecision limits the number of significant digits. Zero or less means
// the shortest representation that round-trips.
func WithPrecision(digits int) FormatterOption {
	return func(f *Formatter) { f.precision = digits }
}

// NewFormatter creates a formatter for values expressed in u.
func NewFormatter(u unit.Unit, opts ...FormatterOption) *Formatter {
	f := &Formatter{unit: u}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Unit returns the unit of the formatted values.
func (f *Formatter) Unit() unit.Unit { return f.unit }

// ValueString renders value followed by the unit, moving powers of 1000
// from the number into the unit's prefix: 1500 in g is "1.5kg", 0.00015 in
// g is "150µg".
//
// Zero, NaN, infinities and dimensionless units are rendered as the plain
// number. So are values whose rescaled unit would need a scale that has no
// prefix, such as a kilo-step on m^2.
func (f *Formatter) ValueString(value float64) string {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) || f.unit.IsDimensionless() {
		return f.plain(value)
	}

	digits := -1
	if f.precision > 0 {
		digits = f.precision - 1
	}
	sci := strconv.FormatFloat(value, 'e', digits, 64)
	mantissa, expText, _ := strings.Cut(sci, "e")
	exponent, err := strconv.Atoi(expText)
	if err != nil {
		return f.plain(value)
	}

	scaleExponent := floorDiv(exponent, 3) * 3
	scaled := f.unit.Scaled(math.Pow10(scaleExponent))
	if !scaled.PrefixRepresentable() {
		return f.plain(value)
	}
	return shiftDecimal(mantissa, exponent-scaleExponent) + scaled.String()
}

func (f *Formatter) plain(value float64) string {
	digits := -1
	if f.precision > 0 {
		digits = f.precision
	}
	return strconv.FormatFloat(value, 'g', digits, 64) + f.unit.String()
}

// floorDiv divides rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// shiftDecimal moves the decimal point of a mantissa such as "-1.2345" n
// places to the right, padding with zeros: ("1.5", 2) is "150".
func shiftDecimal(mantissa string, n int) string {
	sign := ""
	if strings.HasPrefix(mantissa, "-") {
		sign, mantissa = "-", mantissa[1:]
	}
	intPart, frac, _ := strings.Cut(mantissa, ".")
	if len(frac) <= n {
		return sign + intPart + frac + strings.Repeat("0", n-len(frac))
	}
	return sign + intPart + frac[:n] + "." + frac[n:]
}
