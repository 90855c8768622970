package unit

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapunit/pkg/notation"
)

// String renders the unit with scale prefixes and exponents, keeping named
// units as their symbol: "kN^-1", "g m^-1".
func (u Unit) String() string {
	return u.UnitString(true, true, false)
}

// UnitString renders the unit.
//
// withScale controls the scale prefix (k, M, m, ...), withExponent the "^n"
// suffix. With includeParts a named unit that has a decomposition is written
// as its adjusted parts instead of its symbol, so kN^-1 becomes
// "Mg^-1 m^-1 s^2".
func (u Unit) UnitString(withScale, withExponent, includeParts bool) string {
	if u.IsBaseUnit() || (u.IsStandalone() && !includeParts) {
		return u.symbolString(withScale, withExponent)
	}
	parts := u.parts
	if u.IsStandalone() {
		parts = u.adjustedParts()
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.UnitString(withScale, withExponent, includeParts)
	}
	return strings.Join(out, " ")
}

func (u Unit) symbolString(withScale, withExponent bool) string {
	var b strings.Builder
	if withScale && u.scale != 1 {
		if prefix, ok := notation.ScaleToPrefix(u.scale); ok {
			b.WriteString(prefix)
		} else {
			b.WriteString(strconv.FormatFloat(u.scale, 'g', -1, 64))
		}
	}
	b.WriteString(u.symbol)
	if withExponent && u.exponent != 1 {
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(u.exponent))
	}
	return b.String()
}

// PrefixRepresentable reports whether every scale that String would render
// maps to a metric prefix.
func (u Unit) PrefixRepresentable() bool {
	if u.IsStandalone() {
		if u.scale == 1 {
			return true
		}
		_, ok := notation.ScaleToPrefix(u.scale)
		return ok
	}
	for _, p := range u.parts {
		if !p.PrefixRepresentable() {
			return false
		}
	}
	return true
}
