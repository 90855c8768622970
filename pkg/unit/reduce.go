package unit

import (
	"math"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// A Collator keeps iteration state and must not be shared between goroutines.
var collators = sync.Pool{
	New: func() any { return collate.New(language.Und) },
}

// compareSymbols orders symbols the way a human would sort them: letters
// case-insensitively first, so "g" < "J" < "K".
func compareSymbols(a, b string) int {
	c := collators.Get().(*collate.Collator)
	defer collators.Put(c)
	return c.CompareString(a, b)
}

// BaseUnits expands u into its base units, sorted by symbol. The result is
// the canonical signature used for compatibility tests.
func (u Unit) BaseUnits() []Unit {
	if u.IsBaseUnit() {
		return []Unit{u}
	}
	var out []Unit
	for _, p := range u.adjustedParts() {
		out = append(out, p.BaseUnits()...)
	}
	slices.SortStableFunc(out, func(a, b Unit) int {
		return compareSymbols(a.symbol, b.symbol)
	})
	return out
}

// BaseUnitString renders the base units without scale, separated by spaces.
func (u Unit) BaseUnitString() string {
	base := u.BaseUnits()
	parts := make([]string, len(base))
	for i, b := range base {
		parts[i] = b.UnitString(false, true, false)
	}
	return strings.Join(parts, " ")
}

// HasSameBaseUnits reports whether u and other reduce to the same base units.
func (u Unit) HasSameBaseUnits(other Unit) bool {
	return u.BaseUnitString() == other.BaseUnitString()
}

// HaveSameBaseUnit reports whether every unit in units has one and the same
// signature. It is false for an empty slice.
func HaveSameBaseUnit(units []Unit) bool {
	if len(units) == 0 {
		return false
	}
	first := units[0].BaseUnitString()
	for _, u := range units[1:] {
		if u.BaseUnitString() != first {
			return false
		}
	}
	return true
}

// CombinedScale returns the factor relating u to its base units.
//
// For a base unit this is scale^exponent. A named unit with a decomposition
// multiplies its own scale into the product of its parts before raising the
// result to its exponent; a composite is the plain product of its parts.
func (u Unit) CombinedScale() float64 {
	if u.IsBaseUnit() {
		return math.Pow(u.scale, float64(u.exponent))
	}
	product := 1.0
	for _, p := range u.parts {
		product *= p.CombinedScale()
	}
	if !u.IsStandalone() {
		return product
	}
	return math.Pow(product*u.scale, float64(u.exponent))
}

// IsEqual reports whether u and other have the same base units and exactly
// the same combined scale.
func (u Unit) IsEqual(other Unit) bool {
	return u.HasSameBaseUnits(other) && u.CombinedScale() == other.CombinedScale()
}

// ConvertFrom converts value, expressed in source, into u.
func (u Unit) ConvertFrom(value float64, source Unit) (float64, error) {
	factor, err := u.FactorFrom(source)
	if err != nil {
		return 0, err
	}
	return value * factor, nil
}

// FactorFrom returns the multiplier that converts values in source into u.
func (u Unit) FactorFrom(source Unit) (float64, error) {
	to, from := u.BaseUnitString(), source.BaseUnitString()
	if to != from {
		return 0, &DimensionMismatchError{From: from, To: to}
	}
	return source.CombinedScale() / u.CombinedScale(), nil
}
