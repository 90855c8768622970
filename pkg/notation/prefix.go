package notation

import (
	"strings"
	"unicode/utf8"
)

// Prefix is a one-letter magnitude prefix.
type Prefix struct {
	Symbol string
	Scale  float64
}

// Micro is the canonical spelling of the micro prefix (MICRO SIGN, U+00B5).
const Micro = "µ"

// greekMu is accepted on input as an alternative spelling of Micro.
const greekMu = "μ"

// prefixes is the lookup order. Multiples come first, then fractions.
var prefixes = []Prefix{
	{"h", 1e2},
	{"k", 1e3},
	{"M", 1e6},
	{"G", 1e9},
	{"T", 1e12},
	{"P", 1e15},
	{"E", 1e18},
	{"Z", 1e21},
	{"Y", 1e24},
	{"d", 1e-1},
	{"c", 1e-2},
	{"m", 1e-3},
	{Micro, 1e-6},
	{"n", 1e-9},
	{"p", 1e-12},
	{"f", 1e-15},
	{"a", 1e-18},
	{"z", 1e-21},
	{"y", 1e-24},
}

// Prefixes returns the prefix table in lookup order.
func Prefixes() []Prefix {
	out := make([]Prefix, len(prefixes))
	copy(out, prefixes)
	return out
}

// ScaleToPrefix returns the first prefix whose multiplier equals scale exactly.
func ScaleToPrefix(scale float64) (string, bool) {
	for _, p := range prefixes {
		if p.Scale == scale {
			return p.Symbol, true
		}
	}
	return "", false
}

// PrefixScale returns the first prefix symbol starts with, together with its
// multiplier and the remainder of the symbol. Single-rune symbols never carry
// a prefix.
func PrefixScale(symbol string) (prefix string, scale float64, rest string, ok bool) {
	if utf8.RuneCountInString(symbol) <= 1 {
		return "", 1, symbol, false
	}
	if strings.HasPrefix(symbol, greekMu) {
		return Micro, 1e-6, symbol[len(greekMu):], true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(symbol, p.Symbol) {
			return p.Symbol, p.Scale, symbol[len(p.Symbol):], true
		}
	}
	return "", 1, symbol, false
}
