package unit

import (
	"fmt"
	"math"
)

// Unit is an immutable unit value.
//
// A Unit with a symbol is named (standalone): it carries its own scale and
// exponent and may be defined in terms of other units. A Unit without a
// symbol is a composite: an ordered product of its parts. The zero value is
// the dimensionless composite with no parts.
type Unit struct {
	symbol   string
	category string
	exponent int
	scale    float64
	parts    []Unit
}

// Dimensionless is the empty product.
var Dimensionless = Unit{}

// Option configures a named unit.
type Option func(*Unit)

// WithScale sets the multiplier of a named unit relative to its own base form.
func WithScale(scale float64) Option {
	return func(u *Unit) { u.scale = scale }
}

// WithExponent sets the integer power of a named unit.
func WithExponent(exponent int) Option {
	return func(u *Unit) { u.exponent = exponent }
}

// WithCategory sets the informational category tag.
func WithCategory(category string) Option {
	return func(u *Unit) { u.category = category }
}

// New creates a named base unit, i.e. a fundamental dimension with no parts.
func New(symbol string, opts ...Option) (Unit, error) {
	return newNamed(symbol, nil, opts)
}

// Define creates a named unit defined as the product of parts, e.g.
// Define("N", []Unit{kg, m, s.Powered(-2)}).
func Define(symbol string, parts []Unit, opts ...Option) (Unit, error) {
	if len(parts) == 0 {
		return Unit{}, &ConstructionError{Symbol: symbol, Message: errEmptyDecomposition}
	}
	return newNamed(symbol, cloneParts(parts), opts)
}

// Compose creates an anonymous composite unit. Composites carry neither
// scale nor exponent.
func Compose(parts ...Unit) Unit {
	return Unit{parts: cloneParts(parts)}
}

func newNamed(symbol string, parts []Unit, opts []Option) (Unit, error) {
	u := Unit{symbol: symbol, exponent: 1, scale: 1, parts: parts}
	for _, opt := range opts {
		opt(&u)
	}
	if err := u.validate(); err != nil {
		return Unit{}, err
	}
	return u, nil
}

func (u Unit) validate() error {
	if u.symbol == "" {
		return &ConstructionError{Message: errEmptySymbol}
	}
	if u.scale <= 0 || math.IsInf(u.scale, 0) || math.IsNaN(u.scale) {
		return &ConstructionError{Symbol: u.symbol, Message: fmt.Sprintf(errInvalidScale, u.scale)}
	}
	if u.exponent == 0 {
		return &ConstructionError{Symbol: u.symbol, Message: errZeroExponent}
	}
	return nil
}

// mustNew is New for symbols and options known to be valid.
func mustNew(symbol string, opts ...Option) Unit {
	u, err := New(symbol, opts...)
	if err != nil {
		panic(err)
	}
	return u
}

// Symbol returns the unit's symbol, or "" for a composite.
func (u Unit) Symbol() string { return u.symbol }

// Category returns the informational category tag.
func (u Unit) Category() string { return u.category }

// Exponent returns the power of a named unit. Composites report 1.
func (u Unit) Exponent() int {
	if !u.IsStandalone() {
		return 1
	}
	return u.exponent
}

// Scale returns the multiplier of a named unit. Composites report 1.
func (u Unit) Scale() float64 {
	if !u.IsStandalone() {
		return 1
	}
	return u.scale
}

// Parts returns a copy of the unit's parts.
func (u Unit) Parts() []Unit {
	return cloneParts(u.parts)
}

// NumParts returns the number of direct parts.
func (u Unit) NumParts() int { return len(u.parts) }

// IsStandalone reports whether the unit has a symbol.
func (u Unit) IsStandalone() bool { return u.symbol != "" }

// IsBaseUnit reports whether the unit is a named unit without parts.
func (u Unit) IsBaseUnit() bool { return u.IsStandalone() && len(u.parts) == 0 }

// IsDimensionless reports whether the unit is a composite with no parts.
func (u Unit) IsDimensionless() bool { return !u.IsStandalone() && len(u.parts) == 0 }

// withSymbol turns u into a named unit whose decomposition is u's parts.
// A named u is wrapped as the single part of the new unit.
func (u Unit) withSymbol(symbol, category string) Unit {
	parts := u.parts
	if u.IsStandalone() {
		parts = []Unit{u}
	}
	return Unit{symbol: symbol, category: category, exponent: 1, scale: 1, parts: parts}
}

func cloneParts(parts []Unit) []Unit {
	if len(parts) == 0 {
		return nil
	}
	out := make([]Unit, len(parts))
	copy(out, parts)
	return out
}
