package convert

import (
	"github.com/leapstack-labs/leapunit/pkg/unit"
)

// Converter converts values from one unit into another. The conversion
// factor is computed once, so a Converter is cheap to reuse for a stream of
// samples that share a unit.
type Converter struct {
	from   unit.Unit
	to     unit.Unit
	factor float64
}

// NewConverter creates a converter from one unit to another. It fails with a
// *unit.DimensionMismatchError if the units reduce to different base units.
func NewConverter(from, to unit.Unit) (*Converter, error) {
	factor, err := to.FactorFrom(from)
	if err != nil {
		return nil, err
	}
	return &Converter{from: from, to: to, factor: factor}, nil
}

// From returns the source unit.
func (c *Converter) From() unit.Unit { return c.from }

// To returns the target unit.
func (c *Converter) To() unit.Unit { return c.to }

// Factor returns the multiplier applied to every value.
func (c *Converter) Factor() float64 { return c.factor }

// ConvertValue converts a single value.
func (c *Converter) ConvertValue(value float64) float64 {
	return value * c.factor
}

// ConvertValues converts values, preserving their order. The input is not
// modified.
func (c *Converter) ConvertValues(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v * c.factor
	}
	return out
}
