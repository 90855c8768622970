package convert

import (
	"errors"
	"testing"

	"github.com/leapstack-labs/leapunit/pkg/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_ConvertValue(t *testing.T) {
	tests := []struct {
		name  string
		from  string
		to    string
		value float64
		want  float64
	}{
		{"km/s to m/s", "km s^-1", "m s^-1", 1, 1000},
		{"kg to g", "kg", "g", 1, 1000},
		{"g to kg", "g", "kg", 500, 0.5},
		{"h to s", "h", "s", 1.5, 5400},
		{"kN to N", "kN", "N", 2, 2000},
		{"N to kg m s^-2", "N", "kg m s^-2", 7, 7},
		{"same unit", "m", "m", 42, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewConverter(unit.MustParse(tt.from), unit.MustParse(tt.to))
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.ConvertValue(tt.value))
		})
	}
}

func TestConverter_ConvertValues(t *testing.T) {
	c, err := NewConverter(unit.MustParse("km"), unit.MustParse("m"))
	require.NoError(t, err)

	in := []float64{1, 2.5, -3, 0}
	out := c.ConvertValues(in)
	assert.Equal(t, []float64{1000, 2500, -3000, 0}, out)
	assert.Equal(t, []float64{1, 2.5, -3, 0}, in, "input must not change")
	assert.Empty(t, c.ConvertValues(nil))

	assert.Equal(t, 1000.0, c.Factor())
	assert.Equal(t, "km", c.From().String())
	assert.Equal(t, "m", c.To().String())
}

func TestConverter_MatchesConvertFrom(t *testing.T) {
	from, to := unit.MustParse("km/h"), unit.MustParse("m/s")
	c, err := NewConverter(from, to)
	require.NoError(t, err)

	for _, v := range []float64{1, 36, 100, 0.25} {
		want, err := to.ConvertFrom(v, from)
		require.NoError(t, err)
		assert.Equal(t, want, c.ConvertValue(v))
	}
}

func TestNewConverter_DimensionMismatch(t *testing.T) {
	_, err := NewConverter(unit.MustParse("m"), unit.MustParse("s"))
	require.Error(t, err)

	var derr *unit.DimensionMismatchError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "m", derr.From)
	assert.Equal(t, "s", derr.To)
}
