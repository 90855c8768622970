package unit

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry_Seeds(t *testing.T) {
	r := DefaultRegistry()
	require.Equal(t, 2, r.Len())

	n, ok := r.Lookup("N")
	require.True(t, ok)
	assert.Equal(t, "kg m s^-2", n.UnitString(true, true, true))

	h, ok := r.Lookup("h")
	require.True(t, ok)
	assert.Equal(t, 3600.0, h.CombinedScale())

	units := r.Units()
	assert.Equal(t, "N", units[0].Symbol())
	assert.Equal(t, "h", units[1].Symbol())
}

func TestRegistry_LookupReplacesScaleAndExponent(t *testing.T) {
	r := DefaultRegistry()
	u, err := r.Parse("kh^-2")
	require.NoError(t, err)

	assert.Equal(t, "h", u.Symbol())
	assert.Equal(t, 1e3, u.Scale())
	assert.Equal(t, -2, u.Exponent())
	assert.Equal(t, "time", u.Category())
	assert.Equal(t, "s^-2", u.BaseUnitString())
}

func TestRegistry_Register(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	err = r.Register(MustParse("m s^-1"))
	var cerr *ConstructionError
	require.True(t, errors.As(err, &cerr), "composites are rejected")

	require.NoError(t, r.Register(MustParse("m")))
	err = r.Register(MustParse("m"))
	var derr *DuplicateUnitError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "m", derr.Symbol)
	assert.Equal(t, 1, r.Len())
}

func TestNewRegistry_Duplicate(t *testing.T) {
	_, err := NewRegistry(MustParse("m"), MustParse("m"))
	require.Error(t, err)
}

func TestRegistry_Define(t *testing.T) {
	r := DefaultRegistry()

	w, err := r.Define("W", "J s^-1", "power")
	require.NoError(t, err)
	assert.Equal(t, "W", w.Symbol())
	assert.Equal(t, "power", w.Category())

	kw, err := r.Parse("kW")
	require.NoError(t, err)
	assert.Equal(t, "kJ s^-1", kw.UnitString(true, true, true))
	assert.Equal(t, "power", kw.Category())

	_, err = r.Define("W", "J s^-1", "power")
	var derr *DuplicateUnitError
	assert.True(t, errors.As(err, &derr))

	_, err = r.Define("bad", "m^x", "")
	var merr *MalformedExponentError
	assert.True(t, errors.As(err, &merr))
}

func TestRegistry_Clone(t *testing.T) {
	r := DefaultRegistry()
	c := r.Clone()

	_, err := c.Define("W", "J s^-1", "power")
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, r.Len())
	_, ok := r.Lookup("W")
	assert.False(t, ok)
}

func TestRegistry_UnitsIsSnapshot(t *testing.T) {
	r := DefaultRegistry()
	units := r.Units()
	units[0] = MustParse("m")

	n, ok := r.Lookup("N")
	require.True(t, ok)
	assert.Equal(t, "N", n.Symbol())
	assert.Equal(t, "N", r.Units()[0].Symbol())
}

func TestRegistry_NilParsesWithoutAliases(t *testing.T) {
	var r *Registry
	u, err := r.Parse("kN")
	require.NoError(t, err)
	assert.True(t, u.IsBaseUnit())
	assert.Equal(t, "N", u.Symbol())
	assert.Equal(t, 1e3, u.Scale())
}

func TestRegistry_ConcurrentDefineAndParse(t *testing.T) {
	r := DefaultRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := r.Define(fmt.Sprintf("X%d", i), "N h", "")
			assert.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				u, err := r.Parse("kN m/h")
				assert.NoError(t, err)
				assert.Equal(t, "g m m s^-2 s^-1", u.BaseUnitString())
				_ = r.Units()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, r.Len())
	for i := 0; i < 8; i++ {
		_, ok := r.Lookup(fmt.Sprintf("X%d", i))
		assert.True(t, ok)
	}
}
