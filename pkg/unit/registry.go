package unit

import (
	"sync"

	"github.com/leapstack-labs/leapunit/pkg/notation"
)

// Registry is an ordered, append-only list of named units (aliases) that the
// parser consults: a registered symbol parses to a unit carrying the
// registered decomposition. A Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	units []Unit
	index map[string]int
}

// Default is the registry used by Parse and ParseAs.
var Default = DefaultRegistry()

// NewRegistry creates a registry holding units, in order.
func NewRegistry(units ...Unit) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(units))}
	for _, u := range units {
		if err := r.Register(u); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// DefaultRegistry returns a new registry seeded with the newton
// (N = kg m s^-2) and the hour (h = 3600 s).
func DefaultRegistry() *Registry {
	empty := &Registry{}
	newton, err := empty.ParseAs("kg m s^-2", "N")
	if err != nil {
		panic(err)
	}
	newton.category = "force"

	hour, err := Define("h", []Unit{mustNew("s", WithScale(3600))}, WithCategory("time"))
	if err != nil {
		panic(err)
	}

	r, err := NewRegistry(newton, hour)
	if err != nil {
		panic(err)
	}
	return r
}

// Register appends a named unit. Composites are rejected with a
// ConstructionError and already registered symbols with a DuplicateUnitError.
func (r *Registry) Register(u Unit) error {
	if !u.IsStandalone() {
		return &ConstructionError{Message: errNotStandalone}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[u.symbol]; ok {
		return &DuplicateUnitError{Symbol: u.symbol}
	}
	if r.index == nil {
		r.index = make(map[string]int)
	}
	r.index[u.symbol] = len(r.units)
	r.units = append(r.units, u)
	return nil
}

// Define parses definition against the registry, names the result symbol
// and registers it. Later expressions may use symbol, with or without a
// prefix and exponent.
func (r *Registry) Define(symbol, definition, category string) (Unit, error) {
	u, err := r.ParseAs(definition, symbol)
	if err != nil {
		return Unit{}, err
	}
	u.category = category
	if err := r.Register(u); err != nil {
		return Unit{}, err
	}
	return u, nil
}

// Lookup returns the registered unit for symbol.
func (r *Registry) Lookup(symbol string) (Unit, bool) {
	if r == nil {
		return Unit{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookupLocked(symbol)
}

func (r *Registry) lookupLocked(symbol string) (Unit, bool) {
	i, ok := r.index[symbol]
	if !ok {
		return Unit{}, false
	}
	return r.units[i], true
}

// Units returns a snapshot of the registered units in registration order.
func (r *Registry) Units() []Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneParts(r.units)
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.units)
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := &Registry{
		units: cloneParts(r.units),
		index: make(map[string]int, len(r.index)),
	}
	for k, v := range r.index {
		c.index[k] = v
	}
	return c
}

// Parse parses a unit expression, resolving symbols against r.
func (r *Registry) Parse(text string) (Unit, error) {
	return newParser(r, text).parse()
}

// ParseAs parses a unit expression and names the result symbol. An empty
// symbol behaves like Parse. Naming the dimensionless unit fails with a
// *ConstructionError: a named unit without parts is a base unit, so the
// name would become a new dimension.
func (r *Registry) ParseAs(text, symbol string) (Unit, error) {
	u, err := r.Parse(text)
	if err != nil {
		return Unit{}, err
	}
	if symbol == "" {
		return u, nil
	}
	if u.IsDimensionless() {
		return Unit{}, &ConstructionError{Symbol: symbol, Message: errDimensionlessAlias}
	}
	return u.withSymbol(symbol, ""), nil
}

// resolve builds the unit for one parsed factor. A registered symbol is used
// verbatim; otherwise a leading prefix is stripped into the scale. The
// remaining symbol takes its decomposition and category from the registry
// and its exponent and scale from the expression.
func (r *Registry) resolve(symbol string, exponent int) Unit {
	if r != nil {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	scale := 1.0
	if _, ok := r.lookupNilSafe(symbol); !ok {
		if _, s, rest, ok := notation.PrefixScale(symbol); ok {
			scale, symbol = s, rest
		}
	}
	if def, ok := r.lookupNilSafe(symbol); ok {
		return Unit{symbol: def.symbol, category: def.category, exponent: exponent, scale: scale, parts: def.parts}
	}
	return Unit{symbol: symbol, exponent: exponent, scale: scale}
}

func (r *Registry) lookupNilSafe(symbol string) (Unit, bool) {
	if r == nil {
		return Unit{}, false
	}
	return r.lookupLocked(symbol)
}
