package unit

import "fmt"

// ConstructionError is returned when a unit is built from invalid fields.
type ConstructionError struct {
	Symbol  string
	Message string
}

func (e *ConstructionError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("invalid unit: %s", e.Message)
	}
	return fmt.Sprintf("invalid unit %q: %s", e.Symbol, e.Message)
}

// ParseError represents a syntax error in a unit expression.
type ParseError struct {
	Input   string
	Pos     int // byte offset into the normalized input
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %q at offset %d: %s", e.Input, e.Pos, e.Message)
}

// MalformedExponentError is returned when the text after '^' is not an integer.
type MalformedExponentError struct {
	Input    string
	Pos      int
	Exponent string
}

func (e *MalformedExponentError) Error() string {
	return fmt.Sprintf("malformed exponent %q in %q at offset %d", e.Exponent, e.Input, e.Pos)
}

// DimensionMismatchError is returned when two units reduce to different base units.
type DimensionMismatchError struct {
	From string // base unit signature of the source unit
	To   string // base unit signature of the target unit
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("cannot convert between units with different base units: from %q, to %q", e.From, e.To)
}

// DuplicateUnitError is returned when a symbol is registered twice.
type DuplicateUnitError struct {
	Symbol string
}

func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("unit %q is already registered", e.Symbol)
}

// Common error messages
const (
	errEmptySymbol        = "symbol must not be empty"
	errInvalidScale       = "scale must be a positive finite number, got %v"
	errZeroExponent       = "exponent must not be zero"
	errEmptyDecomposition = "a defined unit needs at least one part"
	errNotStandalone      = "only named units can be registered"
	errDimensionlessAlias = "cannot name the dimensionless unit"

	errEmptyTerm       = "expected a unit symbol"
	errUnexpectedChar  = "unexpected %q"
	errMissingExponent = "expected an exponent after '^'"
)
