// Package unit implements a symbolic algebra over physical units.
//
// # Model
//
// A Unit is an immutable tree. It is either named (a symbol with its own
// scale and exponent, optionally defined in terms of other units) or a
// composite (an anonymous, ordered product of parts):
//
//	kg          named, symbol "g", scale 1e3, no parts (a base unit)
//	N           named, symbol "N", parts [kg m s^-2]
//	m s^-1      composite, parts [m, s^-1]
//
// Every operation returns a new Unit, so values can be shared freely across
// goroutines.
//
// # Parsing
//
// Expressions are read by a recursive descent parser with three levels:
//
//	quotient → product [ '/' quotient ]
//	product  → factor { ( ' '+ | '*' ) factor }
//	factor   → IDENT [ '^' INTEGER ]
//
// The first '/' splits the expression and everything to its right is
// inverted. Unicode superscript exponents (m², s⁻¹) are accepted. Symbols
// longer than one character lose a leading metric prefix, unless the whole
// symbol is a registered alias.
//
// The registry is consulted for the whole symbol before any prefix is
// stripped. A registered "Pa", "mol" or "min" therefore resolves to itself,
// where plain prefix-first resolution would read peta-"a", milli-"ol" and
// milli-"in".
//
//	u, err := unit.Parse("J kg⁻¹ K⁻¹")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(u.BaseUnitString()) // g^-1 J K^-1
//
// # Reduction
//
// BaseUnits expands a unit into its base units, sorted by symbol. Two units
// with the same sorted list are compatible and can be converted into each
// other; CombinedScale gives the factor to their common base form.
package unit
