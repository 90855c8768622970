package unit

import "math"

// Invert returns 1/u. A named unit negates its exponent; a composite inverts
// each of its parts.
func (u Unit) Invert() Unit {
	if u.IsStandalone() {
		inv := u
		inv.exponent = -u.exponent
		return inv
	}
	parts := make([]Unit, len(u.parts))
	for i, p := range u.parts {
		parts[i] = p.Invert()
	}
	return Unit{parts: nilIfEmpty(parts)}
}

// Concat returns the product u·other as a flat composite. Named operands
// become single parts; composite operands contribute their parts.
func (u Unit) Concat(other Unit) Unit {
	parts := make([]Unit, 0, u.productLen()+other.productLen())
	parts = u.appendFactors(parts)
	parts = other.appendFactors(parts)
	return Unit{parts: nilIfEmpty(parts)}
}

func (u Unit) productLen() int {
	if u.IsStandalone() {
		return 1
	}
	return len(u.parts)
}

func (u Unit) appendFactors(dst []Unit) []Unit {
	if u.IsStandalone() {
		return append(dst, u)
	}
	return append(dst, u.parts...)
}

// Scaled returns u with its combined scale multiplied by factor.
//
// A named unit absorbs factor^(1/exponent) into its own scale. A composite
// always carries the scale on its first part. The dimensionless unit has no
// part to carry a scale and is returned unchanged.
func (u Unit) Scaled(factor float64) Unit {
	if u.IsStandalone() {
		s := u
		s.scale = u.scale * math.Pow(factor, 1/float64(u.exponent))
		return s
	}
	if len(u.parts) == 0 {
		return u
	}
	parts := cloneParts(u.parts)
	parts[0] = parts[0].Scaled(factor)
	return Unit{parts: parts}
}

// Powered returns u raised to exponent. The scale of a named unit is kept, so
// its combined scale is raised to the same power. A zero exponent yields
// Dimensionless, matching how the parser reads "m^0".
func (u Unit) Powered(exponent int) Unit {
	if exponent == 0 {
		return Dimensionless
	}
	if u.IsStandalone() {
		p := u
		p.exponent = u.exponent * exponent
		return p
	}
	parts := make([]Unit, len(u.parts))
	for i, part := range u.parts {
		parts[i] = part.Powered(exponent)
	}
	return Unit{parts: nilIfEmpty(parts)}
}

// adjustedParts exposes the meaning of a named unit with a decomposition:
// its own scale moves onto the first part and its exponent onto every part.
// For a composite this is just its parts.
func (u Unit) adjustedParts() []Unit {
	if !u.IsStandalone() {
		return u.parts
	}
	parts := cloneParts(u.parts)
	if len(parts) == 0 {
		return parts
	}
	parts[0] = parts[0].Scaled(u.scale)
	for i := range parts {
		parts[i] = parts[i].Powered(u.exponent)
	}
	return parts
}

func nilIfEmpty(parts []Unit) []Unit {
	if len(parts) == 0 {
		return nil
	}
	return parts
}
