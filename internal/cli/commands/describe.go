package commands

import (
	"github.com/leapstack-labs/leapunit/internal/cli/output"
	"github.com/leapstack-labs/leapunit/pkg/unit"
)

// Unit kinds reported by parse.
const (
	kindBase          = "base"
	kindNamed         = "named"
	kindComposite     = "composite"
	kindDimensionless = "dimensionless"
)

func unitKind(u unit.Unit) string {
	switch {
	case u.IsBaseUnit():
		return kindBase
	case u.IsStandalone():
		return kindNamed
	case u.IsDimensionless():
		return kindDimensionless
	default:
		return kindComposite
	}
}

// describeUnit collects everything parse reports about u.
func describeUnit(expression string, u unit.Unit) output.UnitInfo {
	info := output.UnitInfo{
		Expression:    expression,
		Kind:          unitKind(u),
		Symbol:        u.Symbol(),
		Category:      u.Category(),
		Exponent:      u.Exponent(),
		Scale:         u.Scale(),
		Canonical:     u.String(),
		Expanded:      u.UnitString(true, true, true),
		BaseUnits:     u.BaseUnitString(),
		CombinedScale: u.CombinedScale(),
	}
	for _, p := range u.Parts() {
		info.Parts = append(info.Parts, describeUnit(p.String(), p))
	}
	return info
}
