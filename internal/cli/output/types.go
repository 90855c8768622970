package output

// UnitInfo describes a parsed unit expression.
type UnitInfo struct {
	Expression    string     `json:"expression" yaml:"expression"`
	Kind          string     `json:"kind" yaml:"kind"`
	Symbol        string     `json:"symbol,omitempty" yaml:"symbol,omitempty"`
	Category      string     `json:"category,omitempty" yaml:"category,omitempty"`
	Exponent      int        `json:"exponent" yaml:"exponent"`
	Scale         float64    `json:"scale" yaml:"scale"`
	Canonical     string     `json:"canonical" yaml:"canonical"`
	Expanded      string     `json:"expanded" yaml:"expanded"`
	BaseUnits     string     `json:"base_units" yaml:"base_units"`
	CombinedScale float64    `json:"combined_scale" yaml:"combined_scale"`
	Parts         []UnitInfo `json:"parts,omitempty" yaml:"parts,omitempty"`
}

// ConversionOutput is the result of converting values between two units.
type ConversionOutput struct {
	From        string           `json:"from" yaml:"from"`
	To          string           `json:"to" yaml:"to"`
	Factor      float64          `json:"factor" yaml:"factor"`
	Conversions []ConvertedValue `json:"conversions" yaml:"conversions"`
}

// ConvertedValue pairs an input value with its converted value.
type ConvertedValue struct {
	Input  float64 `json:"input" yaml:"input"`
	Output float64 `json:"output" yaml:"output"`
}

// FormatOutput is the result of formatting a value with a unit.
type FormatOutput struct {
	Value     float64 `json:"value" yaml:"value"`
	Unit      string  `json:"unit" yaml:"unit"`
	Formatted string  `json:"formatted" yaml:"formatted"`
}

// CompareOutput reports how two unit expressions relate.
type CompareOutput struct {
	Left           string  `json:"left" yaml:"left"`
	Right          string  `json:"right" yaml:"right"`
	LeftBaseUnits  string  `json:"left_base_units" yaml:"left_base_units"`
	RightBaseUnits string  `json:"right_base_units" yaml:"right_base_units"`
	SameBaseUnits  bool    `json:"same_base_units" yaml:"same_base_units"`
	Equal          bool    `json:"equal" yaml:"equal"`
	Factor         float64 `json:"factor,omitempty" yaml:"factor,omitempty"`
}

// UnitsOutput lists the registered units.
type UnitsOutput struct {
	Units []RegisteredUnit `json:"units" yaml:"units"`
	Total int              `json:"total" yaml:"total"`
}

// RegisteredUnit is one entry of the unit registry.
type RegisteredUnit struct {
	Symbol     string `json:"symbol" yaml:"symbol"`
	Category   string `json:"category,omitempty" yaml:"category,omitempty"`
	Definition string `json:"definition" yaml:"definition"`
	BaseUnits  string `json:"base_units" yaml:"base_units"`
}
