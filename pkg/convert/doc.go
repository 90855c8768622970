// Package convert applies unit algebra to numbers: Converter moves values
// between two compatible units and Formatter renders a value in engineering
// notation with the unit's prefix adjusted to match ("1500 g" → "1.5kg").
package convert
