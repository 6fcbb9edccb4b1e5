package units

import "errors"

// ErrNotConvertible signals that two units live in different dimensions (or
// an unknown one) and their amounts cannot be combined. It is an expected
// outcome, not a failure: callers keep separate subtotals instead.
var ErrNotConvertible = errors.New("units are not convertible")

// factorsToBase maps each canonical unit to its factor into the dimension's
// base unit: milliliter for volume, gram for weight, each for count.
var factorsToBase = map[Dimension]map[string]float64{
	Volume: {
		"milliliter":  1,
		"liter":       1000,
		"cup":         236.588,
		"tablespoon":  14.787,
		"teaspoon":    4.929,
		"fluid ounce": 29.574,
		"pint":        473.176,
		"quart":       946.353,
		"gallon":      3785.41,
	},
	Weight: {
		"gram":     1,
		"kilogram": 1000,
		"pound":    453.592,
		"ounce":    28.350,
	},
	Count: {
		"each": 1,
	},
}

// Converter converts amounts between canonical units of the same dimension
// via the static factor tables. The tables are read-only for the process
// lifetime, so a single Converter is safe to share across requests.
type Converter struct {
	factors map[Dimension]map[string]float64
}

func NewConverter() *Converter {
	return &Converter{factors: factorsToBase}
}

// Convert returns amount expressed in the target unit. It declines with
// ErrNotConvertible when dimensions differ, either dimension is Unknown, or
// a unit has no factor. No rounding happens here; display rounding is the
// caller's concern.
func (c *Converter) Convert(amount float64, from, to Unit) (float64, error) {
	if from.Dimension != to.Dimension || from.Dimension == Unknown {
		return 0, ErrNotConvertible
	}
	table, ok := c.factors[from.Dimension]
	if !ok {
		return 0, ErrNotConvertible
	}
	fromFactor, ok := table[from.Token]
	if !ok {
		return 0, ErrNotConvertible
	}
	toFactor, ok := table[to.Token]
	if !ok {
		return 0, ErrNotConvertible
	}
	return amount * fromFactor / toFactor, nil
}
