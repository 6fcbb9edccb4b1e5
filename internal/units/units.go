// Package units normalizes cooking measurement tokens and converts amounts
// between units of the same dimension.
package units

import "strings"

// Dimension is a measurement family. Units of different dimensions are never
// convertible into each other.
type Dimension string

const (
	Volume  Dimension = "volume"
	Weight  Dimension = "weight"
	Count   Dimension = "count"
	Unknown Dimension = "unknown"
)

// Unit is a canonical measurement token tagged with its dimension. Tokens
// absent from the alias table keep their raw (lowercased) form with
// dimension Unknown.
type Unit struct {
	Token     string    `json:"token"`
	Dimension Dimension `json:"dimension"`
}

var aliases = map[string]Unit{
	// volume
	"cup":          {"cup", Volume},
	"c":            {"cup", Volume},
	"milliliter":   {"milliliter", Volume},
	"millilitre":   {"milliliter", Volume},
	"ml":           {"milliliter", Volume},
	"liter":        {"liter", Volume},
	"litre":        {"liter", Volume},
	"l":            {"liter", Volume},
	"fluid ounce":  {"fluid ounce", Volume},
	"fl oz":        {"fluid ounce", Volume},
	"tablespoon":   {"tablespoon", Volume},
	"tbsp":         {"tablespoon", Volume},
	"tbs":          {"tablespoon", Volume},
	"teaspoon":     {"teaspoon", Volume},
	"tsp":          {"teaspoon", Volume},
	"pint":         {"pint", Volume},
	"pt":           {"pint", Volume},
	"quart":        {"quart", Volume},
	"qt":           {"quart", Volume},
	"gallon":       {"gallon", Volume},
	"gal":          {"gallon", Volume},

	// weight
	"gram":     {"gram", Weight},
	"g":        {"gram", Weight},
	"kilogram": {"kilogram", Weight},
	"kg":       {"kilogram", Weight},
	"pound":    {"pound", Weight},
	"lb":       {"pound", Weight},
	"ounce":    {"ounce", Weight},
	"oz":       {"ounce", Weight},

	// count
	"each":  {"each", Count},
	"ea":    {"each", Count},
	"item":  {"each", Count},
	"piece": {"each", Count},
	"pc":    {"each", Count},
	"clove": {"each", Count},
	"stalk": {"each", Count},
	"head":  {"each", Count},
	"bunch": {"each", Count},
	"can":   {"each", Count},
	"slice": {"each", Count},
}

// Normalize maps a raw unit string to its canonical unit. Lowercases, trims,
// and strips plural suffixes before the alias lookup. Unknown units are
// preserved verbatim rather than dropped, tagged with dimension Unknown.
// An empty unit means a bare count.
func Normalize(raw string) Unit {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return Unit{Token: "each", Dimension: Count}
	}
	if u, ok := aliases[token]; ok {
		return u
	}
	if singular, ok := stripPlural(token); ok {
		if u, ok := aliases[singular]; ok {
			return u
		}
	}
	return Unit{Token: token, Dimension: Unknown}
}

func stripPlural(token string) (string, bool) {
	switch {
	case strings.HasSuffix(token, "ches") || strings.HasSuffix(token, "shes"):
		// pinches, bunches, dashes
		return token[:len(token)-2], true
	case strings.HasSuffix(token, "s") && len(token) > 2:
		return token[:len(token)-1], true
	}
	return token, false
}
