package ingredients

import "strings"

// SynonymTable maps a canonical ingredient name to the variants that should
// resolve to it. Tables are loaded once and treated as read-only.
type SynonymTable map[string][]string

// DefaultSynonyms returns the curated table used in production. Variants are
// matched after name normalization, so plural forms are not listed.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"tomato":      {"cherry tomato", "roma tomato", "plum tomato", "grape tomato"},
		"onion":       {"yellow onion", "white onion", "red onion", "sweet onion"},
		"green onion": {"scallion", "spring onion"},
		"cilantro":    {"coriander", "coriander leaf", "chinese parsley"},
		"garlic":      {"garlic clove", "garlic bulb"},
		"chicken":     {"chicken breast", "chicken thigh", "chicken wing"},
		"beef":        {"ground beef", "beef steak", "beef roast"},
		"milk":        {"whole milk", "skim milk", "2% milk"},
		"butter":      {"unsalted butter", "salted butter"},
		"flour":       {"all-purpose flour", "wheat flour", "white flour", "plain flour"},
		"sugar":       {"white sugar", "granulated sugar"},
		"oil":         {"vegetable oil", "canola oil", "cooking oil"},
		"black pepper": {"ground pepper", "peppercorn"},
		"salt":        {"table salt", "sea salt", "kosher salt"},
		"egg":         {"large egg"},
		"potato":      {"russet potato", "red potato"},
		"carrot":      {"baby carrot"},
		"lettuce":     {"iceberg lettuce", "romaine lettuce", "leaf lettuce"},
		"bell pepper": {"red pepper", "green pepper", "capsicum"},
		"chickpea":    {"garbanzo bean"},
		"zucchini":    {"courgette"},
		"eggplant":    {"aubergine"},
		"shrimp":      {"prawn"},
		"stock":       {"broth"},
		"powdered sugar": {"confectioners sugar", "icing sugar"},
	}
}

// Resolver answers whether two normalized names belong to the same curated
// equivalence class. Lookup is exact-string and O(1); fuzzy matching is the
// caller's fallback, not ours.
type Resolver struct {
	classes map[string]string
}

func NewResolver(table SynonymTable) *Resolver {
	classes := make(map[string]string)
	for canonical, variants := range table {
		key := strings.ToLower(canonical)
		classes[key] = key
		for _, v := range variants {
			classes[strings.ToLower(v)] = key
		}
	}
	return &Resolver{classes: classes}
}

// Canonical returns the class id for a normalized name, or the name itself
// when it belongs to no curated class.
func (r *Resolver) Canonical(name string) string {
	name = strings.ToLower(name)
	if class, ok := r.classes[name]; ok {
		return class
	}
	return name
}

// SameClass reports whether two normalized names resolve to the same class.
func (r *Resolver) SameClass(a, b string) bool {
	return r.Canonical(a) == r.Canonical(b)
}
