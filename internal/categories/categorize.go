// Package categories classifies ingredients into grocery store sections
// with a fixed keyword taxonomy.
package categories

import "strings"

const Other = "Other"

// Classifier matches an exact name first, then falls back to substring
// matching in taxonomy order. Keyword order matters: "frozen spinach"
// should land in Frozen Foods before the produce keywords see it.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

func (c *Classifier) Categorize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Other
	}

	if category, ok := exactMatch[name]; ok {
		return category
	}

	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}
	return Other
}

var exactMatch = map[string]string{
	"egg":    "Dairy & Eggs",
	"butter": "Dairy & Eggs",
	"milk":   "Dairy & Eggs",
	"bread":  "Bakery & Bread",
	"water":  "Beverages",
	"salt":   "Spices & Condiments",
	"oil":    "Pantry",
	"flour":  "Pantry",
	"sugar":  "Pantry",
	"rice":   "Pantry",
}

type substringEntry struct {
	keyword  string
	category string
}

var substringMatches = []substringEntry{
	// frozen first so "frozen peas" doesn't land in produce
	{"frozen", "Frozen Foods"},
	{"ice cream", "Frozen Foods"},
	{"sorbet", "Frozen Foods"},

	{"tomato", "Produce"},
	{"lettuce", "Produce"},
	{"onion", "Produce"},
	{"garlic", "Produce"},
	{"potato", "Produce"},
	{"carrot", "Produce"},
	{"celery", "Produce"},
	{"cucumber", "Produce"},
	{"spinach", "Produce"},
	{"broccoli", "Produce"},
	{"cauliflower", "Produce"},
	{"mushroom", "Produce"},
	{"zucchini", "Produce"},
	{"avocado", "Produce"},
	{"apple", "Produce"},
	{"banana", "Produce"},
	{"lemon", "Produce"},
	{"lime", "Produce"},
	{"berry", "Produce"},
	{"cilantro", "Produce"},
	{"parsley", "Produce"},
	{"basil", "Produce"},
	{"kale", "Produce"},
	{"bell pepper", "Produce"},

	{"chicken", "Meat & Seafood"},
	{"beef", "Meat & Seafood"},
	{"pork", "Meat & Seafood"},
	{"turkey", "Meat & Seafood"},
	{"lamb", "Meat & Seafood"},
	{"bacon", "Meat & Seafood"},
	{"sausage", "Meat & Seafood"},
	{"salmon", "Meat & Seafood"},
	{"tuna", "Meat & Seafood"},
	{"shrimp", "Meat & Seafood"},
	{"fish", "Meat & Seafood"},
	{"steak", "Meat & Seafood"},

	{"milk", "Dairy & Eggs"},
	{"cream", "Dairy & Eggs"},
	{"cheese", "Dairy & Eggs"},
	{"yogurt", "Dairy & Eggs"},
	{"butter", "Dairy & Eggs"},
	{"egg", "Dairy & Eggs"},

	{"bread", "Bakery & Bread"},
	{"baguette", "Bakery & Bread"},
	{"tortilla", "Bakery & Bread"},
	{"bagel", "Bakery & Bread"},
	{"pita", "Bakery & Bread"},
	{"naan", "Bakery & Bread"},
	{"muffin", "Bakery & Bread"},

	{"juice", "Beverages"},
	{"soda", "Beverages"},
	{"coffee", "Beverages"},
	{"tea", "Beverages"},
	{"wine", "Beverages"},
	{"beer", "Beverages"},

	{"pepper", "Spices & Condiments"},
	{"paprika", "Spices & Condiments"},
	{"cumin", "Spices & Condiments"},
	{"cinnamon", "Spices & Condiments"},
	{"oregano", "Spices & Condiments"},
	{"vanilla", "Spices & Condiments"},
	{"spice", "Spices & Condiments"},
	{"seasoning", "Spices & Condiments"},
	{"mustard", "Spices & Condiments"},
	{"ketchup", "Spices & Condiments"},
	{"mayonnaise", "Spices & Condiments"},
	{"hot sauce", "Spices & Condiments"},

	{"flour", "Pantry"},
	{"sugar", "Pantry"},
	{"rice", "Pantry"},
	{"pasta", "Pantry"},
	{"noodle", "Pantry"},
	{"bean", "Pantry"},
	{"lentil", "Pantry"},
	{"chickpea", "Pantry"},
	{"quinoa", "Pantry"},
	{"oat", "Pantry"},
	{"oil", "Pantry"},
	{"vinegar", "Pantry"},
	{"soy sauce", "Pantry"},
	{"broth", "Pantry"},
	{"stock", "Pantry"},
	{"canned", "Pantry"},
}
