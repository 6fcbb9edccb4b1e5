package categories

import "testing"

func TestCategorize(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name     string
		expected string
	}{
		{"tomato", "Produce"},
		{"cherry tomato", "Produce"},
		{"chicken breast", "Meat & Seafood"},
		{"ground beef", "Meat & Seafood"},
		{"cheddar cheese", "Dairy & Eggs"},
		{"egg", "Dairy & Eggs"},
		{"sourdough bread", "Bakery & Bread"},
		{"frozen spinach", "Frozen Foods"},
		{"orange juice", "Beverages"},
		{"black pepper", "Spices & Condiments"},
		{"olive oil", "Pantry"},
		{"all-purpose flour", "Pantry"},
		{"mystery ingredient", "Other"},
		{"", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Categorize(tt.name); got != tt.expected {
				t.Errorf("Categorize(%q) = %q, want %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestCategorizeExactBeatsSubstring(t *testing.T) {
	c := NewClassifier()
	// "oil" exact-matches Pantry even though other substring entries
	// could fire on longer names containing it.
	if got := c.Categorize("oil"); got != "Pantry" {
		t.Errorf("expected exact match to Pantry, got %q", got)
	}
}
