package ingredients

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "descriptors and quantity words stripped",
			input:    "2 large chopped Tomatoes, diced",
			expected: "tomato",
		},
		{
			name:     "fresh prefix stripped",
			input:    "Fresh Cilantro",
			expected: "cilantro",
		},
		{
			name:     "trailing clause after comma dropped",
			input:    "onion, thinly sliced",
			expected: "onion",
		},
		{
			name:     "plural es suffix",
			input:    "potatoes",
			expected: "potato",
		},
		{
			name:     "plural ies suffix",
			input:    "strawberries",
			expected: "strawberry",
		},
		{
			name:     "only trailing word singularized",
			input:    "garlic cloves",
			expected: "garlic clove",
		},
		{
			name:     "singular exception keeps form",
			input:    "couscous",
			expected: "couscous",
		},
		{
			name:     "ss suffix untouched",
			input:    "swiss chard",
			expected: "swiss chard",
		},
		{
			name:     "unknown tokens pass through",
			input:    "gochujang",
			expected: "gochujang",
		},
		{
			name:     "fraction quantity stripped",
			input:    "1/2 red onion",
			expected: "red onion",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	input := "3 small Diced Roma Tomatoes, halved"
	first := Normalize(input)
	for range 5 {
		if got := Normalize(input); got != first {
			t.Fatalf("Normalize changed between runs: %q vs %q", first, got)
		}
	}
}
