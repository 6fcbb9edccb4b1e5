package ingredients

import "testing"

func TestSimilaritySymmetry(t *testing.T) {
	pairs := [][2]string{
		{"tomato", "tomatoes"},
		{"cherry tomato", "tomato"},
		{"green onion", "onion green"},
		{"chicken breast", "beef roast"},
		{"", "tomato"},
	}

	for _, pair := range pairs {
		ab := Similarity(pair[0], pair[1])
		ba := Similarity(pair[1], pair[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %d but Similarity(%q, %q) = %d",
				pair[0], pair[1], ab, pair[1], pair[0], ba)
		}
	}
}

func TestSimilarityTokenOrderInsensitive(t *testing.T) {
	if got := Similarity("cherry tomato", "tomato cherry"); got != 100 {
		t.Errorf("reordered tokens should score 100, got %d", got)
	}
}

func TestSimilarityPenalizesExtraTokens(t *testing.T) {
	score := Similarity("tomato", "cherry tomato")
	if score >= DefaultThreshold {
		t.Errorf("missing token should score below threshold, got %d", score)
	}
}

func TestSimilarityBounds(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"tomato", "tomato", 100},
		{"", "", 100},
		{"", "ab", 0},
	}
	for _, tt := range tests {
		if got := Similarity(tt.a, tt.b); got != tt.expected {
			t.Errorf("Similarity(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestIsSimilar(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"tomato", "tomatoes", true},
		{"tomato", "potato", false},
		{"chicken broth", "chiken broth", true},
	}
	for _, tt := range tests {
		if got := IsSimilar(tt.a, tt.b, DefaultThreshold); got != tt.expected {
			t.Errorf("IsSimilar(%q, %q, %d) = %v, want %v", tt.a, tt.b, DefaultThreshold, got, tt.expected)
		}
	}
}
