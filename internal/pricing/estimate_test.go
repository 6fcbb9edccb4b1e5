package pricing

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"plateplanner/internal/shopping"
	"plateplanner/internal/units"
)

func TestEstimateHeuristic(t *testing.T) {
	e := NewEstimator(nil)

	tests := []struct {
		name      string
		category  string
		subtotals []shopping.Subtotal
		expected  float64
	}{
		{
			name:      "produce scales with quantity",
			category:  "Produce",
			subtotals: []shopping.Subtotal{{Dimension: units.Count, Unit: "each", Amount: 5}},
			expected:  5.0, // 2.0 * 5 * 0.5
		},
		{
			name:      "meat base price",
			category:  "Meat & Seafood",
			subtotals: []shopping.Subtotal{{Dimension: units.Count, Unit: "each", Amount: 1}},
			expected:  4.0, // 8.0 * 1 * 0.5
		},
		{
			name:      "sub-unit quantities floor at one",
			category:  "Produce",
			subtotals: []shopping.Subtotal{{Dimension: units.Volume, Unit: "cup", Amount: 0.5}},
			expected:  1.0, // 2.0 * 1 * 0.5
		},
		{
			name:     "unknown category uses default base",
			category: "Exotic",
			expected: 1.5, // 3.0 * 1 * 0.5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Estimate(t.Context(), "x", tt.subtotals, tt.category)
			if got != tt.expected {
				t.Errorf("Estimate = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEstimatePrefersStorePrice(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("item"); got != "tomato" {
			t.Errorf("expected item query, got %q", got)
		}
		fmt.Fprint(w, `{"name":"tomato","price":1.79}`)
	}))
	defer ts.Close()

	e := NewEstimator(NewClient(ts.URL, "test-key"))
	got := e.Estimate(t.Context(), "tomato",
		[]shopping.Subtotal{{Dimension: units.Count, Unit: "each", Amount: 5}}, "Produce")
	if got != 1.79 {
		t.Errorf("expected store price 1.79, got %v", got)
	}
}

func TestEstimateFallsBackWhenLookupFails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer ts.Close()

	e := NewEstimator(NewClient(ts.URL, "test-key"))
	got := e.Estimate(t.Context(), "tomato",
		[]shopping.Subtotal{{Dimension: units.Count, Unit: "each", Amount: 5}}, "Produce")
	if got != 5.0 {
		t.Errorf("expected heuristic fallback of 5.0, got %v", got)
	}
}
