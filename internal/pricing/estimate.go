// Package pricing estimates shopping list item prices from a per-category
// heuristic, optionally refined by a store price API.
package pricing

import (
	"context"
	"log/slog"

	"plateplanner/internal/shopping"
)

// base price per unit by category, in dollars.
var categoryBasePrices = map[string]float64{
	"Produce":             2.0,
	"Meat & Seafood":      8.0,
	"Dairy & Eggs":        4.0,
	"Bakery & Bread":      3.0,
	"Pantry":              3.0,
	"Frozen Foods":        4.0,
	"Beverages":           3.0,
	"Spices & Condiments": 5.0,
	"Other":               3.0,
}

const defaultBasePrice = 3.0

// Estimator prices items. When a store client is configured its quote wins;
// otherwise (or on lookup failure) the category heuristic applies, so an
// estimate is always produced.
type Estimator struct {
	client *Client
}

func NewEstimator(client *Client) *Estimator {
	return &Estimator{client: client}
}

func (e *Estimator) Estimate(ctx context.Context, name string, subtotals []shopping.Subtotal, category string) float64 {
	if e.client != nil {
		price, err := e.client.LookupPrice(ctx, name)
		if err == nil {
			return price
		}
		slog.WarnContext(ctx, "store price lookup failed, using heuristic", "item", name, "error", err)
	}

	base, ok := categoryBasePrices[category]
	if !ok {
		base = defaultBasePrice
	}

	qty := 1.0
	if len(subtotals) > 0 && subtotals[0].Amount > qty {
		qty = subtotals[0].Amount
	}

	estimated := base * qty * 0.5
	return float64(int64(estimated*100+0.5)) / 100
}
