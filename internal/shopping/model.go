// Package shopping turns a meal plan's ingredient mentions into a
// deduplicated, unit-consolidated shopping list and stores it.
package shopping

import (
	"time"

	"plateplanner/internal/units"
)

// Subtotal is a summed quantity within one dimension and unit. A group
// normally has exactly one; it gets more only when its mentions mix
// dimensions or carry unknown units.
type Subtotal struct {
	Dimension units.Dimension `json:"dimension"`
	Unit      string          `json:"unit"`
	Amount    float64         `json:"amount"`
}

// Item is one entry of a shopping list.
type Item struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Subtotals      []Subtotal `json:"subtotals"`
	Category       string     `json:"category"`
	EstimatedPrice float64    `json:"estimated_price"`
	Purchased      bool       `json:"is_purchased"`
	Manual         bool       `json:"is_manual"`
	Notes          string     `json:"notes,omitempty"`
	RecipeRefs     []string   `json:"recipe_refs,omitempty"`
}

// List statuses.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// List is a stored shopping list for one user, generated from one meal plan.
type List struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	PlanID         string     `json:"plan_id,omitempty"`
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	Items          []Item     `json:"items"`
	TotalItems     int        `json:"total_items"`
	PurchasedItems int        `json:"purchased_items"`
	EstimatedCost  float64    `json:"total_estimated_cost"`
	// Degraded marks lists consolidated without cross-unit conversion.
	Degraded    bool       `json:"degraded,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ItemUpdate carries partial changes to an item; nil fields are untouched.
type ItemUpdate struct {
	Name      *string `json:"name,omitempty"`
	Category  *string `json:"category,omitempty"`
	Purchased *bool   `json:"is_purchased,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}
