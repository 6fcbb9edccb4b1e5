package shopping

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"plateplanner/internal/ingredients"
)

// MentionSource supplies the flat mention list for a meal plan. Parsing
// recipe text into quantity/unit/name happens upstream of this package.
type MentionSource interface {
	Mentions(ctx context.Context, planID string) ([]ingredients.Mention, error)
}

// Categorizer assigns a category label from the fixed keyword taxonomy.
type Categorizer interface {
	Categorize(name string) string
}

// Pricer estimates a price for one consolidated item.
type Pricer interface {
	Estimate(ctx context.Context, name string, subtotals []Subtotal, category string) float64
}

// Builder orchestrates the whole pipeline: mentions in, grouped and
// consolidated items out. It is the only piece here that talks to
// collaborators; the grouping and consolidation steps are pure functions of
// their inputs and the static tables.
type Builder struct {
	source       MentionSource
	resolver     *ingredients.Resolver
	consolidator *Consolidator
	categorizer  Categorizer
	pricer       Pricer
	threshold    int
}

func NewBuilder(source MentionSource, resolver *ingredients.Resolver, consolidator *Consolidator, categorizer Categorizer, pricer Pricer, threshold int) *Builder {
	return &Builder{
		source:       source,
		resolver:     resolver,
		consolidator: consolidator,
		categorizer:  categorizer,
		pricer:       pricer,
		threshold:    threshold,
	}
}

// GenerateRequest asks for a shopping list from one meal plan.
type GenerateRequest struct {
	UserID string `json:"user_id"`
	PlanID string `json:"plan_id"`
	Name   string `json:"name,omitempty"`
	// ExcludeItems drops ingredients by normalized name, e.g. pantry
	// staples the user already has.
	ExcludeItems []string `json:"exclude_items,omitempty"`
}

// Build generates a shopping list. An empty mention list yields an empty,
// valid list; nothing in the pipeline is fatal.
func (b *Builder) Build(ctx context.Context, req GenerateRequest) (*List, error) {
	mentions, err := b.source.Mentions(ctx, req.PlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentions for plan %s: %w", req.PlanID, err)
	}

	grouper := ingredients.NewGrouper(b.resolver, b.threshold)
	for _, m := range mentions {
		grouper.Assign(m)
	}

	excluded := make(map[string]struct{}, len(req.ExcludeItems))
	for _, name := range req.ExcludeItems {
		excluded[ingredients.Normalize(name)] = struct{}{}
	}

	now := time.Now()
	list := &List{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		PlanID:    req.PlanID,
		Name:      req.Name,
		Status:    StatusActive,
		Items:     []Item{},
		Degraded:  b.consolidator.Degraded(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if list.Name == "" {
		list.Name = "Shopping List - " + now.Format("Jan 02")
	}

	for _, group := range grouper.Groups() {
		if _, skip := excluded[group.Canonical]; skip {
			continue
		}

		subtotals := b.consolidator.Consolidate(ctx, group.Members)
		category := b.categorizer.Categorize(group.Canonical)
		item := Item{
			ID:         uuid.NewString(),
			Name:       group.Canonical,
			Subtotals:  subtotals,
			Category:   category,
			RecipeRefs: lo.Uniq(group.RecipeRefs),
		}
		item.EstimatedPrice = b.pricer.Estimate(ctx, item.Name, subtotals, category)

		list.Items = append(list.Items, item)
		list.EstimatedCost += item.EstimatedPrice
	}

	list.TotalItems = len(list.Items)
	list.EstimatedCost = roundCents(list.EstimatedCost)

	slog.InfoContext(ctx, "built shopping list",
		"plan", req.PlanID, "mentions", len(mentions), "items", list.TotalItems, "degraded", list.Degraded)
	return list, nil
}

func roundCents(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
