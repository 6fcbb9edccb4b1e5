// Package mealplan loads stored meal plans and their recipes and emits the
// flat ingredient mention list the shopping pipeline consumes.
package mealplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"plateplanner/internal/cache"
	"plateplanner/internal/ingredients"
)

const planCachePrefix = "mealplan/"
const recipeCachePrefix = "recipe/"

var ErrPlanNotFound = errors.New("meal plan not found")

// RecipeIngredient is one already-parsed ingredient line. Quantity zero
// means the amount was unspecified in the recipe.
type RecipeIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type Recipe struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

type PlanItem struct {
	RecipeID    string  `json:"recipe_id"`
	RecipeTitle string  `json:"recipe_title"`
	Servings    float64 `json:"servings"`
}

type Plan struct {
	ID     string     `json:"id"`
	UserID string     `json:"user_id"`
	Items  []PlanItem `json:"items"`
}

// Source reads plans and recipes from the cache. A recipe that fails to
// load is skipped with a warning rather than failing the whole plan.
type Source struct {
	cache cache.Cache
}

func NewSource(c cache.Cache) *Source {
	return &Source{cache: c}
}

func (s *Source) SavePlan(plan *Plan) error {
	planJSON := lo.Must(json.Marshal(plan))
	return s.cache.Set(planCachePrefix+plan.ID, string(planJSON))
}

func (s *Source) SaveRecipe(recipe *Recipe) error {
	recipeJSON := lo.Must(json.Marshal(recipe))
	return s.cache.Set(recipeCachePrefix+recipe.ID, string(recipeJSON))
}

func (s *Source) GetPlan(id string) (*Plan, error) {
	planBytes, found := s.cache.Get(planCachePrefix + id)
	if !found {
		return nil, ErrPlanNotFound
	}
	var plan Plan
	if err := json.Unmarshal([]byte(planBytes), &plan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal meal plan: %w", err)
	}
	return &plan, nil
}

func (s *Source) getRecipe(id string) (*Recipe, error) {
	recipeBytes, found := s.cache.Get(recipeCachePrefix + id)
	if !found {
		return nil, fmt.Errorf("recipe %s not found", id)
	}
	var recipe Recipe
	if err := json.Unmarshal([]byte(recipeBytes), &recipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recipe: %w", err)
	}
	return &recipe, nil
}

// Mentions flattens a plan's recipes into raw mentions, scaling quantities
// by the planned servings. Mention order follows plan and recipe order so
// the grouper's arrival-order behavior is reproducible.
func (s *Source) Mentions(ctx context.Context, planID string) ([]ingredients.Mention, error) {
	plan, err := s.GetPlan(planID)
	if err != nil {
		return nil, err
	}

	var mentions []ingredients.Mention
	for _, item := range plan.Items {
		recipe, err := s.getRecipe(item.RecipeID)
		if err != nil {
			slog.WarnContext(ctx, "failed to load recipe for shopping list", "recipe", item.RecipeID, "error", err)
			continue
		}

		ref := recipe.Title
		if ref == "" {
			ref = item.RecipeTitle
		}

		servings := item.Servings
		if servings <= 0 {
			servings = 1
		}

		for _, ing := range recipe.Ingredients {
			mentions = append(mentions, ingredients.Mention{
				RawName:   ing.Name,
				Quantity:  ing.Quantity * servings,
				RawUnit:   ing.Unit,
				RecipeRef: ref,
			})
		}
	}
	return mentions, nil
}
