package shopping

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/google/uuid"

	"plateplanner/internal/ingredients"
	"plateplanner/internal/units"
)

type builder interface {
	Build(ctx context.Context, req GenerateRequest) (*List, error)
}

type server struct {
	builder     builder
	storage     *Storage
	categorizer Categorizer
	pricer      Pricer
}

// NewHandler returns the shopping list endpoints for registration on a mux.
func NewHandler(b builder, storage *Storage, categorizer Categorizer, pricer Pricer) *server {
	return &server{builder: b, storage: storage, categorizer: categorizer, pricer: pricer}
}

func (s *server) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /shoppinglists", s.handleGenerate)
	mux.HandleFunc("GET /shoppinglists", s.handleListByUser)
	mux.HandleFunc("GET /shoppinglists/{id}", s.handleGet)
	mux.HandleFunc("DELETE /shoppinglists/{id}", s.handleDelete)
	mux.HandleFunc("POST /shoppinglists/{id}/complete", s.handleComplete)
	mux.HandleFunc("POST /shoppinglists/{id}/items", s.handleAddItem)
	mux.HandleFunc("PATCH /shoppinglists/{id}/items/{itemID}", s.handleUpdateItem)
	mux.HandleFunc("DELETE /shoppinglists/{id}/items/{itemID}", s.handleDeleteItem)
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.PlanID == "" {
		http.Error(w, "plan_id is required", http.StatusBadRequest)
		return
	}

	list, err := s.builder.Build(ctx, req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build shopping list", "plan", req.PlanID, "error", err)
		http.Error(w, "failed to generate shopping list", http.StatusInternalServerError)
		return
	}

	if err := s.storage.Save(list); err != nil {
		slog.ErrorContext(ctx, "failed to save shopping list", "list", list.ID, "error", err)
		http.Error(w, "failed to save shopping list", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, list)
}

func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
	list, ok := s.load(w, r)
	if !ok {
		return
	}

	if r.URL.Query().Get("view") == "categories" {
		writeJSON(w, http.StatusOK, groupByCategory(list))
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *server) handleListByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user")
	if userID == "" {
		http.Error(w, "provide a user with ?user=...", http.StatusBadRequest)
		return
	}

	lists, err := s.storage.ListByUser(userID)
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to list shopping lists", "user", userID, "error", err)
		http.Error(w, "failed to list shopping lists", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

func (s *server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.storage.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "shopping list not found", http.StatusNotFound)
			return
		}
		slog.ErrorContext(r.Context(), "failed to delete shopping list", "list", id, "error", err)
		http.Error(w, "failed to delete shopping list", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) handleComplete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	list, err := s.storage.Complete(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "shopping list not found", http.StatusNotFound)
			return
		}
		slog.ErrorContext(r.Context(), "failed to complete shopping list", "list", id, "error", err)
		http.Error(w, "failed to complete shopping list", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// manualItemRequest is the payload for adding a pantry item by hand.
type manualItemRequest struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Notes    string  `json:"notes"`
}

func (s *server) buildManualItem(ctx context.Context, req manualItemRequest) Item {
	u := units.Normalize(req.Unit)
	item := Item{
		ID:       uuid.NewString(),
		Name:     ingredients.Normalize(req.Name),
		Category: req.Category,
		Notes:    req.Notes,
		Subtotals: []Subtotal{
			{Dimension: u.Dimension, Unit: u.Token, Amount: req.Quantity},
		},
	}
	if item.Category == "" {
		item.Category = s.categorizer.Categorize(item.Name)
	}
	item.EstimatedPrice = s.pricer.Estimate(ctx, item.Name, item.Subtotals, item.Category)
	return item
}

func (s *server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var req manualItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "invalid item body", http.StatusBadRequest)
		return
	}

	item := s.buildManualItem(ctx, req)
	list, err := s.storage.AddItem(id, item)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "shopping list not found", http.StatusNotFound)
			return
		}
		slog.ErrorContext(ctx, "failed to add item", "list", id, "error", err)
		http.Error(w, "failed to add item", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

func (s *server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	itemID := r.PathValue("itemID")

	var upd ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "invalid update body", http.StatusBadRequest)
		return
	}

	list, err := s.storage.UpdateItem(id, itemID, upd)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrItemNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		slog.ErrorContext(r.Context(), "failed to update item", "list", id, "item", itemID, "error", err)
		http.Error(w, "failed to update item", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	itemID := r.PathValue("itemID")

	list, err := s.storage.DeleteItem(id, itemID)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrItemNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		slog.ErrorContext(r.Context(), "failed to delete item", "list", id, "item", itemID, "error", err)
		http.Error(w, "failed to delete item", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *server) load(w http.ResponseWriter, r *http.Request) (*List, bool) {
	id := r.PathValue("id")
	list, err := s.storage.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "shopping list not found", http.StatusNotFound)
			return nil, false
		}
		slog.ErrorContext(r.Context(), "failed to load shopping list", "list", id, "error", err)
		http.Error(w, "failed to load shopping list", http.StatusInternalServerError)
		return nil, false
	}
	return list, true
}

// categoryView is the client-facing read model: items grouped by category
// for display.
type categoryView struct {
	ListID     string            `json:"list_id"`
	Name       string            `json:"name"`
	Status     string            `json:"status"`
	Categories []string          `json:"categories"`
	Groups     map[string][]Item `json:"groups"`
}

func groupByCategory(list *List) categoryView {
	groups := make(map[string][]Item)
	for _, item := range list.Items {
		category := item.Category
		if category == "" {
			category = "Other"
		}
		groups[category] = append(groups[category], item)
	}

	categories := make([]string, 0, len(groups))
	for category := range groups {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return categoryView{
		ListID:     list.ID,
		Name:       list.Name,
		Status:     list.Status,
		Categories: categories,
		Groups:     groups,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
