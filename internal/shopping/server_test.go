package shopping

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"plateplanner/internal/cache"
	"plateplanner/internal/units"
)

type stubBuilder struct {
	list *List
	err  error
}

func (b *stubBuilder) Build(_ context.Context, req GenerateRequest) (*List, error) {
	if b.err != nil {
		return nil, b.err
	}
	list := *b.list
	list.UserID = req.UserID
	list.PlanID = req.PlanID
	return &list, nil
}

func newTestServer(t *testing.T, b builder) (*httptest.Server, *Storage) {
	t.Helper()
	storage := NewStorage(cache.NewInMemoryCache())
	mux := http.NewServeMux()
	NewHandler(b, storage, stubCategorizer{}, stubPricer{}).Register(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, storage
}

func TestHandleGenerate(t *testing.T) {
	ts, storage := newTestServer(t, &stubBuilder{list: testList("gen-1", "", time.Now())})

	resp, err := http.Post(ts.URL+"/shoppinglists", "application/json",
		strings.NewReader(`{"user_id":"u1","plan_id":"plan-1"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var list List
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if list.PlanID != "plan-1" {
		t.Errorf("expected plan id to round trip, got %q", list.PlanID)
	}

	if _, err := storage.GetByID(list.ID); err != nil {
		t.Errorf("generated list should be persisted: %v", err)
	}
}

func TestHandleGenerateRequiresPlan(t *testing.T) {
	ts, _ := newTestServer(t, &stubBuilder{list: testList("gen-1", "", time.Now())})

	resp, err := http.Post(ts.URL+"/shoppinglists", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without plan_id, got %d", resp.StatusCode)
	}
}

func TestHandleGetCategoriesView(t *testing.T) {
	ts, storage := newTestServer(t, &stubBuilder{list: testList("l1", "u1", time.Now())})
	if err := storage.Save(testList("l1", "u1", time.Now())); err != nil {
		t.Fatalf("failed to seed list: %v", err)
	}

	resp, err := http.Get(ts.URL + "/shoppinglists/l1?view=categories")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var view categoryView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		t.Fatalf("failed to decode view: %v", err)
	}

	if len(view.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %v", view.Categories)
	}
	if view.Categories[0] != "Dairy & Eggs" || view.Categories[1] != "Produce" {
		t.Errorf("expected sorted categories, got %v", view.Categories)
	}
	if len(view.Groups["Produce"]) != 1 {
		t.Errorf("expected tomato under Produce, got %v", view.Groups["Produce"])
	}
}

func TestHandleGetMissing(t *testing.T) {
	ts, _ := newTestServer(t, &stubBuilder{list: testList("l1", "u1", time.Now())})

	resp, err := http.Get(ts.URL + "/shoppinglists/ghost")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestHandleUpdateItemTogglesPurchased(t *testing.T) {
	ts, storage := newTestServer(t, &stubBuilder{list: testList("l1", "u1", time.Now())})
	if err := storage.Save(testList("l1", "u1", time.Now())); err != nil {
		t.Fatalf("failed to seed list: %v", err)
	}

	req, _ := http.NewRequest(http.MethodPatch, ts.URL+"/shoppinglists/l1/items/item-1",
		strings.NewReader(`{"is_purchased":true}`))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var list List
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if list.PurchasedItems != 1 || !list.Items[0].Purchased {
		t.Errorf("expected item-1 purchased and counter at 1, got %+v", list)
	}
}

func TestHandleAddManualItem(t *testing.T) {
	ts, storage := newTestServer(t, &stubBuilder{list: testList("l1", "u1", time.Now())})
	if err := storage.Save(testList("l1", "u1", time.Now())); err != nil {
		t.Fatalf("failed to seed list: %v", err)
	}

	resp, err := http.Post(ts.URL+"/shoppinglists/l1/items", "application/json",
		strings.NewReader(`{"name":"Coffee Beans","quantity":1,"unit":"lb"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var list List
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(list.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list.Items))
	}
	added := list.Items[2]
	if added.Name != "coffee bean" || !added.Manual {
		t.Errorf("expected normalized manual item, got %+v", added)
	}
	if added.Subtotals[0].Dimension != units.Weight || added.Subtotals[0].Unit != "pound" {
		t.Errorf("expected pound subtotal, got %+v", added.Subtotals[0])
	}
}

func TestHandleDeleteList(t *testing.T) {
	ts, storage := newTestServer(t, &stubBuilder{list: testList("l1", "u1", time.Now())})
	if err := storage.Save(testList("l1", "u1", time.Now())); err != nil {
		t.Fatalf("failed to seed list: %v", err)
	}

	req, _ := http.NewRequest(http.MethodDelete, ts.URL+"/shoppinglists/l1", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}
	if _, err := storage.GetByID("l1"); err == nil {
		t.Error("expected list to be gone after delete")
	}
}
