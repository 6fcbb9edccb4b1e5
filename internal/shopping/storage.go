package shopping

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"plateplanner/internal/cache"
)

const listCachePrefix = "shoppinglist/"
const userIndexPrefix = "shoppinglists/"

var (
	ErrNotFound     = errors.New("shopping list not found")
	ErrItemNotFound = errors.New("shopping list item not found")
)

// Storage persists shopping lists as JSON in the cache, with a per-user key
// index for listing. No transactions; the index is best-effort like the
// rest of the cache layer.
type Storage struct {
	cache cache.Cache
}

func NewStorage(c cache.Cache) *Storage {
	return &Storage{cache: c}
}

func (s *Storage) Save(list *List) error {
	listJSON, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal shopping list: %w", err)
	}
	if err := s.cache.Set(listCachePrefix+list.ID, string(listJSON)); err != nil {
		return fmt.Errorf("failed to store shopping list: %w", err)
	}
	if list.UserID != "" {
		if err := s.cache.Set(userIndexPrefix+list.UserID+"/"+list.ID, list.ID); err != nil {
			return fmt.Errorf("failed to index shopping list by user: %w", err)
		}
	}
	return nil
}

func (s *Storage) GetByID(id string) (*List, error) {
	listBytes, found := s.cache.Get(listCachePrefix + id)
	if !found {
		return nil, ErrNotFound
	}
	var list List
	if err := json.Unmarshal([]byte(listBytes), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shopping list: %w", err)
	}
	return &list, nil
}

// ListByUser returns a user's lists, newest first.
func (s *Storage) ListByUser(userID string) ([]*List, error) {
	ids, err := s.cache.List(userIndexPrefix + userID + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping lists: %w", err)
	}

	lists := make([]*List, 0, len(ids))
	for _, id := range ids {
		list, err := s.GetByID(id)
		if errors.Is(err, ErrNotFound) {
			continue // index entry outlived the list
		}
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}

	for i := range lists {
		for j := i + 1; j < len(lists); j++ {
			if lists[j].CreatedAt.After(lists[i].CreatedAt) {
				lists[i], lists[j] = lists[j], lists[i]
			}
		}
	}
	return lists, nil
}

// AddItem appends a manual item and updates the list totals.
func (s *Storage) AddItem(listID string, item Item) (*List, error) {
	list, err := s.GetByID(listID)
	if err != nil {
		return nil, err
	}

	item.Manual = true
	list.Items = append(list.Items, item)
	list.TotalItems++
	list.EstimatedCost = roundCents(list.EstimatedCost + item.EstimatedPrice)
	list.UpdatedAt = time.Now()

	if err := s.Save(list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateItem applies a partial update, keeping the purchased counter in step.
func (s *Storage) UpdateItem(listID, itemID string, upd ItemUpdate) (*List, error) {
	list, err := s.GetByID(listID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	item := &list.Items[idx]
	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.Notes != nil {
		item.Notes = *upd.Notes
	}
	if upd.Purchased != nil && *upd.Purchased != item.Purchased {
		item.Purchased = *upd.Purchased
		if item.Purchased {
			list.PurchasedItems++
		} else {
			list.PurchasedItems--
		}
	}
	list.UpdatedAt = time.Now()

	if err := s.Save(list); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteItem removes an item and updates the list totals.
func (s *Storage) DeleteItem(listID, itemID string) (*List, error) {
	list, err := s.GetByID(listID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range list.Items {
		if list.Items[i].ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	item := list.Items[idx]
	list.Items = append(list.Items[:idx], list.Items[idx+1:]...)
	list.TotalItems--
	if item.Purchased {
		list.PurchasedItems--
	}
	list.EstimatedCost = roundCents(list.EstimatedCost - item.EstimatedPrice)
	list.UpdatedAt = time.Now()

	if err := s.Save(list); err != nil {
		return nil, err
	}
	return list, nil
}

// Complete marks every item purchased and the list completed.
func (s *Storage) Complete(listID string) (*List, error) {
	list, err := s.GetByID(listID)
	if err != nil {
		return nil, err
	}

	for i := range list.Items {
		list.Items[i].Purchased = true
	}
	now := time.Now()
	list.Status = StatusCompleted
	list.PurchasedItems = list.TotalItems
	list.CompletedAt = &now
	list.UpdatedAt = now

	if err := s.Save(list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Storage) Delete(listID string) error {
	list, err := s.GetByID(listID)
	if err != nil {
		return err
	}
	if err := s.cache.Delete(listCachePrefix + listID); err != nil {
		return fmt.Errorf("failed to delete shopping list: %w", err)
	}
	if list.UserID != "" {
		if err := s.cache.Delete(userIndexPrefix + list.UserID + "/" + listID); err != nil {
			return fmt.Errorf("failed to remove shopping list index: %w", err)
		}
	}
	return nil
}
