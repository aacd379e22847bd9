package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Items returns all inventory items in insertion order.
func (s *Store) Items() []*model.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.InventoryItem, 0, len(s.items))
	for _, i := range s.items {
		out = append(out, cloneItem(i))
	}
	return out
}

// Item returns the inventory item with the given id.
func (s *Store) Item(id uuid.UUID) (*model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findItem(id)
	if i == nil {
		return nil, ErrNotFound
	}
	return cloneItem(i), nil
}

// CreateItem stores a new item and returns it with its assigned id.
// The name must be non-empty.
func (s *Store) CreateItem(item model.InventoryItem) (*model.InventoryItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if item.Stock < 0 || item.Price < 0 {
		return nil, fmt.Errorf("%w: stock and price must not be negative", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = uuid.New()
	s.items = append(s.items, &item)
	return cloneItem(&item), nil
}

// UpdateItem merges the provided fields into the item. Fields left nil
// in the patch keep their current value.
func (s *Store) UpdateItem(id uuid.UUID, patch model.InventoryItemPatch) (*model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findItem(id)
	if i == nil {
		return nil, ErrNotFound
	}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: item name is required", ErrValidation)
		}
		i.Name = *patch.Name
	}
	if patch.Dept != nil {
		i.Dept = *patch.Dept
	}
	if patch.Stock != nil {
		if *patch.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must not be negative", ErrValidation)
		}
		i.Stock = *patch.Stock
	}
	if patch.Price != nil {
		if *patch.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
		}
		i.Price = *patch.Price
	}
	if patch.Category != nil {
		i.Category = *patch.Category
	}
	return cloneItem(i), nil
}

// DeleteItem removes the item. Jobs and carts referencing it are the
// caller's concern; recorded snapshots keep their own copies.
func (s *Store) DeleteItem(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for idx, i := range s.items {
		if i.ID == id {
			s.items = append(s.items[:idx], s.items[idx+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// IncrementStock adds qty units of stock. There is no upper bound.
// The qty must not be negative.
func (s *Store) IncrementStock(id uuid.UUID, qty int) (*model.InventoryItem, error) {
	if qty < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findItem(id)
	if i == nil {
		return nil, ErrNotFound
	}
	i.Stock += qty
	return cloneItem(i), nil
}

// DecrementStock removes qty units of stock. The floor-at-zero check is
// evaluated per call, inside the lock, so concurrent decrements against
// the same item can never overshoot zero.
func (s *Store) DecrementStock(id uuid.UUID, qty int) (*model.InventoryItem, error) {
	if qty < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.findItem(id)
	if i == nil {
		return nil, ErrNotFound
	}
	if qty > i.Stock {
		return nil, fmt.Errorf("%w: %s has %d in stock, requested %d", ErrInsufficientStock, i.Name, i.Stock, qty)
	}
	i.Stock -= qty
	return cloneItem(i), nil
}

func (s *Store) findItem(id uuid.UUID) *model.InventoryItem {
	for _, i := range s.items {
		if i.ID == id {
			return i
		}
	}
	return nil
}
