package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

func TestCreateItemRequiresName(t *testing.T) {
	s := New()
	if _, err := s.CreateItem(model.InventoryItem{Name: "  ", Dept: model.DeptFB}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUpdateItemMergesOnlyProvidedFields(t *testing.T) {
	s := New()
	item, _ := s.CreateItem(model.InventoryItem{Name: "Teh Botol", Dept: model.DeptFB, Stock: 48, Price: 5000, Category: "Drink"})

	price := int64(6000)
	got, err := s.UpdateItem(item.ID, model.InventoryItemPatch{Price: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Price != 6000 {
		t.Fatalf("expected price 6000, got %d", got.Price)
	}
	if got.Name != "Teh Botol" || got.Stock != 48 || got.Category != "Drink" {
		t.Fatalf("expected untouched fields to keep their values: %+v", got)
	}
}

func TestUpdateItemUnknownID(t *testing.T) {
	s := New()
	if _, err := s.UpdateItem(uuid.New(), model.InventoryItemPatch{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteItem(t *testing.T) {
	s := New()
	item, _ := s.CreateItem(model.InventoryItem{Name: "Roti O", Dept: model.DeptFB, Stock: 20, Price: 12000})
	if err := s.DeleteItem(item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Item(item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected item gone, got %v", err)
	}
	if err := s.DeleteItem(item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected second delete to report not found, got %v", err)
	}
}

func TestDecrementStockFloorsAtZero(t *testing.T) {
	s := New()
	item, _ := s.CreateItem(model.InventoryItem{Name: "Busi NGK", Dept: model.DeptTBSM, Stock: 2, Price: 15000})

	if _, err := s.DecrementStock(item.ID, 3); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	got, _ := s.Item(item.ID)
	if got.Stock != 2 {
		t.Fatalf("expected stock untouched at 2, got %d", got.Stock)
	}

	if _, err := s.DecrementStock(item.ID, 2); err != nil {
		t.Fatalf("decrement: %v", err)
	}
	got, _ = s.Item(item.ID)
	if got.Stock != 0 {
		t.Fatalf("expected stock 0, got %d", got.Stock)
	}
	if _, err := s.DecrementStock(item.ID, 1); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected floor at zero, got %v", err)
	}
}

func TestIncrementStockHasNoUpperBound(t *testing.T) {
	s := New()
	item, _ := s.CreateItem(model.InventoryItem{Name: "Oli Matic", Dept: model.DeptTBSM, Stock: 100, Price: 45000})
	got, err := s.IncrementStock(item.ID, 1000000)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if got.Stock != 1000100 {
		t.Fatalf("expected stock 1000100, got %d", got.Stock)
	}
}

func TestStockAdjustmentsRejectNegativeQty(t *testing.T) {
	s := New()
	item, _ := s.CreateItem(model.InventoryItem{Name: "Kampas Rem", Dept: model.DeptTKRO, Stock: 2, Price: 250000})

	if _, err := s.IncrementStock(item.ID, -5); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := s.DecrementStock(item.ID, -5); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	got, _ := s.Item(item.ID)
	if got.Stock != 2 {
		t.Fatalf("expected stock untouched at 2, got %d", got.Stock)
	}
}

func TestSeedLoadsDemoDataset(t *testing.T) {
	s := New()
	s.Seed()

	if got := len(s.Users()); got != 6 {
		t.Fatalf("expected 6 seeded users, got %d", got)
	}
	if got := len(s.Items()); got != 6 {
		t.Fatalf("expected 6 seeded items, got %d", got)
	}
	if got := len(s.Jobs()); got != 2 {
		t.Fatalf("expected 2 seeded jobs, got %d", got)
	}
	if got := len(s.AvailableMechanics()); got != 2 {
		t.Fatalf("expected 2 free mechanics, got %d", got)
	}
}
