package inventory

import (
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/satriamaulana/bengkel-backend/internal/model"
	"github.com/satriamaulana/bengkel-backend/internal/store"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	st := store.New()
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewService(st, log)
}

func TestCreateRejectsEmptyName(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Create(CreateItemRequest{Name: "", Dept: model.DeptFB}); !errors.Is(err, store.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := newTestService(t)
	item, err := svc.Create(CreateItemRequest{Name: "Oli Mesin 10W-40", Dept: model.DeptTKRO, Stock: 50, Price: 65000, Category: "Oil"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.ID == uuid.Nil {
		t.Fatalf("expected assigned id")
	}
	got, err := svc.Get(item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Oli Mesin 10W-40" || got.Stock != 50 {
		t.Fatalf("unexpected item: %+v", got)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Update(uuid.New(), model.InventoryItemPatch{}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDecrementPropagatesInsufficientStock(t *testing.T) {
	svc := newTestService(t)
	item, _ := svc.Create(CreateItemRequest{Name: "Busi NGK", Dept: model.DeptTBSM, Stock: 1, Price: 15000})
	if _, err := svc.Decrement(item.ID, 2); !errors.Is(err, store.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}
