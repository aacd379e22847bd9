package inventory

import (
	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Repository defines inventory data storage.
type Repository interface {
	Items() []*model.InventoryItem
	Item(id uuid.UUID) (*model.InventoryItem, error)
	CreateItem(item model.InventoryItem) (*model.InventoryItem, error)
	UpdateItem(id uuid.UUID, patch model.InventoryItemPatch) (*model.InventoryItem, error)
	DeleteItem(id uuid.UUID) error
	IncrementStock(id uuid.UUID, qty int) (*model.InventoryItem, error)
	DecrementStock(id uuid.UUID, qty int) (*model.InventoryItem, error)
}
