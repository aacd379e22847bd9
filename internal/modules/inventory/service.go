package inventory

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Service defines inventory ledger business logic.
type Service interface {
	List() []*model.InventoryItem
	Get(id uuid.UUID) (*model.InventoryItem, error)
	Create(req CreateItemRequest) (*model.InventoryItem, error)
	Update(id uuid.UUID, patch model.InventoryItemPatch) (*model.InventoryItem, error)
	Delete(id uuid.UUID) error
	// Increment has no upper bound; Decrement fails when qty exceeds
	// the current stock and leaves the item untouched.
	Increment(id uuid.UUID, qty int) (*model.InventoryItem, error)
	Decrement(id uuid.UUID, qty int) (*model.InventoryItem, error)
}

// CreateItemRequest holds data for creating an inventory item.
type CreateItemRequest struct {
	Name     string     `json:"name" validate:"required"`
	Dept     model.Dept `json:"dept" validate:"required,oneof=TKRO TBSM FB"`
	Stock    int        `json:"stock" validate:"min=0"`
	Price    int64      `json:"price" validate:"min=0"`
	Category string     `json:"category"`
}

type service struct {
	repo Repository
	log  *logrus.Logger
}

// NewService creates a new inventory service.
func NewService(repo Repository, log *logrus.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) List() []*model.InventoryItem { return s.repo.Items() }

func (s *service) Get(id uuid.UUID) (*model.InventoryItem, error) { return s.repo.Item(id) }

func (s *service) Create(req CreateItemRequest) (*model.InventoryItem, error) {
	item, err := s.repo.CreateItem(model.InventoryItem{
		Name:     req.Name,
		Dept:     req.Dept,
		Stock:    req.Stock,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"item_id": item.ID, "name": item.Name}).Info("inventory item created")
	return item, nil
}

func (s *service) Update(id uuid.UUID, patch model.InventoryItemPatch) (*model.InventoryItem, error) {
	return s.repo.UpdateItem(id, patch)
}

func (s *service) Delete(id uuid.UUID) error {
	if err := s.repo.DeleteItem(id); err != nil {
		return err
	}
	s.log.WithField("item_id", id).Info("inventory item deleted")
	return nil
}

func (s *service) Increment(id uuid.UUID, qty int) (*model.InventoryItem, error) {
	return s.repo.IncrementStock(id, qty)
}

func (s *service) Decrement(id uuid.UUID, qty int) (*model.InventoryItem, error) {
	return s.repo.DecrementStock(id, qty)
}
