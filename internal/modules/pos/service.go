package pos

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/satriamaulana/bengkel-backend/internal/model"
	"github.com/satriamaulana/bengkel-backend/internal/store"
)

// Service defines retail checkout business logic and the read side of
// the transaction ledger.
type Service interface {
	// Checkout validates every line against live stock, decrements, and
	// records a Retail transaction. On failure nothing is mutated.
	Checkout(req CheckoutRequest) (*model.Transaction, error)
	// ListTransactions returns the append-only ledger newest-first.
	ListTransactions() []*model.Transaction
}

// CheckoutRequest is the cart handed over by the counter.
type CheckoutRequest struct {
	Items []CheckoutLine `json:"items" validate:"required,min=1,dive"`
}

// CheckoutLine is one item/quantity pair in the cart.
type CheckoutLine struct {
	ItemID string `json:"item_id" validate:"required,uuid"`
	Qty    int    `json:"qty" validate:"required,min=1"`
}

type service struct {
	repo Repository
	log  *logrus.Logger
}

// NewService creates a new POS service.
func NewService(repo Repository, log *logrus.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) Checkout(req CheckoutRequest) (*model.Transaction, error) {
	lines := make([]model.CartLine, len(req.Items))
	for i, line := range req.Items {
		id, err := uuid.Parse(line.ItemID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid item id %q", store.ErrValidation, line.ItemID)
		}
		lines[i] = model.CartLine{ItemID: id, Qty: line.Qty}
	}

	t, err := s.repo.CommitRetailSale(newRetailCode(), lines)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"ref_code": t.RefCode,
		"total":    t.Total,
		"lines":    len(t.Items),
	}).Info("retail sale recorded")
	return t, nil
}

func (s *service) ListTransactions() []*model.Transaction { return s.repo.Transactions() }

// newRetailCode generates the human-facing receipt code.
func newRetailCode() string {
	return fmt.Sprintf("TRX-%05d", 10000+rand.Intn(90000))
}
