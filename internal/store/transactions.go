package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// AppendTransaction records a completed monetary event. The ledger is
// append-only; there is no update or delete.
func (s *Store) AppendTransaction(t *model.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, cloneTransaction(t))
}

// Transactions returns the ledger newest-first.
func (s *Store) Transactions() []*model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.Transaction, 0, len(s.transactions))
	for i := len(s.transactions) - 1; i >= 0; i-- {
		out = append(out, cloneTransaction(s.transactions[i]))
	}
	return out
}

// CommitRetailSale validates every cart line against live stock, then
// decrements stock and appends the Retail transaction, all inside one
// critical section. On any validation failure nothing is mutated.
// Names and prices are snapshotted at commit time.
func (s *Store) CommitRetailSale(refCode string, lines []model.CartLine) (*model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resolved := make([]*model.InventoryItem, len(lines))
	requested := make(map[uuid.UUID]int, len(lines))
	for idx, line := range lines {
		i := s.findItem(line.ItemID)
		if i == nil {
			return nil, fmt.Errorf("%w: cart item %s", ErrNotFound, line.ItemID)
		}
		if line.Qty <= 0 {
			return nil, fmt.Errorf("%w: quantity for %s must be positive", ErrValidation, i.Name)
		}
		// Validate the running total per item, so a cart holding the
		// same item on several lines cannot pass line-by-line and
		// overshoot the stock on apply.
		requested[i.ID] += line.Qty
		if requested[i.ID] > i.Stock {
			return nil, fmt.Errorf("%w: %s has %d in stock, requested %d", ErrInsufficientStock, i.Name, i.Stock, requested[i.ID])
		}
		resolved[idx] = i
	}

	var total int64
	items := make([]model.TransactionItem, len(lines))
	for idx, line := range lines {
		i := resolved[idx]
		i.Stock -= line.Qty
		items[idx] = model.TransactionItem{Name: i.Name, Qty: line.Qty, Price: i.Price}
		total += i.Price * int64(line.Qty)
	}

	t := &model.Transaction{
		ID:      uuid.New(),
		Date:    time.Now(),
		Total:   total,
		Items:   items,
		Type:    model.TransactionRetail,
		RefCode: refCode,
	}
	s.transactions = append(s.transactions, t)
	return cloneTransaction(t), nil
}
