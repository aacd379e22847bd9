package pos

import (
	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Repository defines transaction ledger storage. CommitRetailSale is a
// single call: stock validation, decrement, and the ledger append all
// happen atomically or not at all.
type Repository interface {
	CommitRetailSale(refCode string, lines []model.CartLine) (*model.Transaction, error)
	Transactions() []*model.Transaction
}
