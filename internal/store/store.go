package store

import (
	"sync"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Store is the in-memory entity store. Every read and write takes the
// single mutex, which makes each operation an exclusive critical
// section over the whole state. Slices keep insertion order.
type Store struct {
	mu            sync.Mutex
	users         []*model.User
	items         []*model.InventoryItem
	jobs          []*model.ServiceJob
	notifications []*model.Notification
	transactions  []*model.Transaction
}

// New returns an empty store. Call Seed to load the demo dataset.
func New() *Store { return &Store{} }

// Reads hand out copies so callers can never mutate shared state
// behind the store's back.

func cloneUser(u *model.User) *model.User {
	c := *u
	return &c
}

func cloneItem(i *model.InventoryItem) *model.InventoryItem {
	c := *i
	return &c
}

func cloneJob(j *model.ServiceJob) *model.ServiceJob {
	c := *j
	if j.MechanicID != nil {
		id := *j.MechanicID
		c.MechanicID = &id
	}
	c.PartsUsed = append([]model.PartUsed(nil), j.PartsUsed...)
	return &c
}

func cloneNotification(n *model.Notification) *model.Notification {
	c := *n
	return &c
}

func cloneTransaction(t *model.Transaction) *model.Transaction {
	c := *t
	c.Items = append([]model.TransactionItem(nil), t.Items...)
	return &c
}
