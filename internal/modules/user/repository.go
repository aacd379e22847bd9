package user

import (
	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Repository defines user data access.
type Repository interface {
	Users() []*model.User
	User(id uuid.UUID) (*model.User, error)
	AvailableMechanics() []*model.User
	MarkBusy(id uuid.UUID)
	MarkFree(id uuid.UUID)
}
