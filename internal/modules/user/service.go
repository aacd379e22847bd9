package user

import (
	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Service exposes the roster and the mechanic availability view.
type Service interface {
	List() []*model.User
	Get(id uuid.UUID) (*model.User, error)
	// AvailableMechanics lists users with role mechanic that are not
	// busy, in store insertion order.
	AvailableMechanics() []*model.User
	MarkBusy(id uuid.UUID)
	MarkFree(id uuid.UUID)
}

type service struct{ repo Repository }

// NewService creates a new user service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) List() []*model.User { return s.repo.Users() }

func (s *service) Get(id uuid.UUID) (*model.User, error) { return s.repo.User(id) }

func (s *service) AvailableMechanics() []*model.User { return s.repo.AvailableMechanics() }

func (s *service) MarkBusy(id uuid.UUID) { s.repo.MarkBusy(id) }

func (s *service) MarkFree(id uuid.UUID) { s.repo.MarkFree(id) }
