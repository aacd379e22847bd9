package store

import (
	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Users returns all users in insertion order.
func (s *Store) Users() []*model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, cloneUser(u))
	}
	return out
}

// User returns the user with the given id.
func (s *Store) User(id uuid.UUID) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(id)
	if u == nil {
		return nil, ErrNotFound
	}
	return cloneUser(u), nil
}

// FirstUserByRole returns the first seeded user holding the role.
func (s *Store) FirstUserByRole(role model.Role) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Role == role {
			return cloneUser(u), nil
		}
	}
	return nil, ErrNotFound
}

// AvailableMechanics lists mechanics that are not busy, in store order.
func (s *Store) AvailableMechanics() []*model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.User
	for _, u := range s.users {
		if u.Role == model.RoleMechanic && !u.IsBusy {
			out = append(out, cloneUser(u))
		}
	}
	return out
}

// MarkBusy flags a mechanic as busy. No-op for unknown ids or
// non-mechanics, and idempotent for mechanics already busy.
func (s *Store) MarkBusy(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setBusy(id, true)
}

// MarkFree flags a mechanic as free. Same no-op rules as MarkBusy.
func (s *Store) MarkFree(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setBusy(id, false)
}

// ClaimMechanic atomically checks that id is a free mechanic and marks
// them busy. The check and the flip share one critical section so two
// registrations cannot claim the same mechanic.
func (s *Store) ClaimMechanic(id uuid.UUID) (*model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(id)
	if u == nil || u.Role != model.RoleMechanic || u.IsBusy {
		return nil, false
	}
	u.IsBusy = true
	return cloneUser(u), true
}

func (s *Store) findUser(id uuid.UUID) *model.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Store) setBusy(id uuid.UUID, busy bool) {
	u := s.findUser(id)
	if u == nil || u.Role != model.RoleMechanic {
		return
	}
	u.IsBusy = busy
}
