package auth

import (
	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Service defines role-selection login. The token it issues is a
// session pointer for the UI, not an access-control layer: no route in
// the system is gated on it.
type Service interface {
	// Login picks the first seeded user holding the role. Unknown roles
	// fall back to a transient public guest user.
	Login(role string) (string, *model.User, error)
}

// UserDirectory is the slice of the user store login needs.
type UserDirectory interface {
	FirstUserByRole(role model.Role) (*model.User, error)
}
