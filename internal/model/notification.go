package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a fire-and-forget message for one user. Notifications
// are never deleted; only the read flag changes.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
