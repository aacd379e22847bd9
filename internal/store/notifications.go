package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// PushNotification appends a new unread notification for the user.
func (s *Store) PushNotification(userID uuid.UUID, message string) *model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := &model.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		Timestamp: time.Now(),
		Read:      false,
	}
	s.notifications = append(s.notifications, n)
	return cloneNotification(n)
}

// MarkNotificationRead flips the read flag. Idempotent, and a no-op
// for unknown ids.
func (s *Store) MarkNotificationRead(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.ID == id {
			n.Read = true
			return
		}
	}
}

// MarkAllNotificationsRead marks every notification for the user as
// read, leaving other users' notifications untouched.
func (s *Store) MarkAllNotificationsRead(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
}

// NotificationsFor returns the user's notifications newest-first.
func (s *Store) NotificationsFor(userID uuid.UUID) []*model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*model.Notification
	// Appended in arrival order, so walk backwards for newest-first.
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if s.notifications[i].UserID == userID {
			out = append(out, cloneNotification(s.notifications[i]))
		}
	}
	return out
}

// UnreadCount returns how many of the user's notifications are unread.
func (s *Store) UnreadCount(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count
}
