package notification

import (
	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Service defines the notification center.
type Service interface {
	Push(userID uuid.UUID, message string) *model.Notification
	// MarkRead is idempotent; unknown ids are a no-op.
	MarkRead(id uuid.UUID)
	MarkAllRead(userID uuid.UUID)
	// ListFor returns the user's notifications newest-first.
	ListFor(userID uuid.UUID) []*model.Notification
	UnreadCount(userID uuid.UUID) int
}

type service struct{ repo Repository }

// NewService creates a new notification service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Push(userID uuid.UUID, message string) *model.Notification {
	return s.repo.PushNotification(userID, message)
}

func (s *service) MarkRead(id uuid.UUID) { s.repo.MarkNotificationRead(id) }

func (s *service) MarkAllRead(userID uuid.UUID) { s.repo.MarkAllNotificationsRead(userID) }

func (s *service) ListFor(userID uuid.UUID) []*model.Notification {
	return s.repo.NotificationsFor(userID)
}

func (s *service) UnreadCount(userID uuid.UUID) int { return s.repo.UnreadCount(userID) }
