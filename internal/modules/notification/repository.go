package notification

import (
	"github.com/google/uuid"

	"github.com/satriamaulana/bengkel-backend/internal/model"
)

// Repository defines notification storage. Notifications are never
// deleted; only read-state transitions mutate them.
type Repository interface {
	PushNotification(userID uuid.UUID, message string) *model.Notification
	MarkNotificationRead(id uuid.UUID)
	MarkAllNotificationsRead(userID uuid.UUID)
	NotificationsFor(userID uuid.UUID) []*model.Notification
	UnreadCount(userID uuid.UUID) int
}
