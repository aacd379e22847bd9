package store

import (
	"testing"

	"github.com/google/uuid"
)

func TestNotificationsNewestFirst(t *testing.T) {
	s := New()
	user := uuid.New()
	s.PushNotification(user, "pertama")
	s.PushNotification(user, "kedua")

	got := s.NotificationsFor(user)
	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0].Message != "kedua" || got[1].Message != "pertama" {
		t.Fatalf("expected newest-first ordering, got %q then %q", got[0].Message, got[1].Message)
	}
	if got[0].Read {
		t.Fatalf("expected notifications to start unread")
	}
}

func TestMarkReadIsIdempotent(t *testing.T) {
	s := New()
	user := uuid.New()
	n := s.PushNotification(user, "halo")

	s.MarkNotificationRead(n.ID)
	s.MarkNotificationRead(n.ID)

	got := s.NotificationsFor(user)
	if !got[0].Read {
		t.Fatalf("expected notification read")
	}
	if s.UnreadCount(user) != 0 {
		t.Fatalf("expected unread count 0, got %d", s.UnreadCount(user))
	}
	s.MarkNotificationRead(uuid.New()) // unknown id must not panic
}

func TestMarkAllReadLeavesOtherUsersAlone(t *testing.T) {
	s := New()
	alice := uuid.New()
	bob := uuid.New()
	s.PushNotification(alice, "a1")
	s.PushNotification(alice, "a2")
	s.PushNotification(bob, "b1")

	s.MarkAllNotificationsRead(alice)

	if s.UnreadCount(alice) != 0 {
		t.Fatalf("expected alice's notifications all read")
	}
	if s.UnreadCount(bob) != 1 {
		t.Fatalf("expected bob's notification untouched, unread=%d", s.UnreadCount(bob))
	}
}
