package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/oralabs/ora/internal/app/models"
)

func welcomeNotification() *models.AppNotification {
	return &models.AppNotification{
		ID:        "welcome",
		Type:      models.NotificationTypeNewActivity,
		Title:     "Bem-vinda ao ORA!",
		Message:   "Explore os rituais da semana em Manaus.",
		Timestamp: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
	}
}

func TestAppendIfEmptyGuardsDuplicates(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()

	if !repo.AppendIfEmpty(ctx, welcomeNotification()) {
		t.Fatal("first insert should succeed on an empty inbox")
	}
	if repo.AppendIfEmpty(ctx, welcomeNotification()) {
		t.Fatal("second insert should be rejected")
	}
	if got := repo.Count(ctx); got != 1 {
		t.Fatalf("expected 1 notification, got %d", got)
	}
}

func TestMarkReadIsIdempotentAndOneWay(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()
	repo.Append(ctx, welcomeNotification())

	if !repo.HasUnread(ctx) {
		t.Fatal("expected unread notification after insert")
	}

	repo.MarkRead(ctx, "welcome")
	if repo.HasUnread(ctx) {
		t.Fatal("expected no unread after MarkRead")
	}

	// Repeating and addressing unknown ids must change nothing.
	repo.MarkRead(ctx, "welcome")
	repo.MarkRead(ctx, "missing")
	if repo.HasUnread(ctx) {
		t.Fatal("MarkRead must never un-read a notification")
	}

	all := repo.GetAll(ctx)
	if len(all) != 1 || !all[0].Read {
		t.Fatalf("unexpected inbox state: %+v", all)
	}
}

func TestGetAllKeepsCreationOrder(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()

	repo.Append(ctx, &models.AppNotification{ID: "n1"})
	repo.Append(ctx, &models.AppNotification{ID: "n2"})
	repo.Append(ctx, &models.AppNotification{ID: "n3"})

	all := repo.GetAll(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(all))
	}
	for i, want := range []string{"n1", "n2", "n3"} {
		if all[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, all[i].ID)
		}
	}
}
