package repositories

import (
	"context"
	"testing"

	"github.com/oralabs/ora/internal/app/models"
)

func TestFriendAddIsIdempotent(t *testing.T) {
	repo := NewFriendRepository()
	ctx := context.Background()
	marina := models.User{ID: "u2", Name: "Marina"}

	if !repo.Add(ctx, marina) {
		t.Fatal("first add should report a new friend")
	}
	if repo.Add(ctx, marina) {
		t.Fatal("repeated add should be a no-op")
	}

	if got := len(repo.GetAll(ctx)); got != 1 {
		t.Fatalf("expected 1 friend, got %d", got)
	}
	if !repo.IsFriend(ctx, "u2") {
		t.Error("expected u2 to be a friend")
	}
	if repo.IsFriend(ctx, "u3") {
		t.Error("u3 was never added")
	}
}

func TestFriendListKeepsInsertionOrder(t *testing.T) {
	repo := NewFriendRepository()
	ctx := context.Background()

	repo.Add(ctx, models.User{ID: "u2", Name: "Marina"})
	repo.Add(ctx, models.User{ID: "u3", Name: "Sofia"})
	repo.Add(ctx, models.User{ID: "u2", Name: "Marina"})

	friends := repo.GetAll(ctx)
	if len(friends) != 2 {
		t.Fatalf("expected 2 friends, got %d", len(friends))
	}
	if friends[0].ID != "u2" || friends[1].ID != "u3" {
		t.Errorf("unexpected order: %s, %s", friends[0].ID, friends[1].ID)
	}
}
