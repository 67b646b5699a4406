package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/oralabs/ora/internal/app/models"
	"github.com/oralabs/ora/internal/app/repositories"
	"github.com/oralabs/ora/internal/pkg/apperrors"
	"github.com/oralabs/ora/internal/pkg/suggest"
)

func newChatService(repos *repositories.Repositories) *chatServiceImpl {
	counter := 0
	now := time.Date(2026, 8, 29, 19, 0, 0, 0, time.UTC)
	return &chatServiceImpl{
		activityRepo: repos.ActivityRepository,
		provider:     suggest.NewStaticProvider(),
		logger:       zerolog.Nop(),
		idGenerator: func() string {
			counter++
			return fmt.Sprintf("msg-%d", counter)
		},
		clock: func() time.Time { return now },
	}
}

func TestPostMessageAppends(t *testing.T) {
	repos := repositories.NewRepositories()
	svc := newChatService(repos)
	ctx := context.Background()

	seedAnchor(repos, "a1", models.CategoryDrinks, 8, helena)

	updated, err := svc.PostMessage(ctx, "a1", helena, "Oi!", false)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if len(updated.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(updated.Messages))
	}

	msg := updated.Messages[0]
	if msg.Text != "Oi!" {
		t.Errorf("unexpected text %q", msg.Text)
	}
	if msg.UserID != helena.ID || msg.UserName != helena.Name {
		t.Errorf("author not copied onto message: %+v", msg)
	}
	if msg.IsSystem() {
		t.Error("user message flagged as system")
	}
}

func TestPostMessageTrimsAndDropsEmpty(t *testing.T) {
	// Whitespace-only input is silently dropped; the log stays untouched and
	// no error is returned.
	repos := repositories.NewRepositories()
	svc := newChatService(repos)
	ctx := context.Background()

	seedAnchor(repos, "a1", models.CategorySocial, 8, helena)

	for _, text := range []string{"", "   ", "\n\t "} {
		updated, err := svc.PostMessage(ctx, "a1", helena, text, false)
		if err != nil {
			t.Fatalf("post %q: %v", text, err)
		}
		if len(updated.Messages) != 0 {
			t.Fatalf("empty text %q appended a message", text)
		}
	}

	updated, err := svc.PostMessage(ctx, "a1", helena, "  Oi! ", false)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	if updated.Messages[0].Text != "Oi!" {
		t.Errorf("expected trimmed text, got %q", updated.Messages[0].Text)
	}
}

func TestPostMessageRequiresParticipation(t *testing.T) {
	repos := repositories.NewRepositories()
	svc := newChatService(repos)
	ctx := context.Background()

	seedAnchor(repos, "a1", models.CategoryNature, 8, models.User{ID: "u2", Name: "Marina"})

	_, err := svc.PostMessage(ctx, "a1", helena, "Posso entrar?", false)
	if !errors.Is(err, apperrors.ErrNotParticipant) {
		t.Fatalf("expected participation error, got %v", err)
	}

	after := repos.ActivityRepository.GetByID(ctx, "a1")
	if len(after.Messages) != 0 {
		t.Fatal("rejected message mutated the log")
	}
}

func TestSystemMessageBypassesParticipation(t *testing.T) {
	repos := repositories.NewRepositories()
	svc := newChatService(repos)
	ctx := context.Background()

	seedAnchor(repos, "a1", models.CategoryCommunity, 8)

	updated, err := svc.PostMessage(ctx, "a1", models.User{}, "Lembrete do ritual", true)
	if err != nil {
		t.Fatalf("system post: %v", err)
	}

	msg := updated.Messages[0]
	if !msg.IsSystem() {
		t.Errorf("expected system message, got author %q", msg.UserID)
	}
	if msg.UserName != models.SystemUserName {
		t.Errorf("expected system author name, got %q", msg.UserName)
	}
}

func TestCheckInPostsFixedSystemMessage(t *testing.T) {
	repos := repositories.NewRepositories()
	svc := newChatService(repos)

	seedAnchor(repos, "a1", models.CategoryDining, 8, helena)

	updated, err := svc.CheckIn(context.Background(), "a1")
	if err != nil {
		t.Fatalf("check-in: %v", err)
	}

	msg := updated.Messages[0]
	if msg.Text != CheckInMessage {
		t.Errorf("unexpected check-in text %q", msg.Text)
	}
	if !msg.IsSystem() {
		t.Error("check-in must be system-authored")
	}
}

func TestPostMessageUnknownActivity(t *testing.T) {
	repos := repositories.NewRepositories()
	svc := newChatService(repos)

	_, err := svc.PostMessage(context.Background(), "missing", helena, "Oi!", false)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestIcebreakerUsesProvider(t *testing.T) {
	repos := repositories.NewRepositories()
	svc := newChatService(repos)
	ctx := context.Background()

	seedAnchor(repos, "a1", models.CategoryCulture, 8, helena)

	line, err := svc.Icebreaker(ctx, "a1")
	if err != nil {
		t.Fatalf("icebreaker: %v", err)
	}
	if line != suggest.FallbackIcebreaker {
		t.Errorf("expected static provider line, got %q", line)
	}

	// The suggestion is advisory only; asking never touches the chat log.
	after := repos.ActivityRepository.GetByID(ctx, "a1")
	if len(after.Messages) != 0 {
		t.Error("icebreaker wrote into the chat log")
	}

	if _, err := svc.Icebreaker(ctx, "missing"); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
