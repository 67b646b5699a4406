package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/oralabs/ora/internal/app/models"
	"github.com/oralabs/ora/internal/app/models/dto"
	"github.com/oralabs/ora/internal/app/repositories"
	"github.com/oralabs/ora/internal/pkg/apperrors"
)

var helena = models.User{ID: "u1", Name: "Helena", Avatar: "https://example.com/helena.jpg"}

func newActivityService(repos *repositories.Repositories) *activityServiceImpl {
	counter := 0
	return &activityServiceImpl{
		activityRepo: repos.ActivityRepository,
		userRepo:     repos.UserRepository,
		currentUser:  helena,
		logger:       zerolog.Nop(),
		idGenerator: func() string {
			counter++
			return fmt.Sprintf("act-%d", counter)
		},
	}
}

func seedAnchor(repos *repositories.Repositories, id string, category models.Category, max int, participants ...models.User) {
	if participants == nil {
		participants = []models.User{}
	}
	repos.ActivityRepository.SeedAnchors(context.Background(), []*models.Activity{{
		ID:              id,
		Title:           "Anchor " + id,
		Category:        category,
		Host:            models.User{ID: "ora", Name: "ORA Curator"},
		Participants:    participants,
		MinParticipants: 3,
		MaxParticipants: max,
		IsAnchor:        true,
		Messages:        []models.ChatMessage{},
	}})
}

func TestListFiltersByCategory(t *testing.T) {
	repos := repositories.NewRepositories()
	svc := newActivityService(repos)
	ctx := context.Background()

	seedAnchor(repos, "a1", models.CategoryDrinks, 8)
	seedAnchor(repos, "a2", models.CategoryNature, 8)
	seedAnchor(repos, "a3", models.CategoryDrinks, 8)

	all, err := svc.List(ctx, "All")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 activities, got %d", len(all))
	}

	drinks, err := svc.List(ctx, "Drinks")
	if err != nil {
		t.Fatalf("list drinks: %v", err)
	}
	if len(drinks) != 2 {
		t.Fatalf("expected 2 drinks activities, got %d", len(drinks))
	}
	for _, a := range drinks {
		if a.Category != models.CategoryDrinks {
			t.Errorf("filter leaked category %s", a.Category)
		}
	}

	if _, err := svc.List(ctx, "Parkour"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected validation error for unknown filter, got %v", err)
	}
}

func TestCreateActivity(t *testing.T) {
	// Scenario: a new activity has the creating user as sole participant and
	// host, and an empty message log.
	repos := repositories.NewRepositories()
	svc := newActivityService(repos)

	created, err := svc.Create(context.Background(), &dto.CreateActivityRequest{
		Title:           "Tarde de Cerâmica",
		Category:        "Social",
		Description:     "Mãos na argila.",
		Date:            "Domingo",
		Time:            "15:00",
		Location:        "Ateliê Barro",
		MaxParticipants: 8,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Host.ID != helena.ID {
		t.Errorf("expected host %s, got %s", helena.ID, created.Host.ID)
	}
	if len(created.Participants) != 1 || created.Participants[0].ID != helena.ID {
		t.Fatalf("expected sole participant %s, got %+v", helena.ID, created.Participants)
	}
	if len(created.Messages) != 0 {
		t.Errorf("expected empty message log, got %d entries", len(created.Messages))
	}
	if created.IsAnchor {
		t.Error("user-created activity must not be an anchor")
	}
	if created.MinParticipants != 3 {
		t.Errorf("expected default minParticipants 3, got %d", created.MinParticipants)
	}
	if created.ImageURL == "" {
		t.Error("expected default image URL")
	}

	// Newest creation is listed first.
	all, _ := svc.List(context.Background(), "All")
	if len(all) != 1 || all[0].ID != created.ID {
		t.Fatalf("created activity not at head of store: %+v", all)
	}
}

func TestCreateActivityValidation(t *testing.T) {
	repos := repositories.NewRepositories()
	svc := newActivityService(repos)
	ctx := context.Background()

	valid := func() *dto.CreateActivityRequest {
		return &dto.CreateActivityRequest{
			Title:           "Brunch?",
			Category:        "Dining",
			Description:     "Mesa posta.",
			Date:            "Sábado",
			Time:            "10:30",
			Location:        "Mokaya Café",
			MaxParticipants: 6,
		}
	}

	cases := []struct {
		name   string
		mutate func(*dto.CreateActivityRequest)
	}{
		{"missing title", func(r *dto.CreateActivityRequest) { r.Title = "  " }},
		{"missing description", func(r *dto.CreateActivityRequest) { r.Description = "" }},
		{"missing date", func(r *dto.CreateActivityRequest) { r.Date = "" }},
		{"missing time", func(r *dto.CreateActivityRequest) { r.Time = "" }},
		{"missing location", func(r *dto.CreateActivityRequest) { r.Location = "" }},
		{"unknown category", func(r *dto.CreateActivityRequest) { r.Category = "Parkour" }},
		{"capacity too small", func(r *dto.CreateActivityRequest) { r.MaxParticipants = 2 }},
		{"capacity too large", func(r *dto.CreateActivityRequest) { r.MaxParticipants = 9 }},
		{"min above max", func(r *dto.CreateActivityRequest) { r.MinParticipants = 7; r.MaxParticipants = 6 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid()
			tc.mutate(req)
			if _, err := svc.Create(ctx, req); !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	// Nothing slipped into the store from the rejected submissions.
	all, _ := svc.List(ctx, "All")
	if len(all) != 0 {
		t.Fatalf("rejected drafts mutated the store: %d activities", len(all))
	}
}

func TestJoinCapacityScenario(t *testing.T) {
	// Scenario: max 3 with 2 participants; the third join succeeds and fills
	// the activity, the fourth is rejected without mutation.
	repos := repositories.NewRepositories()
	svc := newActivityService(repos)
	ctx := context.Background()

	seedAnchor(repos, "a1", models.CategorySocial, 3,
		models.User{ID: "u2", Name: "Marina"}, models.User{ID: "u3", Name: "Sofia"})

	updated, err := svc.Join(ctx, "a1", models.User{ID: "u4", Name: "Clara"})
	if err != nil {
		t.Fatalf("third join: %v", err)
	}
	if !updated.IsFull() {
		t.Error("expected activity to be full after third join")
	}
	if !updated.HasQuorum() {
		t.Error("expected quorum at 3 of 3")
	}

	if _, err := svc.Join(ctx, "a1", models.User{ID: "u5", Name: "Bia"}); !errors.Is(err, apperrors.ErrCapacityExceeded) {
		t.Fatalf("expected capacity error, got %v", err)
	}

	after, _ := svc.GetByID(ctx, "a1")
	if len(after.Participants) != 3 {
		t.Fatalf("participant count changed on rejected join: %d", len(after.Participants))
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	repos := repositories.NewRepositories()
	svc := newActivityService(repos)
	ctx := context.Background()

	seedAnchor(repos, "a1", models.CategoryDrinks, 8)

	first, err := svc.Join(ctx, "a1", helena)
	if err != nil {
		t.Fatalf("first join: %v", err)
	}
	second, err := svc.Join(ctx, "a1", helena)
	if err != nil {
		t.Fatalf("second join: %v", err)
	}
	if len(first.Participants) != 1 || len(second.Participants) != 1 {
		t.Fatalf("join not idempotent: %d then %d participants",
			len(first.Participants), len(second.Participants))
	}
}

func TestJoinUnknownActivity(t *testing.T) {
	repos := repositories.NewRepositories()
	svc := newActivityService(repos)

	_, err := svc.Join(context.Background(), "missing", helena)
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestJoinIntroducesUserToDirectory(t *testing.T) {
	repos := repositories.NewRepositories()
	svc := newActivityService(repos)
	ctx := context.Background()

	seedAnchor(repos, "a1", models.CategoryNature, 8)

	marina := models.User{ID: "u2", Name: "Marina"}
	if _, err := svc.Join(ctx, "a1", marina); err != nil {
		t.Fatalf("join: %v", err)
	}

	if _, ok := repos.UserRepository.FindByID(ctx, "u2"); !ok {
		t.Error("joined user missing from the directory")
	}
}
