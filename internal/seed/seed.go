package seed

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/oralabs/ora/internal/app/models"
	"github.com/oralabs/ora/internal/app/repositories"
)

// CurrentUser returns the identity record of the session user
func CurrentUser() models.User {
	return models.User{
		ID:        "u1",
		Name:      "Helena",
		Avatar:    "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?auto=format&fit=crop&q=80&w=200",
		Interests: []string{"Vinhos Naturais", "Cine Cult", "Arquitetura", "Cerâmica"},
		Bio:       "Colecionando momentos, não desculpas.",
	}
}

// Curator returns the platform host that anchors curated activities
func Curator() models.User {
	return models.User{
		ID:     "ora",
		Name:   "ORA Curator",
		Avatar: "https://picsum.photos/seed/ora/200",
	}
}

// AnchorActivities returns the curator-seeded activities present at session
// start. Anchors begin with empty participant lists and empty chat logs.
func AnchorActivities() []*models.Activity {
	curator := Curator()

	return []*models.Activity{
		{
			ID:              "a1",
			Title:           "Wine & Unwind",
			Category:        models.CategoryDrinks,
			Description:     "Vinhos selecionados e a melhor vista da cidade. Um brinde ao agora no terraço mais cool de Manaus.",
			Date:            "Sexta",
			Time:            "19:00",
			Location:        "Terraço Clube",
			Address:         "Adrianópolis, Manaus",
			Host:            curator,
			Participants:    []models.User{},
			MinParticipants: 3,
			MaxParticipants: 8,
			ImageURL:        "https://images.unsplash.com/photo-1510812431401-41d2bd2722f3?auto=format&fit=crop&q=80&w=800",
			IsAnchor:        true,
			Messages:        []models.ChatMessage{},
		},
		{
			ID:              "a2",
			Title:           "Martinis & Fries",
			Category:        models.CategorySocial,
			Description:     "Drinks clássicos e batatas crocantes no spot mais disputado do Vieiralves. Zero esforço, muita vibe.",
			Date:            "Quinta",
			Time:            "20:00",
			Location:        "Mizura Bar",
			Address:         "Vieiralves, Manaus",
			Host:            curator,
			Participants:    []models.User{},
			MinParticipants: 3,
			MaxParticipants: 8,
			ImageURL:        "https://images.unsplash.com/photo-1575023782549-62ca0d244b39?auto=format&fit=crop&q=80&w=800",
			IsAnchor:        true,
			Messages:        []models.ChatMessage{},
		},
		{
			ID:              "a3",
			Title:           "let's go for a run?",
			Category:        models.CategoryNature,
			Description:     "Endorfina e natureza. Um trote leve pelo Mindu seguido de água de coco e boas conversas.",
			Date:            "Sábado",
			Time:            "07:30",
			Location:        "Parque do Mindu",
			Address:         "Parque 10, Manaus",
			Host:            curator,
			Participants:    []models.User{},
			MinParticipants: 3,
			MaxParticipants: 8,
			ImageURL:        "https://images.unsplash.com/photo-1502904550040-7534597429ae?auto=format&fit=crop&q=80&w=800",
			IsAnchor:        true,
			Messages:        []models.ChatMessage{},
		},
		{
			ID:              "a4",
			Title:           "Brunch?",
			Category:        models.CategoryDining,
			Description:     "Onde o café encontra a arte. Um ritual de sábado de manhã para quem ama mesa posta e conversa boa.",
			Date:            "Sábado",
			Time:            "10:30",
			Location:        "Mokaya Café",
			Address:         "Vieiralves, Manaus",
			Host:            curator,
			Participants:    []models.User{},
			MinParticipants: 3,
			MaxParticipants: 8,
			ImageURL:        "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?auto=format&fit=crop&q=80&w=800",
			IsAnchor:        true,
			Messages:        []models.ChatMessage{},
		},
	}
}

// Apply loads the seed data into a fresh session's repositories
func Apply(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) {
	repos.UserRepository.Introduce(ctx, CurrentUser())
	repos.UserRepository.Introduce(ctx, Curator())

	anchors := AnchorActivities()
	repos.ActivityRepository.SeedAnchors(ctx, anchors)

	lgr.Info().
		Int("anchors", len(anchors)).
		Str("currentUser", CurrentUser().Name).
		Msg("Session seeded with curated activities")
}
