package dto

import (
	"github.com/oralabs/ora/internal/app/models"
)

// CreateActivityRequest is the draft submitted by the creation flow.
// Binding tags reject structurally broken input early; the service applies
// the same domain rules again so the engine never trusts the HTTP layer.
type CreateActivityRequest struct {
	Title           string `json:"title" binding:"required"`
	Category        string `json:"category" binding:"required,category"`
	Description     string `json:"description" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Location        string `json:"location" binding:"required"`
	Address         string `json:"address"`
	MinParticipants int    `json:"minParticipants"`
	MaxParticipants int    `json:"maxParticipants" binding:"required,min=3,max=8"`
	ImageURL        string `json:"imageUrl"`
}

// ActivityResponse is the projection of an activity aggregate, including the
// derived participation booleans the presentation layer renders.
type ActivityResponse struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Category        models.Category       `json:"category"`
	Description     string                `json:"description"`
	Date            string                `json:"date"`
	Time            string                `json:"time"`
	Location        string                `json:"location"`
	Address         string                `json:"address"`
	Host            models.User           `json:"host"`
	Participants    []models.User         `json:"participants"`
	MinParticipants int                   `json:"minParticipants"`
	MaxParticipants int                   `json:"maxParticipants"`
	ImageURL        string                `json:"imageUrl"`
	IsAnchor        bool                  `json:"isAnchor"`
	Messages        []ChatMessageResponse `json:"messages"`
	IsFull          bool                  `json:"isFull"`
	HasQuorum       bool                  `json:"hasQuorum"`
}

// ActivityListResponse wraps a filtered activity listing
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Filter     string             `json:"filter"`
}

// VibeDescriptionRequest asks the suggestion collaborator for a description
type VibeDescriptionRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category" binding:"required,category"`
}

// SuggestionResponse carries a generated (or fallback) suggestion text.
// The text is never posted anywhere until the client explicitly submits it.
type SuggestionResponse struct {
	Text string `json:"text"`
}

// ToActivityResponse maps an activity aggregate to its projection
func ToActivityResponse(a *models.Activity) ActivityResponse {
	messages := make([]ChatMessageResponse, 0, len(a.Messages))
	for _, m := range a.Messages {
		messages = append(messages, ToChatMessageResponse(m))
	}

	participants := a.Participants
	if participants == nil {
		participants = []models.User{}
	}

	return ActivityResponse{
		ID:              a.ID,
		Title:           a.Title,
		Category:        a.Category,
		Description:     a.Description,
		Date:            a.Date,
		Time:            a.Time,
		Location:        a.Location,
		Address:         a.Address,
		Host:            a.Host,
		Participants:    participants,
		MinParticipants: a.MinParticipants,
		MaxParticipants: a.MaxParticipants,
		ImageURL:        a.ImageURL,
		IsAnchor:        a.IsAnchor,
		Messages:        messages,
		IsFull:          a.IsFull(),
		HasQuorum:       a.HasQuorum(),
	}
}
