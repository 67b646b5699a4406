package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/oralabs/ora/internal/app/models"
	"github.com/oralabs/ora/internal/app/repositories"
	"github.com/oralabs/ora/internal/pkg/apperrors"
	"github.com/oralabs/ora/internal/pkg/suggest"
)

// CheckInMessage is the fixed celebratory system message posted on check-in
const CheckInMessage = "✨ Cheguei bem no local! Ansiosa para ver vocês."

// ChatService defines the interface for per-activity chat operations
type ChatService interface {
	// PostMessage appends a message to the activity's chat log. Text that is
	// empty after trimming is silently dropped: the unchanged activity is
	// returned with no error. Ordinary messages require the author to be a
	// current participant; system messages bypass that check.
	PostMessage(ctx context.Context, activityID string, author models.User, text string, isSystem bool) (*models.Activity, error)
	// CheckIn posts the fixed system-authored check-in message.
	CheckIn(ctx context.Context, activityID string) (*models.Activity, error)
	// Icebreaker asks the suggestion collaborator for an opening line. The
	// suggestion is never posted; the client submits it through PostMessage
	// if the user picks it. Collaborator failure degrades to the fixed
	// fallback line and never surfaces as an error.
	Icebreaker(ctx context.Context, activityID string) (string, error)
}

// chatServiceImpl implements ChatService
type chatServiceImpl struct {
	activityRepo *repositories.ActivityRepository
	provider     suggest.SuggestionProvider
	logger       zerolog.Logger
	idGenerator  func() string
	clock        func() time.Time
}

// NewChatService creates a new ChatService
func NewChatService(
	activityRepo *repositories.ActivityRepository,
	provider suggest.SuggestionProvider,
	logger zerolog.Logger,
) ChatService {
	return &chatServiceImpl{
		activityRepo: activityRepo,
		provider:     provider,
		logger:       logger,
		idGenerator:  uuid.NewString,
		clock:        time.Now,
	}
}

// PostMessage appends a message to the activity's append-only chat log
func (s *chatServiceImpl) PostMessage(ctx context.Context, activityID string, author models.User, text string, isSystem bool) (*models.Activity, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		// Empty input is dropped without error; the log stays untouched.
		activity := s.activityRepo.GetByID(ctx, activityID)
		if activity == nil {
			return nil, apperrors.NewResourceNotFoundError("Activity not found")
		}
		return activity, nil
	}

	activity := s.activityRepo.GetByID(ctx, activityID)
	if activity == nil {
		return nil, apperrors.NewResourceNotFoundError("Activity not found")
	}

	if !isSystem && !activity.HasParticipant(author.ID) {
		s.logger.Info().
			Str("activityID", activityID).
			Str("userID", author.ID).
			Msg("Message rejected, author is not a participant")
		return nil, apperrors.NewNotParticipantError("Only participants can post to this chat")
	}

	msg := models.ChatMessage{
		ID:        s.idGenerator(),
		Text:      trimmed,
		Timestamp: s.clock(),
	}
	if isSystem {
		msg.UserID = models.SystemUserID
		msg.UserName = models.SystemUserName
	} else {
		// Author fields are copied at insertion time, never referenced live.
		msg.UserID = author.ID
		msg.UserName = author.Name
		msg.UserAvatar = author.Avatar
	}

	updated, err := s.activityRepo.AppendMessage(ctx, activityID, msg)
	if err != nil {
		return nil, apperrors.NewResourceNotFoundError("Activity not found")
	}

	s.logger.Debug().
		Str("activityID", activityID).
		Str("messageID", msg.ID).
		Bool("system", isSystem).
		Msg("Chat message appended")

	return updated, nil
}

// CheckIn posts the fixed celebratory system message
func (s *chatServiceImpl) CheckIn(ctx context.Context, activityID string) (*models.Activity, error) {
	return s.PostMessage(ctx, activityID, models.User{}, CheckInMessage, true)
}

// Icebreaker produces an opening line for the activity's chat
func (s *chatServiceImpl) Icebreaker(ctx context.Context, activityID string) (string, error) {
	activity := s.activityRepo.GetByID(ctx, activityID)
	if activity == nil {
		return "", apperrors.NewResourceNotFoundError("Activity not found")
	}

	// The provider never fails past its boundary; whatever comes back is a
	// usable line, possibly the fixed fallback.
	return s.provider.GenerateIcebreaker(ctx, activity.Title), nil
}
