package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/oralabs/ora/internal/app/models"
	"github.com/oralabs/ora/internal/app/models/dto"
	"github.com/oralabs/ora/internal/app/repositories"
	"github.com/oralabs/ora/internal/pkg/apperrors"
)

// FilterAll matches every category when listing activities
const FilterAll = "All"

// defaultImageURL backs user-created activities that submit no image
const defaultImageURL = "https://images.unsplash.com/photo-1517048676732-d65bc937f952?auto=format&fit=crop&q=80&w=800"

// ActivityService defines the interface for activity and participation operations
type ActivityService interface {
	List(ctx context.Context, filter string) ([]*models.Activity, error)
	Create(ctx context.Context, req *dto.CreateActivityRequest) (*models.Activity, error)
	GetByID(ctx context.Context, id string) (*models.Activity, error)
	Join(ctx context.Context, activityID string, user models.User) (*models.Activity, error)
}

// activityServiceImpl implements ActivityService
type activityServiceImpl struct {
	activityRepo *repositories.ActivityRepository
	userRepo     *repositories.UserRepository
	currentUser  models.User
	logger       zerolog.Logger
	idGenerator  func() string
}

// NewActivityService creates a new ActivityService
func NewActivityService(
	activityRepo *repositories.ActivityRepository,
	userRepo *repositories.UserRepository,
	currentUser models.User,
	logger zerolog.Logger,
) ActivityService {
	return &activityServiceImpl{
		activityRepo: activityRepo,
		userRepo:     userRepo,
		currentUser:  currentUser,
		logger:       logger,
		idGenerator:  uuid.NewString,
	}
}

// List returns activities matching the category filter in store order
func (s *activityServiceImpl) List(ctx context.Context, filter string) ([]*models.Activity, error) {
	if filter == "" {
		filter = FilterAll
	}

	if filter != FilterAll && !models.Category(filter).IsValid() {
		return nil, apperrors.NewValidationError("Unknown category filter: " + filter)
	}

	s.logger.Debug().
		Str("filter", filter).
		Msg("Listing activities")

	all := s.activityRepo.GetAll(ctx)
	if filter == FilterAll {
		return all, nil
	}

	filtered := make([]*models.Activity, 0, len(all))
	for _, a := range all {
		if a.Category == models.Category(filter) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// Create validates the draft and prepends a new activity hosted by the
// current user, who becomes its sole participant.
func (s *activityServiceImpl) Create(ctx context.Context, req *dto.CreateActivityRequest) (*models.Activity, error) {
	s.logger.Debug().
		Str("title", req.Title).
		Str("category", req.Category).
		Msg("Creating activity")

	if err := validateDraft(req); err != nil {
		return nil, err
	}

	minParticipants := req.MinParticipants
	if minParticipants == 0 {
		minParticipants = models.MinActivityCapacity
	}
	if minParticipants < 1 || minParticipants > req.MaxParticipants {
		return nil, apperrors.NewValidationError("minParticipants must be between 1 and maxParticipants")
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = defaultImageURL
	}

	activity := &models.Activity{
		ID:              s.idGenerator(),
		Title:           strings.TrimSpace(req.Title),
		Category:        models.Category(req.Category),
		Description:     req.Description,
		Date:            req.Date,
		Time:            req.Time,
		Location:        req.Location,
		Address:         req.Address,
		Host:            s.currentUser,
		Participants:    []models.User{s.currentUser},
		MinParticipants: minParticipants,
		MaxParticipants: req.MaxParticipants,
		ImageURL:        imageURL,
		IsAnchor:        false,
		Messages:        []models.ChatMessage{},
	}

	created := s.activityRepo.Prepend(ctx, activity)

	s.logger.Info().
		Str("activityID", created.ID).
		Str("title", created.Title).
		Msg("Activity created")

	return created, nil
}

// GetByID returns the activity snapshot
func (s *activityServiceImpl) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	activity := s.activityRepo.GetByID(ctx, id)
	if activity == nil {
		return nil, apperrors.NewResourceNotFoundError("Activity not found")
	}
	return activity, nil
}

// Join appends the user to the activity's participant list. Joining twice is
// a no-op; joining a full activity is rejected without mutation.
func (s *activityServiceImpl) Join(ctx context.Context, activityID string, user models.User) (*models.Activity, error) {
	s.logger.Debug().
		Str("activityID", activityID).
		Str("userID", user.ID).
		Msg("User joining activity")

	// Keep the directory aware of everyone who ever joined something.
	s.userRepo.Introduce(ctx, user)

	updated, err := s.activityRepo.AddParticipant(ctx, activityID, user)
	if err != nil {
		switch {
		case err == apperrors.ErrActivityNotFound:
			return nil, apperrors.NewResourceNotFoundError("Activity not found")
		case err == apperrors.ErrCapacityExceeded:
			s.logger.Info().
				Str("activityID", activityID).
				Str("userID", user.ID).
				Msg("Join rejected, activity is at capacity")
			return nil, apperrors.NewCapacityExceededError("Activity is at capacity")
		default:
			return nil, err
		}
	}

	return updated, nil
}

// validateDraft applies the domain policy for user-created activities
func validateDraft(req *dto.CreateActivityRequest) error {
	required := map[string]string{
		"title":       req.Title,
		"category":    req.Category,
		"description": req.Description,
		"date":        req.Date,
		"time":        req.Time,
		"location":    req.Location,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return apperrors.NewValidationError("Missing required field: " + field)
		}
	}

	if !models.Category(req.Category).IsValid() {
		return apperrors.NewValidationError("Unknown category: " + req.Category)
	}

	if req.MaxParticipants < models.MinActivityCapacity || req.MaxParticipants > models.MaxActivityCapacity {
		return apperrors.NewValidationError("maxParticipants must be between 3 and 8")
	}

	return nil
}
