package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/oralabs/ora/internal/app/models"
	"github.com/oralabs/ora/internal/app/repositories"
	"github.com/oralabs/ora/internal/pkg/apperrors"
)

// FriendService defines the interface for the current user's friend graph
type FriendService interface {
	// Add puts the directory user with the given ID into the friends
	// collection. Re-adding is a no-op, adding oneself is a no-op; the
	// returned bool reports whether the user was newly added.
	Add(ctx context.Context, userID string) (models.User, bool, error)
	IsFriend(ctx context.Context, userID string) bool
	List(ctx context.Context) []models.User
}

// friendServiceImpl implements FriendService
type friendServiceImpl struct {
	friendRepo  *repositories.FriendRepository
	userRepo    *repositories.UserRepository
	currentUser models.User
	logger      zerolog.Logger
}

// NewFriendService creates a new FriendService
func NewFriendService(
	friendRepo *repositories.FriendRepository,
	userRepo *repositories.UserRepository,
	currentUser models.User,
	logger zerolog.Logger,
) FriendService {
	return &friendServiceImpl{
		friendRepo:  friendRepo,
		userRepo:    userRepo,
		currentUser: currentUser,
		logger:      logger,
	}
}

// Add appends a directory user to the friends collection
func (s *friendServiceImpl) Add(ctx context.Context, userID string) (models.User, bool, error) {
	if userID == s.currentUser.ID {
		// The relation is irreflexive; adding oneself does nothing.
		return s.currentUser, false, nil
	}

	user, ok := s.userRepo.FindByID(ctx, userID)
	if !ok {
		return models.User{}, false, apperrors.NewResourceNotFoundError("User not found")
	}

	added := s.friendRepo.Add(ctx, user)
	if added {
		s.logger.Info().
			Str("userID", userID).
			Msg("Friend added")
	}

	return user, added, nil
}

// IsFriend reports whether the user is in the friends collection
func (s *friendServiceImpl) IsFriend(ctx context.Context, userID string) bool {
	return s.friendRepo.IsFriend(ctx, userID)
}

// List returns the friends collection in insertion order
func (s *friendServiceImpl) List(ctx context.Context) []models.User {
	return s.friendRepo.GetAll(ctx)
}
