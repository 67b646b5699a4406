package repositories

import (
	"context"
	"sync"

	"github.com/oralabs/ora/internal/app/models"
)

// FriendRepository holds the current user's friends collection. The relation
// is idempotent and irreflexive; there is no removal.
type FriendRepository struct {
	mu      sync.RWMutex
	friends []models.User
	byID    map[string]struct{}
}

// NewFriendRepository creates a new empty FriendRepository
func NewFriendRepository() *FriendRepository {
	return &FriendRepository{
		byID: make(map[string]struct{}),
	}
}

// Add appends the user to the friends collection. Re-adding an existing
// friend is a no-op. Returns whether the user was newly added.
func (r *FriendRepository) Add(ctx context.Context, user models.User) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID]; ok {
		return false
	}
	r.byID[user.ID] = struct{}{}
	r.friends = append(r.friends, user)
	return true
}

// IsFriend reports whether the user with the given ID is already a friend
func (r *FriendRepository) IsFriend(ctx context.Context, userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[userID]
	return ok
}

// GetAll returns the friends collection in insertion order
func (r *FriendRepository) GetAll(ctx context.Context) []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.friends))
	copy(out, r.friends)
	return out
}
