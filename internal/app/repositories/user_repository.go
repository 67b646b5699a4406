package repositories

import (
	"context"
	"sync"

	"github.com/oralabs/ora/internal/app/models"
)

// UserRepository is the user directory: identity records for the current
// user, hosts and co-participants. Records are immutable once introduced.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserRepository creates a new empty UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]models.User),
	}
}

// Introduce registers a user record. Records are immutable; introducing an
// already-known ID keeps the original record.
func (r *UserRepository) Introduce(ctx context.Context, user models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; ok {
		return
	}
	r.users[user.ID] = user
}

// FindByID returns the user record, or false when unknown
func (r *UserRepository) FindByID(ctx context.Context, id string) (models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	return u, ok
}
