package repositories

import (
	"context"
	"sync"

	"github.com/oralabs/ora/internal/app/models"
	"github.com/oralabs/ora/internal/pkg/apperrors"
)

// ActivityRepository owns the ordered collection of activity aggregates for
// the current session. Newest user-created activities are prepended; anchor
// activities keep their seeded order. All mutations happen under the lock
// and are all-or-nothing; reads hand out deep copies so a caller can never
// change stored state through a snapshot.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities []*models.Activity
	byID       map[string]*models.Activity
}

// NewActivityRepository creates a new empty ActivityRepository
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{
		byID: make(map[string]*models.Activity),
	}
}

// SeedAnchors appends curator-seeded activities in their given order.
// Intended for session start only.
func (r *ActivityRepository) SeedAnchors(ctx context.Context, activities []*models.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range activities {
		cp := a.Clone()
		r.activities = append(r.activities, cp)
		r.byID[cp.ID] = cp
	}
}

// GetAll returns snapshots of every activity in store order
func (r *ActivityRepository) GetAll(ctx context.Context) []*models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		out = append(out, a.Clone())
	}
	return out
}

// GetByID returns a snapshot of the activity, or nil when unknown
func (r *ActivityRepository) GetByID(ctx context.Context, id string) *models.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil
	}
	return a.Clone()
}

// Prepend inserts a freshly created activity at the head of the store so the
// natural listing order stays reverse-chronological for user creations.
func (r *ActivityRepository) Prepend(ctx context.Context, activity *models.Activity) *models.Activity {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := activity.Clone()
	r.activities = append([]*models.Activity{cp}, r.activities...)
	r.byID[cp.ID] = cp
	return cp.Clone()
}

// AddParticipant appends the user to the activity's participant list.
// Joining twice is a no-op returning the unchanged snapshot; joining a full
// activity fails with ErrCapacityExceeded and leaves the list untouched.
func (r *ActivityRepository) AddParticipant(ctx context.Context, activityID string, user models.User) (*models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[activityID]
	if !ok {
		return nil, apperrors.ErrActivityNotFound
	}

	if a.HasParticipant(user.ID) {
		return a.Clone(), nil
	}

	if len(a.Participants) >= a.MaxParticipants {
		return nil, apperrors.ErrCapacityExceeded
	}

	a.Participants = append(a.Participants, user)
	return a.Clone(), nil
}

// AppendMessage appends a chat message to the activity's log. The log is
// append-only and keeps pure arrival order.
func (r *ActivityRepository) AppendMessage(ctx context.Context, activityID string, msg models.ChatMessage) (*models.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[activityID]
	if !ok {
		return nil, apperrors.ErrActivityNotFound
	}

	a.Messages = append(a.Messages, msg)
	return a.Clone(), nil
}
