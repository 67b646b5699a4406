package repositories

import (
	"context"
	"sync"

	"github.com/oralabs/ora/internal/app/models"
)

// NotificationRepository holds the process-wide inbox. Entries are kept in
// creation order, most-recent-last, and the only permitted mutation after
// insertion is the one-way read flip.
type NotificationRepository struct {
	mu            sync.RWMutex
	notifications []*models.AppNotification
}

// NewNotificationRepository creates a new empty NotificationRepository
func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// GetAll returns snapshots of all notifications in creation order
func (r *NotificationRepository) GetAll(ctx context.Context) []*models.AppNotification {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.AppNotification, 0, len(r.notifications))
	for _, n := range r.notifications {
		cp := *n
		out = append(out, &cp)
	}
	return out
}

// Count returns the number of notifications in the inbox
func (r *NotificationRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.notifications)
}

// AppendIfEmpty inserts the notification only when the inbox has no entries
// yet. Returns whether the insert happened. This is the guard that keeps the
// welcome message from being synthesized twice.
func (r *NotificationRepository) AppendIfEmpty(ctx context.Context, n *models.AppNotification) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.notifications) > 0 {
		return false
	}
	cp := *n
	r.notifications = append(r.notifications, &cp)
	return true
}

// Append inserts a notification at the end of the inbox
func (r *NotificationRepository) Append(ctx context.Context, n *models.AppNotification) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *n
	r.notifications = append(r.notifications, &cp)
}

// MarkRead flips the matching notification to read. Already-read entries and
// unknown ids are no-ops; a notification is never flipped back to unread.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.notifications {
		if n.ID == id {
			n.Read = true
			return
		}
	}
}

// HasUnread reports whether any notification is still unread
func (r *NotificationRepository) HasUnread(ctx context.Context) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.notifications {
		if !n.Read {
			return true
		}
	}
	return false
}
