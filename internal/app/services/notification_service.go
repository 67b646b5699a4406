package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/oralabs/ora/internal/app/models"
	"github.com/oralabs/ora/internal/app/repositories"
)

// Welcome notification content, synthesized once per session.
const (
	welcomeNotificationID = "welcome"
	welcomeTitle          = "Bem-vinda ao ORA!"
	welcomeMessage        = "Explore os rituais da semana em Manaus."
)

// NotificationService defines the interface for the process-wide inbox
type NotificationService interface {
	// StartSession marks the session as having entered the main state and
	// schedules the one-time welcome notification after the configured
	// delay. Calling it again is a no-op.
	StartSession(ctx context.Context)
	List(ctx context.Context) []*models.AppNotification
	MarkRead(ctx context.Context, id string)
	HasUnread(ctx context.Context) bool
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notificationRepo *repositories.NotificationRepository
	welcomeDelay     time.Duration
	logger           zerolog.Logger
	clock            func() time.Time

	mu      sync.Mutex
	started bool
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(
	notificationRepo *repositories.NotificationRepository,
	welcomeDelay time.Duration,
	logger zerolog.Logger,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		welcomeDelay:     welcomeDelay,
		logger:           logger,
		clock:            time.Now,
	}
}

// StartSession schedules the welcome notification once
func (s *notificationServiceImpl) StartSession(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	s.logger.Info().
		Dur("delay", s.welcomeDelay).
		Msg("Session entered main state, scheduling welcome notification")

	time.AfterFunc(s.welcomeDelay, func() {
		s.synthesizeWelcome(context.Background())
	})
}

// synthesizeWelcome inserts the welcome notification, guarded by "no
// notification exists yet" so re-entry never duplicates it.
func (s *notificationServiceImpl) synthesizeWelcome(ctx context.Context) {
	inserted := s.notificationRepo.AppendIfEmpty(ctx, &models.AppNotification{
		ID:        welcomeNotificationID,
		Type:      models.NotificationTypeNewActivity,
		Title:     welcomeTitle,
		Message:   welcomeMessage,
		Timestamp: s.clock(),
		Read:      false,
	})

	if inserted {
		s.logger.Debug().Msg("Welcome notification synthesized")
	}
}

// List returns the inbox in creation order, most-recent-last
func (s *notificationServiceImpl) List(ctx context.Context) []*models.AppNotification {
	return s.notificationRepo.GetAll(ctx)
}

// MarkRead flips a notification to read. Idempotent; unknown ids are no-ops.
func (s *notificationServiceImpl) MarkRead(ctx context.Context, id string) {
	s.notificationRepo.MarkRead(ctx, id)
}

// HasUnread reports whether the inbox holds any unread notification
func (s *notificationServiceImpl) HasUnread(ctx context.Context) bool {
	return s.notificationRepo.HasUnread(ctx)
}
