package dto

import (
	"time"

	"github.com/oralabs/ora/internal/app/models"
)

// NotificationResponse is the projection of an inbox entry
type NotificationResponse struct {
	ID         string                  `json:"id"`
	Type       models.NotificationType `json:"type"`
	Title      string                  `json:"title"`
	Message    string                  `json:"message"`
	Timestamp  time.Time               `json:"timestamp"`
	Read       bool                    `json:"read"`
	ActivityID string                  `json:"activityId,omitempty"`
	Sender     *models.User            `json:"sender,omitempty"`
}

// NotificationListResponse wraps the inbox in creation order
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	HasUnread     bool                   `json:"hasUnread"`
}

// UnreadResponse carries the unread indicator for the inbox badge
type UnreadResponse struct {
	HasUnread bool `json:"hasUnread"`
}

// ToNotificationResponse maps a notification to its projection
func ToNotificationResponse(n *models.AppNotification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		Timestamp:  n.Timestamp,
		Read:       n.Read,
		ActivityID: n.ActivityID,
		Sender:     n.Sender,
	}
}
