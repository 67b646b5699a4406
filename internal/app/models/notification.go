package models

import "time"

// NotificationType classifies inbox entries
type NotificationType string

const (
	NotificationTypeInvite      NotificationType = "invite"
	NotificationTypeMessage     NotificationType = "message"
	NotificationTypeNewActivity NotificationType = "new_activity"
)

// AppNotification represents an entry in the process-wide inbox. The only
// permitted mutation after creation is the one-way Read flip.
type AppNotification struct {
	ID         string           `json:"id"`
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Timestamp  time.Time        `json:"timestamp"`
	Read       bool             `json:"read"`
	ActivityID string           `json:"activityId,omitempty"`
	Sender     *User            `json:"sender,omitempty"`
}
