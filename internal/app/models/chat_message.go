package models

import "time"

// SystemUserID is the author ID used for platform-authored chat entries
// (check-ins and similar event messages). System messages carry no avatar
// but are otherwise ordinary log entries.
const SystemUserID = "system"

// SystemUserName is the display name attached to system messages
const SystemUserName = "Sistema"

// ChatMessage represents a single entry in an activity's chat log.
// Messages are immutable once appended; author fields are copied from the
// sending user at insertion time, not referenced live.
type ChatMessage struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// IsSystem reports whether the message was authored by the platform
func (m ChatMessage) IsSystem() bool {
	return m.UserID == SystemUserID
}
