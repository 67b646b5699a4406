package dto

import (
	"time"

	"github.com/oralabs/ora/internal/app/models"
)

// CreateChatMessageRequest is a user-authored message submission
type CreateChatMessageRequest struct {
	Text string `json:"text"`
}

// ChatMessageResponse is the projection of a chat log entry
type ChatMessageResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	IsSystem   bool      `json:"isSystem"`
}

// ToChatMessageResponse maps a chat message to its projection
func ToChatMessageResponse(m models.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:         m.ID,
		UserID:     m.UserID,
		UserName:   m.UserName,
		UserAvatar: m.UserAvatar,
		Text:       m.Text,
		Timestamp:  m.Timestamp,
		IsSystem:   m.IsSystem(),
	}
}
