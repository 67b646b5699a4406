package dto

import "github.com/oralabs/ora/internal/app/models"

// AddFriendRequest adds a user from the directory to the friends collection
type AddFriendRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// FriendListResponse wraps the friends collection in insertion order
type FriendListResponse struct {
	Friends []models.User `json:"friends"`
}

// FriendResponse reports the outcome of an add-friend call
type FriendResponse struct {
	Friend models.User `json:"friend"`
	Added  bool        `json:"added"`
}
