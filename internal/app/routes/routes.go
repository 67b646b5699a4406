package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/oralabs/ora/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	activityController *controllers.ActivityController,
	chatController *controllers.ChatController,
	notificationController *controllers.NotificationController,
	friendController *controllers.FriendController,
	sessionController *controllers.SessionController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Activity and participation routes
	activities := v1.Group("/activities")
	{
		activities.GET("", activityController.ListActivities)
		activities.POST("", activityController.CreateActivity)
		activities.POST("/vibe", activityController.GenerateVibeDescription)
		activities.GET("/:id", activityController.GetActivity)
		activities.POST("/:id/join", activityController.JoinActivity)

		// Chat routes live under their activity
		activities.POST("/:id/messages", chatController.PostMessage)
		activities.POST("/:id/checkin", chatController.CheckIn)
		activities.GET("/:id/icebreaker", chatController.Icebreaker)
	}

	// Notification inbox routes
	notifications := v1.Group("/notifications")
	{
		notifications.GET("", notificationController.ListNotifications)
		notifications.GET("/unread", notificationController.HasUnread)
		notifications.POST("/:id/read", notificationController.MarkRead)
	}

	// Friend graph routes
	friends := v1.Group("/friends")
	{
		friends.GET("", friendController.ListFriends)
		friends.POST("", friendController.AddFriend)
	}

	// Session routes
	session := v1.Group("/session")
	{
		session.GET("/me", sessionController.Me)
		session.POST("/start", sessionController.Start)
	}
}
