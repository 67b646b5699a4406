package services

// Services defined in this package:
// - ActivityService: activity store and participation engine (list, create, join)
// - ChatService: per-activity chat log, check-ins and icebreaker suggestions
// - NotificationService: process-wide inbox and welcome synthesis
// - FriendService: the current user's friend graph
