package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oralabs/ora/internal/app/models/dto"
	"github.com/oralabs/ora/internal/app/services"
)

// NotificationController handles the process-wide inbox
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

// ListNotifications handles retrieving the inbox in creation order
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.NotificationListResponse}
// @Router /notifications [get]
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	notifications := c.notificationService.List(ctx)

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, dto.ToNotificationResponse(n))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NotificationListResponse{
		Notifications: responses,
		HasUnread:     c.notificationService.HasUnread(ctx),
	}))
}

// MarkRead handles flipping a notification to read
// @Summary Mark notification read
// @Description Idempotent; unknown ids are accepted as no-ops.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.APIResponse
// @Router /notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	c.notificationService.MarkRead(ctx, ctx.Param("id"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}

// HasUnread handles the unread-badge indicator
// @Summary Unread indicator
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UnreadResponse}
// @Router /notifications/unread [get]
func (c *NotificationController) HasUnread(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UnreadResponse{
		HasUnread: c.notificationService.HasUnread(ctx),
	}))
}
