package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oralabs/ora/internal/app/models"
	"github.com/oralabs/ora/internal/app/models/dto"
	"github.com/oralabs/ora/internal/app/services"
)

// SessionController handles the single in-memory session
type SessionController struct {
	notificationService services.NotificationService
	currentUser         models.User
}

// NewSessionController creates a new SessionController
func NewSessionController(notificationService services.NotificationService, currentUser models.User) *SessionController {
	return &SessionController{
		notificationService: notificationService,
		currentUser:         currentUser,
	}
}

// Me handles retrieving the current user's profile
// @Summary Current user
// @Tags session
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Router /session/me [get]
func (c *SessionController) Me(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.currentUser))
}

// Start handles the session entering the main state after onboarding.
// Re-entry is a no-op; the welcome notification is only ever synthesized once.
// @Summary Start session
// @Tags session
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Router /session/start [post]
func (c *SessionController) Start(ctx *gin.Context) {
	c.notificationService.StartSession(ctx)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
}
