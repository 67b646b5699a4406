package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oralabs/ora/internal/app/models"
	"github.com/oralabs/ora/internal/app/models/dto"
	"github.com/oralabs/ora/internal/app/services"
	"github.com/oralabs/ora/internal/middleware"
)

// ChatController handles per-activity chat operations
type ChatController struct {
	chatService services.ChatService
	currentUser models.User
}

// NewChatController creates a new ChatController
func NewChatController(chatService services.ChatService, currentUser models.User) *ChatController {
	return &ChatController{
		chatService: chatService,
		currentUser: currentUser,
	}
}

// PostMessage handles a chat message from the current user
// @Summary Post chat message
// @Description Appends a message to the activity chat. Whitespace-only text is silently dropped.
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Activity ID"
// @Param message body dto.CreateChatMessageRequest true "Message text"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse}
// @Failure 403 {object} dto.APIResponse "Author is not a participant"
// @Failure 404 {object} dto.APIResponse "Activity not found"
// @Router /activities/{id}/messages [post]
func (c *ChatController) PostMessage(ctx *gin.Context) {
	var req dto.CreateChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
				WithDetails(middleware.FormatBindingError(err))))
		return
	}

	activity, err := c.chatService.PostMessage(ctx, ctx.Param("id"), c.currentUser, req.Text, false)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToActivityResponse(activity)))
}

// CheckIn handles posting the fixed system check-in message
// @Summary Check in
// @Tags chat
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse}
// @Failure 404 {object} dto.APIResponse "Activity not found"
// @Router /activities/{id}/checkin [post]
func (c *ChatController) CheckIn(ctx *gin.Context) {
	activity, err := c.chatService.CheckIn(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToActivityResponse(activity)))
}

// Icebreaker handles opening-line suggestions for an activity chat
// @Summary Suggest icebreaker
// @Description Returns a suggested opening line. The suggestion is not posted; submit it via the messages endpoint.
// @Tags chat
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuggestionResponse}
// @Failure 404 {object} dto.APIResponse "Activity not found"
// @Router /activities/{id}/icebreaker [get]
func (c *ChatController) Icebreaker(ctx *gin.Context) {
	text, err := c.chatService.Icebreaker(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuggestionResponse{Text: text}))
}
