package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oralabs/ora/internal/app/models/dto"
	"github.com/oralabs/ora/internal/app/services"
	"github.com/oralabs/ora/internal/middleware"
)

// FriendController handles the current user's friend graph
type FriendController struct {
	friendService services.FriendService
}

// NewFriendController creates a new FriendController
func NewFriendController(friendService services.FriendService) *FriendController {
	return &FriendController{
		friendService: friendService,
	}
}

// ListFriends handles retrieving the friends collection
// @Summary List friends
// @Tags friends
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FriendListResponse}
// @Router /friends [get]
func (c *FriendController) ListFriends(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FriendListResponse{
		Friends: c.friendService.List(ctx),
	}))
}

// AddFriend handles adding a directory user to the friends collection
// @Summary Add friend
// @Description Idempotent; re-adding an existing friend or adding oneself is a no-op.
// @Tags friends
// @Accept json
// @Produce json
// @Param request body dto.AddFriendRequest true "User to add"
// @Success 200 {object} dto.APIResponse{data=dto.FriendResponse}
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /friends [post]
func (c *FriendController) AddFriend(ctx *gin.Context) {
	var req dto.AddFriendRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
				WithDetails(middleware.FormatBindingError(err))))
		return
	}

	user, added, err := c.friendService.Add(ctx, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FriendResponse{
		Friend: user,
		Added:  added,
	}))
}
