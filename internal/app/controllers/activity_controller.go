package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oralabs/ora/internal/app/models"
	"github.com/oralabs/ora/internal/app/models/dto"
	"github.com/oralabs/ora/internal/app/services"
	"github.com/oralabs/ora/internal/middleware"
	"github.com/oralabs/ora/internal/pkg/suggest"
)

// ActivityController handles activity listing, creation and participation
type ActivityController struct {
	activityService services.ActivityService
	provider        suggest.SuggestionProvider
	currentUser     models.User
}

// NewActivityController creates a new ActivityController
func NewActivityController(
	activityService services.ActivityService,
	provider suggest.SuggestionProvider,
	currentUser models.User,
) *ActivityController {
	return &ActivityController{
		activityService: activityService,
		provider:        provider,
		currentUser:     currentUser,
	}
}

// ListActivities handles retrieving activities with an optional category filter
// @Summary List activities
// @Description Retrieves activities in store order, optionally filtered by category
// @Tags activities
// @Produce json
// @Param category query string false "Category filter (default All)"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityListResponse}
// @Failure 400 {object} dto.APIResponse "Unknown category"
// @Router /activities [get]
func (c *ActivityController) ListActivities(ctx *gin.Context) {
	filter := ctx.DefaultQuery("category", services.FilterAll)

	activities, err := c.activityService.List(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		responses = append(responses, dto.ToActivityResponse(a))
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ActivityListResponse{
		Activities: responses,
		Filter:     filter,
	}))
}

// CreateActivity handles activity creation by the current user
// @Summary Create activity
// @Description Validates the draft and creates an activity hosted by the current user
// @Tags activities
// @Accept json
// @Produce json
// @Param draft body dto.CreateActivityRequest true "Activity draft"
// @Success 201 {object} dto.APIResponse{data=dto.ActivityResponse}
// @Failure 400 {object} dto.APIResponse "Missing required fields or capacity out of bounds"
// @Router /activities [post]
func (c *ActivityController) CreateActivity(ctx *gin.Context) {
	var req dto.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
				WithDetails(middleware.FormatBindingError(err))))
		return
	}

	activity, err := c.activityService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ToActivityResponse(activity)))
}

// GetActivity handles retrieving a single activity by ID
// @Summary Get activity
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse}
// @Failure 404 {object} dto.APIResponse "Activity not found"
// @Router /activities/{id} [get]
func (c *ActivityController) GetActivity(ctx *gin.Context) {
	activity, err := c.activityService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToActivityResponse(activity)))
}

// JoinActivity handles the current user joining an activity
// @Summary Join activity
// @Description Appends the current user to the participant list. Idempotent; rejected when full.
// @Tags activities
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} dto.APIResponse{data=dto.ActivityResponse}
// @Failure 404 {object} dto.APIResponse "Activity not found"
// @Failure 409 {object} dto.APIResponse "Activity is at capacity"
// @Router /activities/{id}/join [post]
func (c *ActivityController) JoinActivity(ctx *gin.Context) {
	activity, err := c.activityService.Join(ctx, ctx.Param("id"), c.currentUser)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ToActivityResponse(activity)))
}

// GenerateVibeDescription handles description suggestions for the creation flow
// @Summary Generate vibe description
// @Description Asks the suggestion collaborator for a short editorial description. Always answers; failures degrade to a fixed line.
// @Tags activities
// @Accept json
// @Produce json
// @Param request body dto.VibeDescriptionRequest true "Title and category"
// @Success 200 {object} dto.APIResponse{data=dto.SuggestionResponse}
// @Router /activities/vibe [post]
func (c *ActivityController) GenerateVibeDescription(ctx *gin.Context) {
	var req dto.VibeDescriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
				WithDetails(middleware.FormatBindingError(err))))
		return
	}

	text := c.provider.GenerateVibeDescription(ctx, req.Title, req.Category)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SuggestionResponse{Text: text}))
}
