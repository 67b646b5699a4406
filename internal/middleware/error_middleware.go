package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oralabs/ora/internal/app/models/dto"
	"github.com/oralabs/ora/internal/pkg/apperrors"
)

// HandleAPIError maps engine errors onto HTTP responses. No engine error is
// fatal: capacity and validation failures come back as rejected submissions
// the client can recover from.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrActivityNotFound),
		errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error())))

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidCategory),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	case errors.Is(err, apperrors.ErrCapacityExceeded):
		c.JSON(http.StatusConflict, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeCapacityExceeded, err.Error())))

	case errors.Is(err, apperrors.ErrNotParticipant):
		c.JSON(http.StatusForbidden, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeNotParticipant, err.Error())))

	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorAPIResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
