package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fragmented-narratives/internal/models"
)

// handleServiceError maps service errors to HTTP responses. Storage
// failures never leak detail to the client.
func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var errResp models.ErrorResponse

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Message: "All fields are required"}
	case errors.Is(err, models.ErrUserAlreadyExists):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Message: "Username already exists"}
	case errors.Is(err, models.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		errResp = models.ErrorResponse{Message: "Invalid credentials"}
	case errors.Is(err, models.ErrTokenMissing):
		statusCode = http.StatusUnauthorized
		errResp = models.ErrorResponse{Message: "Access token required"}
	case errors.Is(err, models.ErrTokenInvalid), errors.Is(err, models.ErrTokenMalformed), errors.Is(err, models.ErrTokenExpired):
		statusCode = http.StatusForbidden
		errResp = models.ErrorResponse{Message: "Invalid token"}
	case errors.Is(err, models.ErrStoryNotFound):
		statusCode = http.StatusNotFound
		errResp = models.ErrorResponse{Message: "Story not found"}
	case errors.Is(err, models.ErrNoOpeningSentences):
		statusCode = http.StatusNotFound
		errResp = models.ErrorResponse{Message: "No opening sentences available"}
	case errors.Is(err, models.ErrUserNotFound):
		statusCode = http.StatusNotFound
		errResp = models.ErrorResponse{Message: "User not found"}
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = models.ErrorResponse{Message: "Internal server error"}
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}
