package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/mentor-registry/mentor-relay/internal/api/shared/errors"
	"github.com/mentor-registry/mentor-relay/internal/logger"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.StatusCode(), apierrors.ErrorResponse{Error: apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, apierrors.NewNotFoundError(message, details...))
}

// respondError sends err as is when it is an APIError, otherwise a 500 with fallback as message
func respondError(c *gin.Context, err error, fallback string, fields ...zap.Field) {
	if apiErr, ok := apierrors.As(err); ok {
		if apiErr.StatusCode() >= http.StatusInternalServerError {
			logger.ErrorCtx(c.Request.Context(), fmt.Errorf("%s: %w", fallback, err), fields...)
		}
		respondWithError(c, apiErr)
		return
	}

	logger.ErrorCtx(c.Request.Context(), err, fields...)
	respondWithError(c, apierrors.NewInternalError(fallback))
}
