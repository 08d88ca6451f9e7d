package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/mentor-registry/mentor-relay/internal/api/shared/errors"
	"github.com/mentor-registry/mentor-relay/internal/logger"
	"github.com/mentor-registry/mentor-relay/internal/metrics"
	"github.com/mentor-registry/mentor-relay/internal/ratelimit"
)

// RateLimit throttles requests per client IP. A nil limiter disables it.
// Limiter failures let the request through.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		decision, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Rate limiter unavailable, allowing request", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(decision.RetryAfter.Seconds()))))
			metrics.RateLimitedTotal.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.ErrorResponse{
				Error: apierrors.NewTooManyRequestsError("Too many requests, please try again later"),
			})
			return
		}

		c.Next()
	}
}
