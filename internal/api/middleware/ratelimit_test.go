package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentor-registry/mentor-relay/internal/api/middleware"
	apierrors "github.com/mentor-registry/mentor-relay/internal/api/shared/errors"
	"github.com/mentor-registry/mentor-relay/internal/config"
	"github.com/mentor-registry/mentor-relay/internal/mocks"
	"github.com/mentor-registry/mentor-relay/internal/ratelimit"
)

func rateLimitedRouter(limiter ratelimit.Limiter) *gin.Engine {
	router := gin.New()
	router.POST("/register", middleware.RateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func postFrom(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	req.RemoteAddr = ip + ":51000"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		decision   *ratelimit.Decision
		err        error
		wantStatus int
		wantRetry  string
	}{
		{
			name:       "allowed",
			decision:   &ratelimit.Decision{Allowed: true, Remaining: 3},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "rejected",
			decision:   &ratelimit.Decision{Allowed: false, RetryAfter: 1500 * time.Millisecond},
			wantStatus: http.StatusTooManyRequests,
			wantRetry:  "2",
		},
		{
			name:       "limiter failure lets the request through",
			err:        ratelimit.ErrUnavailable,
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			limiter := mocks.NewMockRateLimiter(ctrl)
			limiter.EXPECT().Allow(gomock.Any(), "203.0.113.7").Return(tt.decision, tt.err)

			w := postFrom(rateLimitedRouter(limiter), "203.0.113.7")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantRetry, w.Header().Get("Retry-After"))

			if tt.wantStatus == http.StatusTooManyRequests {
				var resp apierrors.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, apierrors.ErrCodeTooManyRequests, resp.Error.Code)
				assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
			}
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	w := postFrom(rateLimitedRouter(nil), "203.0.113.7")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_LocalLimiter(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()
	var never <-chan time.Time = make(chan time.Time)
	clock.EXPECT().After(gomock.Any()).Return(never).AnyTimes()

	limiter, err := ratelimit.NewLimiter(config.RateLimitConfig{RequestsPerMinute: 1, Burst: 1}, nil, clock)
	require.NoError(t, err)
	defer limiter.Close()

	router := rateLimitedRouter(limiter)
	assert.Equal(t, http.StatusCreated, postFrom(router, "203.0.113.7").Code)

	w := postFrom(router, "203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusCreated, postFrom(router, "198.51.100.2").Code)
}
