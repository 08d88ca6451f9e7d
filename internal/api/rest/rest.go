package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mentor-registry/mentor-relay/internal/api/middleware"
	"github.com/mentor-registry/mentor-relay/internal/ratelimit"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, auth *middleware.Authenticator, limiter ratelimit.Limiter) {
	// Health check and metrics (no auth, no prefix)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		// Relayer push updates, authenticated by signature when a signing key is configured
		api.POST("/relayer/webhook", handler.RelayerWebhook)

		api.GET("/transaction/status", handler.GetTransactionStatus)

		// Mentor endpoints (public, the wallet signature authorizes registration)
		// Registration is relayed at our gas cost, so it is throttled per client
		api.POST("/mentor/register", middleware.RateLimit(limiter), handler.RegisterMentor)
		api.GET("/mentor/:walletAddress", handler.GetMentorProfile)
		api.PATCH("/mentor/:walletAddress", handler.SaveMentorProfile)
		api.DELETE("/mentor/:walletAddress", middleware.Auth(auth), handler.DeleteMentorProfile)
		api.GET("/mentor-by-username/:username", handler.GetMentorProfileByUsername)

		// Admin endpoints (requires authentication)
		admin := api.Group("/admin", middleware.Auth(auth))
		admin.POST("/transactions/:transactionId/sync", handler.SyncTransaction)
	}
}
