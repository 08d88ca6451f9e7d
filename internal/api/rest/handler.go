package rest

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mentor-registry/mentor-relay/internal/api/shared/dto"
	"github.com/mentor-registry/mentor-relay/internal/api/shared/executor"
	"github.com/mentor-registry/mentor-relay/internal/logger"
	"github.com/mentor-registry/mentor-relay/internal/metrics"
	"github.com/mentor-registry/mentor-relay/internal/webhook"
)

// maxWebhookBody bounds the relayer webhook body
const maxWebhookBody = 1 << 20

// Handler defines the interface for REST API handlers
type Handler interface {
	// RelayerWebhook records a relayer status update, always answering 200 once the body was read
	// POST /api/relayer/webhook
	RelayerWebhook(c *gin.Context)

	// GetTransactionStatus returns the status history of a transaction
	// GET /api/transaction/status?hash=<hash>|transactionId=<id>
	GetTransactionStatus(c *gin.Context)

	// RegisterMentor relays a signed registration and saves the profile
	// POST /api/mentor/register
	RegisterMentor(c *gin.Context)

	// GetMentorProfile returns the profile of a wallet
	// GET /api/mentor/:walletAddress
	GetMentorProfile(c *gin.Context)

	// SaveMentorProfile creates or updates the profile of a wallet
	// PATCH /api/mentor/:walletAddress
	SaveMentorProfile(c *gin.Context)

	// DeleteMentorProfile soft deletes a profile (requires authentication)
	// DELETE /api/mentor/:walletAddress?username=<username>
	DeleteMentorProfile(c *gin.Context)

	// GetMentorProfileByUsername returns the profile of a username
	// GET /api/mentor-by-username/:username
	GetMentorProfileByUsername(c *gin.Context)

	// SyncTransaction reconciles a transaction with the relayer (requires authentication)
	// POST /api/admin/transactions/:transactionId/sync
	SyncTransaction(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) RelayerWebhook(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody+1))
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
		metrics.WebhookEventsTotal.WithLabelValues(metrics.ResultFailed).Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process webhook"})
		return
	}

	// Acknowledged like any other unusable event so the relayer stops retrying
	if len(body) > maxWebhookBody {
		logger.WarnCtx(c.Request.Context(), "Ignoring oversized webhook body",
			zap.Int("limit_bytes", maxWebhookBody),
			zap.Int64("content_length", c.Request.ContentLength),
		)
		metrics.WebhookEventsTotal.WithLabelValues(metrics.ResultOversized).Inc()
		c.JSON(http.StatusOK, dto.WebhookResponse{
			Success: true,
			Message: "Webhook received and processed",
		})
		return
	}

	outcome := h.executor.ProcessWebhook(c.Request.Context(), body, c.GetHeader(webhook.SignatureHeader))
	metrics.WebhookEventsTotal.WithLabelValues(outcome).Inc()

	c.JSON(http.StatusOK, dto.WebhookResponse{
		Success: true,
		Message: "Webhook received and processed",
	})
}

func (h *handler) GetTransactionStatus(c *gin.Context) {
	resp, err := h.executor.GetTransactionStatus(c.Request.Context(), c.Query("hash"), c.Query("transactionId"))
	if err != nil {
		respondError(c, err, "Failed to get transaction status")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) RegisterMentor(c *gin.Context) {
	var req dto.RegisterMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.RegisterMentor(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register mentor")
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetMentorProfile(c *gin.Context) {
	profile, err := h.executor.GetMentorProfileByWallet(c.Request.Context(), c.Param("walletAddress"))
	if err != nil {
		respondError(c, err, "Failed to get mentor profile")
		return
	}
	if profile == nil {
		respondNotFound(c, "Mentor profile not found")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *handler) SaveMentorProfile(c *gin.Context) {
	var req dto.SaveMentorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	walletAddress := c.Param("walletAddress")
	created, err := h.executor.SaveMentorProfile(c.Request.Context(), walletAddress, req)
	if err != nil {
		respondError(c, err, "Failed to save mentor profile", zap.String("walletAddress", walletAddress))
		return
	}

	if created {
		c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Successfully save profile"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully update profile"})
}

func (h *handler) DeleteMentorProfile(c *gin.Context) {
	walletAddress := c.Param("walletAddress")
	if err := h.executor.DeleteMentorProfile(c.Request.Context(), walletAddress, c.Query("username")); err != nil {
		respondError(c, err, "Failed to delete mentor profile", zap.String("walletAddress", walletAddress))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) GetMentorProfileByUsername(c *gin.Context) {
	profile, err := h.executor.GetMentorProfileByUsername(c.Request.Context(), strings.TrimSpace(c.Param("username")))
	if err != nil {
		respondError(c, err, "Failed to get mentor profile")
		return
	}
	if profile == nil {
		respondNotFound(c, "Mentor profile not found")
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *handler) SyncTransaction(c *gin.Context) {
	transactionID := c.Param("transactionId")
	resp, err := h.executor.SyncTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondError(c, err, "Failed to sync transaction", zap.String("transactionId", transactionID))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.executor.Health(c.Request.Context()); err != nil {
		logger.WarnCtx(c.Request.Context(), "Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unavailable",
			"service":  "mentor-relay-api",
			"database": "down",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "mentor-relay-api",
		"database": "up",
	})
}
