package executor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/mentor-registry/mentor-relay/internal/adapter"
	"github.com/mentor-registry/mentor-relay/internal/api/shared/dto"
	apierrors "github.com/mentor-registry/mentor-relay/internal/api/shared/errors"
	"github.com/mentor-registry/mentor-relay/internal/domain"
	"github.com/mentor-registry/mentor-relay/internal/logger"
	"github.com/mentor-registry/mentor-relay/internal/mentorregistry"
	"github.com/mentor-registry/mentor-relay/internal/messaging"
	"github.com/mentor-registry/mentor-relay/internal/metrics"
	"github.com/mentor-registry/mentor-relay/internal/providers/relayer"
	"github.com/mentor-registry/mentor-relay/internal/registry"
	"github.com/mentor-registry/mentor-relay/internal/relay"
	"github.com/mentor-registry/mentor-relay/internal/store"
	"github.com/mentor-registry/mentor-relay/internal/store/schema"
	"github.com/mentor-registry/mentor-relay/internal/types"
	"github.com/mentor-registry/mentor-relay/internal/webhook"
)

const (
	msgUsernameFormat = "Username must be snake_case (lowercase) and contain only letters (a-z), numbers (0-9), and underscores (_)"
	msgProfileFields  = "Full name, timezone, and username are required"
	msgProfileMissing = "Mentor profile not found"
	msgWalletBlocked  = "This mentor address is not allowed to register"
	msgUsernameTaken  = "This username is already taken"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// ProcessWebhook records a relayer webhook delivery and returns the metrics outcome.
	// Delivery problems are logged, never returned.
	ProcessWebhook(ctx context.Context, body []byte, signature string) string

	// GetTransactionStatus returns the status history of a transaction by hash or relayer transaction id
	GetTransactionStatus(ctx context.Context, hash, transactionID string) (*dto.TransactionStatusResponse, error)

	// RegisterMentor relays a registerMentorByRelayer call and saves the mentor profile
	RegisterMentor(ctx context.Context, req dto.RegisterMentorRequest) (*dto.RegisterMentorResponse, error)

	// GetMentorProfileByWallet retrieves a mentor profile by wallet address, nil if none
	GetMentorProfileByWallet(ctx context.Context, walletAddress string) (*dto.MentorProfile, error)

	// GetMentorProfileByUsername retrieves a mentor profile by username, nil if none
	GetMentorProfileByUsername(ctx context.Context, username string) (*dto.MentorProfile, error)

	// SaveMentorProfile creates or updates the profile of a wallet, reports whether it was created
	SaveMentorProfile(ctx context.Context, walletAddress string, req dto.SaveMentorProfileRequest) (bool, error)

	// DeleteMentorProfile soft deletes the profile of a wallet and username
	DeleteMentorProfile(ctx context.Context, walletAddress, username string) error

	// SyncTransaction reconciles one transaction with the relayer
	SyncTransaction(ctx context.Context, transactionID string) (*dto.SyncTransactionResponse, error)

	// Health checks the database connection
	Health(ctx context.Context) error
}

// Config holds the executor settings
type Config struct {
	// WebhookSigningKey enables the webhook signature check when set
	WebhookSigningKey string

	// Denylist rejects blocked wallets and reserved usernames, nil disables it
	Denylist registry.Denylist
}

type executor struct {
	cfg       Config
	store     store.Store
	relay     relay.Relay
	publisher messaging.Publisher
	verifier  mentorregistry.Verifier
	clock     adapter.Clock
}

// NewExecutor creates an executor. A nil verifier disables the on-chain registration checks.
func NewExecutor(cfg Config, st store.Store, r relay.Relay, publisher messaging.Publisher, verifier mentorregistry.Verifier, clock adapter.Clock) Executor {
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}
	return &executor{
		cfg:       cfg,
		store:     st,
		relay:     r,
		publisher: publisher,
		verifier:  verifier,
		clock:     clock,
	}
}

func (e *executor) ProcessWebhook(ctx context.Context, body []byte, signature string) string {
	if err := webhook.VerifySignature(e.cfg.WebhookSigningKey, body, signature); err != nil {
		logger.WarnCtx(ctx, "Ignoring webhook with invalid signature", zap.Error(err))
		return metrics.ResultInvalidSignature
	}

	event, err := webhook.Parse(body)
	if err != nil {
		logger.WarnCtx(ctx, "Ignoring malformed webhook", zap.Error(err))
		return metrics.ResultMalformed
	}

	ctx = logger.WithFields(ctx, zap.String("eventId", event.ID), zap.String("event", event.Event))
	if !event.IsTransactionUpdate() {
		logger.DebugCtx(ctx, "Ignoring webhook event")
		return metrics.ResultIgnored
	}

	row, err := event.ToStatus(e.clock.Now())
	if err != nil {
		logger.WarnCtx(ctx, "Ignoring webhook with invalid payload", zap.Error(err))
		return metrics.ResultMalformed
	}

	if err := e.store.UpsertTransactionStatus(ctx, row); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to store webhook status: %w", err))
		return metrics.ResultFailed
	}

	if err := e.publisher.PublishStatus(ctx, row); err != nil {
		metrics.StatusPublishErrors.Inc()
		logger.WarnCtx(ctx, "Failed to publish status event", zap.Error(err))
	}

	logger.InfoCtx(ctx, "Webhook status stored",
		zap.String("transactionId", row.TransactionID),
		zap.String("status", row.Status))
	return metrics.ResultProcessed
}

func (e *executor) GetTransactionStatus(ctx context.Context, hash, transactionID string) (*dto.TransactionStatusResponse, error) {
	hash = strings.TrimSpace(hash)
	transactionID = strings.TrimSpace(transactionID)
	if (hash == "") == (transactionID == "") {
		return nil, apierrors.NewBadRequestError("Either 'hash' or 'transactionId' query parameter is required")
	}

	var (
		rows []schema.TransactionStatus
		err  error
	)
	if hash != "" {
		rows, err = e.store.GetTransactionStatusesByHash(ctx, hash)
	} else {
		rows, err = e.store.GetTransactionStatusesByTransactionID(ctx, transactionID)
	}
	if err == nil {
		return dto.NewTransactionStatusResponse(rows), nil
	}

	logger.ErrorCtx(ctx, fmt.Errorf("failed to get transaction status: %w", err))
	return nil, apierrors.NewDatabaseError("Failed to get transaction status")
}

func (e *executor) RegisterMentor(ctx context.Context, req dto.RegisterMentorRequest) (*dto.RegisterMentorResponse, error) {
	if strings.TrimSpace(req.Data) == "" {
		return nil, apierrors.NewValidationError("Transaction data is required")
	}
	if !types.IsHexData(req.Data) {
		return nil, apierrors.NewValidationError("Transaction data must be 0x-prefixed hex")
	}

	call, err := mentorregistry.DecodeRegisterCall(req.Data)
	if err != nil {
		return nil, apierrors.NewValidationError("Invalid transaction data", err.Error())
	}
	if err := checkCallMatchesRequest(call, req); err != nil {
		return nil, err
	}
	if err := e.checkDenylist(call.MentorAddress.Hex(), call.Username); err != nil {
		return nil, err
	}

	ctx = logger.WithFields(ctx,
		zap.String("username", call.Username),
		zap.String("mentorAddress", call.MentorAddress.Hex()))

	if e.verifier != nil {
		if err := e.verifier.VerifyRegistration(ctx, call); err != nil {
			if isRegistrationRejection(err) {
				logger.InfoCtx(ctx, "Registration rejected before relaying", zap.Error(err))
				return nil, apierrors.NewBadRequestError(mentorregistry.TranslateError(err))
			}
			// the contract performs the same checks, an unreachable RPC must not block registration
			logger.WarnCtx(ctx, "Skipping registration pre-check", zap.Error(err))
		}
	}

	result, err := e.relay.SubmitAndPoll(ctx, req.Data)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to relay registration: %w", err))
		return nil, apierrors.NewServiceError(mentorregistry.TranslateRevert(relayerErrorMessage(err)))
	}

	resp := &dto.RegisterMentorResponse{
		ID:          result.Hash,
		TxID:        result.TransactionID,
		Status:      result.Status,
		ConfirmedAt: result.ConfirmedAt,
		CreatedAt:   result.CreatedAt,
	}

	if req.HasProfile() {
		created, err := e.saveRegisteredProfile(ctx, req)
		if err != nil {
			// the transaction is already relayed, the profile can be saved later through PATCH
			logger.ErrorCtx(ctx, fmt.Errorf("failed to save mentor profile: %w", err))
		}
		resp.ProfileCreated = created
	}

	logger.InfoCtx(ctx, "Mentor registration relayed",
		zap.String("transactionId", result.TransactionID),
		zap.String("status", result.Status),
		zap.Bool("profileCreated", resp.ProfileCreated))

	return resp, nil
}

// saveRegisteredProfile updates the profile of the registered wallet and username, creating it when missing
func (e *executor) saveRegisteredProfile(ctx context.Context, req dto.RegisterMentorRequest) (bool, error) {
	existing, err := e.store.GetMentorProfile(ctx, req.WalletAddress, req.Username)
	if err != nil {
		return false, err
	}

	if existing != nil {
		_, err := e.store.UpdateMentorProfile(ctx, req.WalletAddress, req.Username, store.UpdateMentorProfileInput{
			FullName: req.FullName,
			Bio:      req.Bio,
			Timezone: req.Timezone,
		})
		return false, err
	}

	_, err = e.store.CreateMentorProfile(ctx, store.CreateMentorProfileInput{
		Username:      req.Username,
		WalletAddress: domain.NormalizeAddress(req.WalletAddress),
		FullName:      req.FullName,
		Bio:           req.Bio,
		Timezone:      req.Timezone,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (e *executor) GetMentorProfileByWallet(ctx context.Context, walletAddress string) (*dto.MentorProfile, error) {
	if walletAddress == "" {
		return nil, apierrors.NewBadRequestError("Wallet address is required")
	}

	profile, err := e.store.GetMentorProfileByWallet(ctx, walletAddress)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get mentor profile: %v", err))
	}
	return dto.MapMentorProfileToDTO(profile), nil
}

func (e *executor) GetMentorProfileByUsername(ctx context.Context, username string) (*dto.MentorProfile, error) {
	if username == "" {
		return nil, apierrors.NewBadRequestError("Username is required")
	}

	profile, err := e.store.GetMentorProfileByUsername(ctx, username)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get mentor profile: %v", err))
	}
	return dto.MapMentorProfileToDTO(profile), nil
}

func (e *executor) SaveMentorProfile(ctx context.Context, walletAddress string, req dto.SaveMentorProfileRequest) (bool, error) {
	if walletAddress == "" {
		return false, apierrors.NewBadRequestError("Wallet address is required")
	}
	if !domain.IsValidWalletAddress(walletAddress) {
		return false, apierrors.NewValidationError("Invalid wallet address", walletAddress)
	}
	if req.FullName == "" || req.Timezone == "" || req.Username == "" {
		return false, apierrors.NewValidationError(msgProfileFields)
	}
	if !domain.IsValidUsername(req.Username) {
		return false, apierrors.NewValidationError(msgUsernameFormat)
	}

	existing, err := e.store.GetMentorProfileByWallet(ctx, walletAddress)
	if err != nil {
		return false, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get mentor profile: %v", err))
	}

	if existing == nil {
		if err := e.checkDenylist(walletAddress, req.Username); err != nil {
			return false, err
		}
		if _, err := e.store.CreateMentorProfile(ctx, store.CreateMentorProfileInput{
			Username:      req.Username,
			WalletAddress: domain.NormalizeAddress(walletAddress),
			FullName:      req.FullName,
			Bio:           req.Bio,
			Timezone:      req.Timezone,
		}); err != nil {
			return false, apierrors.NewDatabaseError(fmt.Sprintf("Failed to save mentor profile: %v", err))
		}
		return true, nil
	}

	updated, err := e.store.UpdateMentorProfile(ctx, walletAddress, req.Username, store.UpdateMentorProfileInput{
		FullName: req.FullName,
		Bio:      req.Bio,
		Timezone: req.Timezone,
	})
	if err != nil {
		return false, apierrors.NewDatabaseError(fmt.Sprintf("Failed to update mentor profile: %v", err))
	}
	if updated == nil {
		// the wallet has a profile under another username
		return false, apierrors.NewNotFoundError(msgProfileMissing)
	}
	return false, nil
}

func (e *executor) DeleteMentorProfile(ctx context.Context, walletAddress, username string) error {
	if walletAddress == "" || username == "" {
		return apierrors.NewBadRequestError("Wallet address and username are required")
	}

	deleted, err := e.store.SoftDeleteMentorProfile(ctx, walletAddress, username)
	if err != nil {
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to delete mentor profile: %v", err))
	}
	if !deleted {
		return apierrors.NewNotFoundError(msgProfileMissing)
	}

	logger.InfoCtx(ctx, "Mentor profile deleted",
		zap.String("walletAddress", walletAddress),
		zap.String("username", username))
	return nil
}

func (e *executor) SyncTransaction(ctx context.Context, transactionID string) (*dto.SyncTransactionResponse, error) {
	if transactionID == "" {
		return nil, apierrors.NewBadRequestError("Transaction id is required")
	}

	latest, recorded, err := e.relay.Sync(ctx, transactionID)
	if err != nil {
		var apiErr *relayer.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, apierrors.NewNotFoundError("Transaction not found", apiErr.Message)
		}
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to sync transaction: %v", err))
	}

	return &dto.SyncTransactionResponse{
		Success:  true,
		Recorded: recorded,
		Latest:   dto.MapTransactionStatusToDTO(latest),
	}, nil
}

func (e *executor) Health(ctx context.Context) error {
	return e.store.Ping(ctx)
}

func (e *executor) checkDenylist(walletAddress, username string) error {
	if e.cfg.Denylist == nil {
		return nil
	}
	if e.cfg.Denylist.IsWalletBlocked(walletAddress) {
		return apierrors.NewBadRequestError(msgWalletBlocked)
	}
	if e.cfg.Denylist.IsUsernameReserved(username) {
		return apierrors.NewBadRequestError(msgUsernameTaken)
	}
	return nil
}

// checkCallMatchesRequest rejects requests whose username or wallet disagree with the signed call
func checkCallMatchesRequest(call *mentorregistry.RegisterCall, req dto.RegisterMentorRequest) error {
	if req.Username != "" && req.Username != call.Username {
		return apierrors.NewValidationError(domain.ErrCallDataMismatch.Error(), "username")
	}
	if req.WalletAddress != "" {
		if !common.IsHexAddress(req.WalletAddress) || common.HexToAddress(req.WalletAddress) != call.MentorAddress {
			return apierrors.NewValidationError(domain.ErrCallDataMismatch.Error(), "walletAddress")
		}
	}
	if req.Username != "" && !domain.IsValidUsername(req.Username) {
		return apierrors.NewValidationError(msgUsernameFormat)
	}
	return nil
}

func isRegistrationRejection(err error) bool {
	return errors.Is(err, domain.ErrDeadlineExceeded) ||
		errors.Is(err, domain.ErrInvalidSignature) ||
		errors.Is(err, mentorregistry.ErrUsernameAlreadyExists) ||
		errors.Is(err, mentorregistry.ErrAddressAlreadyExists)
}

// relayerErrorMessage returns the message reported by the relayer, or the error text
func relayerErrorMessage(err error) string {
	var apiErr *relayer.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
