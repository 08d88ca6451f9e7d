package relay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mentor-registry/mentor-relay/internal/adapter"
	"github.com/mentor-registry/mentor-relay/internal/domain"
	"github.com/mentor-registry/mentor-relay/internal/logger"
	"github.com/mentor-registry/mentor-relay/internal/messaging"
	"github.com/mentor-registry/mentor-relay/internal/metrics"
	"github.com/mentor-registry/mentor-relay/internal/providers/relayer"
	"github.com/mentor-registry/mentor-relay/internal/retry"
	"github.com/mentor-registry/mentor-relay/internal/store"
	"github.com/mentor-registry/mentor-relay/internal/store/schema"
	"github.com/mentor-registry/mentor-relay/internal/types"
)

var errHashPending = errors.New("transaction hash not yet available")

// Config holds the relay submission settings
type Config struct {
	// RegistryAddress is the contract every relayed call is sent to
	RegistryAddress string
	GasLimit        uint64
	Speed           relayer.Speed
	// PollAttempts is the number of fetches before the final one
	PollAttempts int
	// PollBaseDelay is the delay before the second fetch, doubled after each fetch
	PollBaseDelay time.Duration
	// Timer drives the poll sleeps, nil uses the real timer
	Timer retry.Timer
}

// SubmitResult is the state of a submitted transaction once polling finished
type SubmitResult struct {
	TransactionID string
	// Hash is nil when the relayer had not sent the transaction yet
	Hash        *string
	Status      string
	CreatedAt   *string
	ConfirmedAt *string
	// Fetches is the number of GET calls made to the relayer
	Fetches int
}

// Relay submits registry calls through the relayer and keeps local status rows in sync
//
//go:generate mockgen -source=relay.go -destination=../mocks/relay.go -package=mocks -mock_names=Relay=MockRelay
type Relay interface {
	// SubmitAndPoll sends callData to the registry and waits for a transaction hash with backoff
	SubmitAndPoll(ctx context.Context, callData string) (*SubmitResult, error)
	// Sync fetches a transaction from the relayer and records it when it differs from the latest stored row.
	// It returns the latest row and whether a new row was recorded.
	Sync(ctx context.Context, transactionID string) (*schema.TransactionStatus, bool, error)
}

type relay struct {
	cfg       Config
	client    relayer.Client
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
}

// New creates a relay
func New(cfg Config, client relayer.Client, st store.Store, publisher messaging.Publisher, clock adapter.Clock) Relay {
	if cfg.GasLimit == 0 {
		cfg.GasLimit = domain.DefaultGasLimit
	}
	if cfg.Speed == "" {
		cfg.Speed = relayer.Speed(domain.DefaultSpeed)
	}
	if cfg.PollAttempts < 0 {
		cfg.PollAttempts = 0
	}
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}

	return &relay{
		cfg:       cfg,
		client:    client,
		store:     st,
		publisher: publisher,
		clock:     clock,
	}
}

// SubmitAndPoll never fails because of a missing hash: after the poll attempts the last
// fetched state is returned as is.
func (r *relay) SubmitAndPoll(ctx context.Context, callData string) (*SubmitResult, error) {
	sent, err := r.client.SendTransaction(ctx, relayer.SendTransactionRequest{
		To:       r.cfg.RegistryAddress,
		Data:     callData,
		Value:    0,
		GasLimit: r.cfg.GasLimit,
		Speed:    r.cfg.Speed,
	})
	if err != nil {
		metrics.RelaySubmissionsTotal.WithLabelValues(metrics.ResultFailed).Inc()
		return nil, fmt.Errorf("failed to submit transaction: %w", err)
	}

	txID := sent.ID
	ctx = logger.WithFields(ctx, zap.String("transactionId", txID))
	logger.InfoCtx(ctx, "Transaction submitted to relayer", zap.String("status", sent.Status))

	var (
		latest  *relayer.Transaction
		fetches int
	)
	policy := retry.Policy{
		MaxRetries: uint64(r.cfg.PollAttempts),
		BaseDelay:  r.cfg.PollBaseDelay,
	}
	err = retry.DoWithTimer(ctx, policy, r.cfg.Timer, func() error {
		fetches++
		tx, err := r.client.GetTransaction(ctx, txID)
		if err != nil {
			return retry.Permanent(err)
		}
		latest = tx
		if !tx.HasHash() {
			return errHashPending
		}
		return nil
	}, func(err error, next time.Duration) {
		logger.DebugCtx(ctx, "Waiting for transaction hash",
			zap.Int("fetch", fetches),
			zap.Duration("nextDelay", next))
	})
	if err != nil && !errors.Is(err, errHashPending) {
		metrics.RelaySubmissionsTotal.WithLabelValues(metrics.ResultFailed).Inc()
		return nil, fmt.Errorf("failed to get transaction %s: %w", txID, err)
	}

	metrics.RelaySubmissionsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.RelayPollAttempts.Observe(float64(fetches))
	if !latest.HasHash() {
		logger.WarnCtx(ctx, "Transaction hash not available after polling", zap.Int("fetches", fetches))
	}

	r.record(ctx, "submission:"+txID, domain.SourceSubmission, latest)

	result := &SubmitResult{
		TransactionID: txID,
		Status:        latest.Status,
		CreatedAt:     latest.CreatedAt,
		ConfirmedAt:   latest.ConfirmedAt,
		Fetches:       fetches,
	}
	if latest.HasHash() {
		result.Hash = latest.Hash
	}
	return result, nil
}

func (r *relay) Sync(ctx context.Context, transactionID string) (*schema.TransactionStatus, bool, error) {
	tx, err := r.client.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}

	latest, err := r.store.GetLatestTransactionStatus(ctx, transactionID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get latest status: %w", err)
	}
	if latest != nil && !changed(latest, tx) {
		return latest, false, nil
	}

	id := fmt.Sprintf("reconcile:%s:%s", transactionID, strings.ToLower(tx.Status))
	row, err := r.toStatus(id, domain.SourceReconciler, tx)
	if err != nil {
		return nil, false, err
	}
	if err := r.store.UpsertTransactionStatus(ctx, row); err != nil {
		return nil, false, fmt.Errorf("failed to record status: %w", err)
	}
	r.publish(ctx, row)

	logger.InfoCtx(ctx, "Transaction status reconciled",
		zap.String("transactionId", transactionID),
		zap.String("status", tx.Status))

	return row, true, nil
}

// record stores and publishes a transaction state, failures are only logged
func (r *relay) record(ctx context.Context, id, source string, tx *relayer.Transaction) {
	row, err := r.toStatus(id, source, tx)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("statusId", id))
		return
	}
	if err := r.store.UpsertTransactionStatus(ctx, row); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record status: %w", err), zap.String("statusId", id))
		return
	}
	r.publish(ctx, row)
}

func (r *relay) publish(ctx context.Context, row *schema.TransactionStatus) {
	if err := r.publisher.PublishStatus(ctx, row); err != nil {
		metrics.StatusPublishErrors.Inc()
		logger.WarnCtx(ctx, "Failed to publish status event", zap.Error(err), zap.String("statusId", row.ID))
	}
}

func (r *relay) toStatus(id, source string, tx *relayer.Transaction) (*schema.TransactionStatus, error) {
	raw, err := json.Marshal(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}
	return types.RelayerTransactionToStatus(id, source, tx, r.clock.Now().UTC(), raw), nil
}

// changed reports whether the relayer state differs from the stored row in status or hash
func changed(row *schema.TransactionStatus, tx *relayer.Transaction) bool {
	if !strings.EqualFold(row.Status, tx.Status) {
		return true
	}
	if !tx.HasHash() {
		return false
	}
	return row.Hash == nil || !strings.EqualFold(*row.Hash, *tx.Hash)
}
