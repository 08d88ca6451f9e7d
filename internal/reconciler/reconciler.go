package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/mentor-registry/mentor-relay/internal/adapter"
	"github.com/mentor-registry/mentor-relay/internal/logger"
	"github.com/mentor-registry/mentor-relay/internal/metrics"
	"github.com/mentor-registry/mentor-relay/internal/relay"
	"github.com/mentor-registry/mentor-relay/internal/store"
)

// Reconciler is a long-running background task that re-fetches stale pending transactions
// from the relayer, covering webhooks that were never delivered.
type Reconciler interface {
	// Start begins the main loop
	// This is a blocking call that runs until the context is canceled or Stop is called.
	// A reconciler runs once; Start after a previous Start returns ErrAlreadyStarted.
	Start(ctx context.Context) error

	// Stop gracefully stops the reconciler, waiting for the running cycle to finish
	Stop(ctx context.Context) error

	// RunOnce runs a single reconciliation cycle
	RunOnce(ctx context.Context) (CycleStats, error)

	// Name returns the reconciler's name for logging and identification
	Name() string
}

// ErrAlreadyStarted is returned by Start when the reconciler was started before
var ErrAlreadyStarted = errors.New("reconciler already started")

// Config holds configuration for the status reconciler
type Config struct {
	Interval       time.Duration // Time to sleep between cycles
	BatchSize      int           // Transactions reconciled per cycle
	WorkerPoolSize int           // Concurrent relayer fetches
	StaleAfter     time.Duration // Only transactions without events for this long
}

// CycleStats summarizes a reconciliation cycle
type CycleStats struct {
	Checked   int
	Updated   int
	Unchanged int
	Failed    int
}

type statusReconciler struct {
	config    Config
	store     store.Store
	relay     relay.Relay
	clock     adapter.Clock
	started   atomic.Bool
	stopOnce  sync.Once
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// New creates a new status reconciler
func New(config Config, st store.Store, r relay.Relay, clock adapter.Clock) Reconciler {
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 1
	}
	return &statusReconciler{
		config:    config,
		store:     st,
		relay:     r,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (s *statusReconciler) Name() string {
	return "status-reconciler"
}

func (s *statusReconciler) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer close(s.stoppedCh)

	logger.InfoCtx(ctx, "Starting status reconciler",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("stale_after", s.config.StaleAfter),
	)

	for {
		if _, err := s.RunOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err)
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Status reconciler stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Status reconciler stop requested")
			return nil
		case <-s.clock.After(s.config.Interval):
		}
	}
}

func (s *statusReconciler) Stop(ctx context.Context) error {
	if !s.started.Load() {
		return nil
	}

	logger.InfoCtx(ctx, "Stopping status reconciler")
	s.stopOnce.Do(func() { close(s.stopChan) })

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Status reconciler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Status reconciler stop interrupted by context timeout")
		return ctx.Err()
	}
}

func (s *statusReconciler) RunOnce(ctx context.Context) (CycleStats, error) {
	var stats CycleStats
	startTime := s.clock.Now()

	ids, err := s.store.ListPendingTransactionIDs(ctx, startTime.Add(-s.config.StaleAfter), s.config.BatchSize)
	if err != nil {
		return stats, fmt.Errorf("failed to list pending transactions: %w", err)
	}
	metrics.ReconcilerCyclesTotal.Inc()
	if len(ids) == 0 {
		logger.DebugCtx(ctx, "No pending transactions to reconcile")
		return stats, nil
	}

	var updated, unchanged, failed atomic.Int32
	pool := pond.NewPool(s.config.WorkerPoolSize, pond.WithContext(ctx))
	for _, id := range ids {
		pool.Submit(func() {
			_, recorded, err := s.relay.Sync(ctx, id)
			switch {
			case err != nil:
				failed.Add(1)
				metrics.ReconcilerTransactionsTotal.WithLabelValues(metrics.ResultFailed).Inc()
				logger.WarnCtx(ctx, "Failed to reconcile transaction", zap.String("transactionId", id), zap.Error(err))
			case recorded:
				updated.Add(1)
				metrics.ReconcilerTransactionsTotal.WithLabelValues(metrics.ResultUpdated).Inc()
			default:
				unchanged.Add(1)
				metrics.ReconcilerTransactionsTotal.WithLabelValues(metrics.ResultUnchanged).Inc()
			}
		})
	}
	pool.StopAndWait()

	stats = CycleStats{
		Checked:   len(ids),
		Updated:   int(updated.Load()),
		Unchanged: int(unchanged.Load()),
		Failed:    int(failed.Load()),
	}

	duration := s.clock.Since(startTime)
	metrics.ReconcilerCycleDuration.Observe(duration.Seconds())
	logger.InfoCtx(ctx, "Reconciliation cycle completed",
		zap.Duration("duration", duration),
		zap.Int("checked", stats.Checked),
		zap.Int("updated", stats.Updated),
		zap.Int("unchanged", stats.Unchanged),
		zap.Int("failed", stats.Failed),
	)

	return stats, nil
}
