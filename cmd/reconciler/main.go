package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mentor-registry/mentor-relay/internal/adapter"
	"github.com/mentor-registry/mentor-relay/internal/config"
	"github.com/mentor-registry/mentor-relay/internal/logger"
	"github.com/mentor-registry/mentor-relay/internal/messaging"
	"github.com/mentor-registry/mentor-relay/internal/providers/jetstream"
	"github.com/mentor-registry/mentor-relay/internal/providers/relayer"
	"github.com/mentor-registry/mentor-relay/internal/reconciler"
	"github.com/mentor-registry/mentor-relay/internal/relay"
	"github.com/mentor-registry/mentor-relay/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	once       = flag.Bool("once", false, "Run a single reconciliation cycle and exit")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadReconcilerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "mentor-relay-reconciler",
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting status reconciler")

	// Connect to database
	db, err := store.Open(cfg.Database, cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	defer func() {
		if err := store.Close(db); err != nil {
			logger.Error(err)
		}
	}()
	dataStore := store.NewStore(db)

	clock := adapter.NewClock()

	var publisher messaging.Publisher = messaging.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: "mentor-relay-reconciler",
		}, adapter.NewNatsJetStream())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
	}
	defer publisher.Close()

	relayerClient := relayer.NewClient(adapter.NewHTTPClient(cfg.Relayer.Timeout), cfg.Relayer.URL, cfg.Relayer.RelayerID, cfg.Relayer.APIKey)
	syncer := relay.New(relay.Config{}, relayerClient, dataStore, publisher, clock)

	statusReconciler := reconciler.New(reconciler.Config{
		Interval:       cfg.Reconciler.Interval,
		BatchSize:      cfg.Reconciler.BatchSize,
		WorkerPoolSize: cfg.Reconciler.Worker.WorkerPoolSize,
		StaleAfter:     cfg.Reconciler.StaleAfter,
	}, dataStore, syncer, clock)

	logger.InfoCtx(ctx, "Initialized status reconciler",
		zap.Duration("interval", cfg.Reconciler.Interval),
		zap.Int("batch_size", cfg.Reconciler.BatchSize),
		zap.Int("worker_pool_size", cfg.Reconciler.Worker.WorkerPoolSize),
		zap.Duration("stale_after", cfg.Reconciler.StaleAfter),
	)

	if *once {
		stats, err := statusReconciler.RunOnce(ctx)
		if err != nil {
			logger.FatalCtx(ctx, "Reconciliation cycle failed", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Reconciliation cycle finished",
			zap.Int("checked", stats.Checked),
			zap.Int("updated", stats.Updated),
			zap.Int("failed", stats.Failed))
		return
	}

	// Start the reconciler in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := statusReconciler.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the reconciler
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := statusReconciler.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Reconciler stopped")
}
