package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/mentor-registry/mentor-relay/internal/adapter"
	"github.com/mentor-registry/mentor-relay/internal/api/middleware"
	"github.com/mentor-registry/mentor-relay/internal/api/server"
	"github.com/mentor-registry/mentor-relay/internal/api/shared/executor"
	"github.com/mentor-registry/mentor-relay/internal/config"
	"github.com/mentor-registry/mentor-relay/internal/logger"
	"github.com/mentor-registry/mentor-relay/internal/mentorregistry"
	"github.com/mentor-registry/mentor-relay/internal/messaging"
	"github.com/mentor-registry/mentor-relay/internal/providers/jetstream"
	"github.com/mentor-registry/mentor-relay/internal/providers/relayer"
	"github.com/mentor-registry/mentor-relay/internal/ratelimit"
	"github.com/mentor-registry/mentor-relay/internal/registry"
	"github.com/mentor-registry/mentor-relay/internal/relay"
	"github.com/mentor-registry/mentor-relay/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "mentor-relay-api",
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting mentor relay API")

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
	logger.InfoCtx(ctx, "Connected to database", zap.String("driver", cfg.Database.Driver))
	dataStore := store.NewStore(db)

	clock := adapter.NewClock()

	// Status events are optional
	var publisher messaging.Publisher = messaging.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: "mentor-relay-api",
		}, adapter.NewNatsJetStream())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Publishing status events", zap.String("stream", cfg.NATS.StreamName))
	}
	defer publisher.Close()

	relayerClient := relayer.NewClient(adapter.NewHTTPClient(cfg.Relayer.Timeout), cfg.Relayer.URL, cfg.Relayer.RelayerID, cfg.Relayer.APIKey)
	submitter := relay.New(relay.Config{
		RegistryAddress: cfg.Registry.Address,
		GasLimit:        cfg.Relayer.GasLimit,
		Speed:           relayer.Speed(cfg.Relayer.Speed),
		PollAttempts:    cfg.Relayer.PollAttempts,
		PollBaseDelay:   cfg.Relayer.PollBaseDelay,
	}, relayerClient, dataStore, publisher, clock)

	// Registration pre-checks against the contract
	var verifier mentorregistry.Verifier
	if cfg.Registry.VerifySignatures {
		ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Registry.RPCURL)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to Ethereum RPC", zap.Error(err))
		}
		defer ethClient.Close()

		contract := common.HexToAddress(cfg.Registry.Address)
		verifier = mentorregistry.NewVerifier(mentorregistry.NewReader(ethClient, contract), clock, cfg.Registry.ChainID, contract)
		logger.InfoCtx(ctx, "Registration signature verification enabled",
			zap.Int64("chain_id", cfg.Registry.ChainID),
			zap.String("contract", contract.Hex()))
	}

	var denylist registry.Denylist
	if cfg.Registry.DenylistPath != "" {
		denylist, err = registry.LoadDenylist(cfg.Registry.DenylistPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load denylist", zap.Error(err), zap.String("path", cfg.Registry.DenylistPath))
		}
	}

	exec := executor.NewExecutor(executor.Config{
		WebhookSigningKey: cfg.Relayer.WebhookSigningKey,
		Denylist:          denylist,
	}, dataStore, submitter, publisher, verifier, clock)
	if cfg.Relayer.WebhookSigningKey == "" {
		logger.WarnCtx(ctx, "Webhook signing key not configured, relayer webhooks are not authenticated")
	}

	// Per-client throttling of relayed registrations
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		var rc adapter.RedisClient
		if cfg.RateLimit.RedisAddr != "" {
			rc = adapter.NewRedisClient(cfg.RateLimit.RedisAddr, cfg.RateLimit.RedisPassword, cfg.RateLimit.RedisDB)
		}
		limiter, err = ratelimit.NewLimiter(cfg.RateLimit, rc, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
		defer func() {
			if err := limiter.Close(); err != nil {
				logger.Error(err, zap.String("component", "ratelimit"))
			}
		}()
	}

	srv, err := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}, exec, limiter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create server", zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.InfoCtx(ctx, "Shutting down")

		// Don't use the canceled context for the shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
	}
	logger.Info("API server stopped")
}
