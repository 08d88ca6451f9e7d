package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mentor-registry/mentor-relay/internal/adapter"
	"github.com/mentor-registry/mentor-relay/internal/config"
	"github.com/mentor-registry/mentor-relay/internal/logger"
)

// ErrUnavailable is returned when Redis is down and the local fallback is disabled
var ErrUnavailable = errors.New("rate limiter unavailable")

// idleTTL is how long an unused local bucket survives before it is pruned
const idleTTL = 10 * time.Minute

// Decision is the outcome of a single rate limit check
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether a client may perform one more request
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit_limiter.go -package=mocks -mock_names=Limiter=MockRateLimiter
type Limiter interface {
	// Allow consumes one token for key and reports whether the request may proceed
	Allow(ctx context.Context, key string) (*Decision, error)

	// Close stops the health monitor and closes the Redis connection
	Close() error
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiter struct {
	config      config.RateLimitConfig
	redis       adapter.RedisClient
	distributed adapter.RedisRateLimiter
	clock       adapter.Clock
	localRate   rate.Limit

	mu    sync.Mutex
	local map[string]*localBucket

	redisAvailable atomic.Bool
	closed         atomic.Bool
	closeOnce      sync.Once
	done           chan struct{}
	wg             sync.WaitGroup
}

// NewLimiter creates a limiter backed by Redis. A nil RedisClient keeps every bucket in process.
func NewLimiter(cfg config.RateLimitConfig, rc adapter.RedisClient, clock adapter.Clock) (Limiter, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	perSecond := float64(cfg.RequestsPerMinute) / 60
	l := &limiter{
		config: cfg,
		redis:  rc,
		clock:  clock,
		local:  make(map[string]*localBucket),
		done:   make(chan struct{}),
	}

	if rc != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		redisAvailable := true
		if err := rc.Ping(ctx).Err(); err != nil {
			redisAvailable = false
			if !cfg.EnableLocalFallback {
				return nil, fmt.Errorf("redis unavailable and fallback disabled: %w", err)
			}
			logger.Warn("Redis unavailable, will use local fallback", zap.Error(err))
		}
		l.redisAvailable.Store(redisAvailable)
		l.distributed = rc.NewRateLimiter()

		// Every replica keeps its own fallback buckets, so each gets a share of the limit
		perSecond *= cfg.LocalFallbackMultiplier
	}
	l.localRate = rate.Limit(perSecond)

	l.wg.Add(1)
	go l.monitor()

	logger.Info("Rate limiter initialized",
		zap.Int("requests_per_minute", cfg.RequestsPerMinute),
		zap.Int("burst", cfg.Burst),
		zap.Bool("distributed", rc != nil),
		zap.Bool("local_fallback", cfg.EnableLocalFallback),
	)

	return l, nil
}

// Allow consumes one token for key
func (l *limiter) Allow(ctx context.Context, key string) (*Decision, error) {
	if l.closed.Load() {
		return nil, errors.New("rate limiter is closed")
	}

	if l.redis != nil {
		if l.redisAvailable.Load() {
			decision, err := l.allowDistributed(ctx, key)
			if err == nil {
				return decision, nil
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			l.redisAvailable.Store(false)
			if !l.config.EnableLocalFallback {
				return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
			}
			logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local", zap.Error(err))
		} else if !l.config.EnableLocalFallback {
			return nil, ErrUnavailable
		}
	}

	return l.allowLocal(key), nil
}

func (l *limiter) allowDistributed(ctx context.Context, key string) (*Decision, error) {
	res, err := l.distributed.Allow(ctx, l.config.RedisKeyPrefix+key, redis_rate.Limit{
		Rate:   l.config.RequestsPerMinute,
		Burst:  l.config.Burst,
		Period: time.Minute,
	})
	if err != nil {
		return nil, err
	}

	d := &Decision{Allowed: res.Allowed > 0, Remaining: res.Remaining}
	if !d.Allowed {
		d.RetryAfter = res.RetryAfter
		logger.DebugCtx(ctx, "Rate limit exceeded",
			zap.String("key", key),
			zap.Duration("retry_after", res.RetryAfter),
		)
	}
	return d, nil
}

func (l *limiter) allowLocal(key string) *Decision {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.local[key]
	if !ok {
		bucket = &localBucket{limiter: rate.NewLimiter(l.localRate, l.config.Burst)}
		l.local[key] = bucket
	}
	bucket.lastSeen = now

	if bucket.limiter.AllowN(now, 1) {
		return &Decision{Allowed: true, Remaining: int(bucket.limiter.TokensAt(now))}
	}

	r := bucket.limiter.ReserveN(now, 1)
	retryAfter := r.DelayFrom(now)
	r.CancelAt(now)
	return &Decision{Allowed: false, RetryAfter: retryAfter}
}

// monitor periodically pings Redis and prunes idle local buckets
func (l *limiter) monitor() {
	defer l.wg.Done()

	for {
		select {
		case <-l.done:
			return
		case <-l.clock.After(l.config.HealthCheckInterval):
		}

		l.pruneLocal()

		if l.redis == nil {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := l.redis.Ping(ctx).Err()
		cancel()

		available := err == nil
		if wasAvailable := l.redisAvailable.Swap(available); !wasAvailable && available {
			logger.Info("Redis connection restored")
		}
	}
}

func (l *limiter) pruneLocal() {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, bucket := range l.local {
		if now.Sub(bucket.lastSeen) > idleTTL {
			delete(l.local, key)
		}
	}
}

// Close stops the limiter
func (l *limiter) Close() error {
	var err error
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)
		l.wg.Wait()

		if l.redis != nil {
			if closeErr := l.redis.Close(); closeErr != nil {
				logger.Warn("Error closing Redis connection", zap.Error(closeErr))
				err = closeErr
			}
		}
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimitConfig) error {
	if cfg.RequestsPerMinute <= 0 {
		return errors.New("requests_per_minute must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}
	if cfg.RedisKeyPrefix == "" {
		cfg.RedisKeyPrefix = "mentor-relay:ratelimit:"
	}
	if cfg.LocalFallbackMultiplier <= 0 {
		cfg.LocalFallbackMultiplier = 0.5
	}
	if cfg.HealthCheckInterval <= 0 {
		cfg.HealthCheckInterval = 10 * time.Second
	}
	return nil
}
