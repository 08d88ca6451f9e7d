package jetstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/mentor-registry/mentor-relay/internal/adapter"
	"github.com/mentor-registry/mentor-relay/internal/logger"
	"github.com/mentor-registry/mentor-relay/internal/messaging"
	"github.com/mentor-registry/mentor-relay/internal/store/schema"
)

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	SubjectPrefix  string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc            adapter.NatsConn
	js            adapter.JetStream
	subjectPrefix string
}

// NewPublisher connects to NATS and ensures the status stream exists
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	prefix := strings.TrimSuffix(cfg.SubjectPrefix, ".")
	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{prefix + ".>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   7 * 24 * time.Hour,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{
		nc:            nc,
		js:            js,
		subjectPrefix: prefix,
	}, nil
}

// PublishStatus publishes a status row to <prefix>.<status>
func (p *publisher) PublishStatus(ctx context.Context, status *schema.TransactionStatus) error {
	data, err := json.Marshal(messaging.NewStatusEvent(status))
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	subject := p.buildSubject(status)
	logger.DebugCtx(ctx, "Publishing status event",
		zap.String("subject", subject),
		zap.String("transactionId", status.TransactionID))

	// Re-deliveries of the same row and status are deduplicated by the stream
	msgID := fmt.Sprintf("%s:%s:%d", status.ID, status.Status, status.EventTimestamp.UnixNano())
	if _, err := p.js.Publish(ctx, subject, data, jetstream.WithMsgID(msgID)); err != nil {
		return fmt.Errorf("failed to publish status event: %w", err)
	}

	return nil
}

// buildSubject constructs the NATS subject of a status row
func (p *publisher) buildSubject(status *schema.TransactionStatus) string {
	// Format: {prefix}.{status}, e.g. relayer.transactions.mined
	s := strings.ToLower(strings.TrimSpace(status.Status))
	if s == "" {
		s = "unknown"
	}
	return fmt.Sprintf("%s.%s", p.subjectPrefix, s)
}

// Close drains and closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	if err := p.nc.Drain(); err != nil {
		logger.Warn("Failed to drain NATS connection", zap.Error(err))
		p.nc.Close()
	}
}
