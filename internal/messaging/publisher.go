package messaging

import (
	"context"
	"time"

	"github.com/mentor-registry/mentor-relay/internal/store/schema"
	"github.com/mentor-registry/mentor-relay/internal/types"
)

// Publisher defines the interface for publishing transaction status updates to a message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishStatus publishes a stored transaction status row
	PublishStatus(ctx context.Context, status *schema.TransactionStatus) error
	// Close closes the connection
	Close()
}

// StatusEvent is the message published for every stored status row
type StatusEvent struct {
	ID             string    `json:"id"`
	TransactionID  string    `json:"transactionId"`
	Hash           *string   `json:"hash"`
	Status         string    `json:"status"`
	StatusReason   *string   `json:"statusReason"`
	Source         string    `json:"source"`
	SentAt         *string   `json:"sentAt"`
	ConfirmedAt    *string   `json:"confirmedAt"`
	EventTimestamp time.Time `json:"eventTimestamp"`
}

// NewStatusEvent builds the published message of a status row
func NewStatusEvent(status *schema.TransactionStatus) StatusEvent {
	return StatusEvent{
		ID:             status.ID,
		TransactionID:  status.TransactionID,
		Hash:           status.Hash,
		Status:         status.Status,
		StatusReason:   status.StatusReason,
		Source:         status.Source,
		SentAt:         types.FormatTimestamp(status.SentAt),
		ConfirmedAt:    types.FormatTimestamp(status.ConfirmedAt),
		EventTimestamp: status.EventTimestamp.UTC(),
	}
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every message, used when no broker is configured
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishStatus(context.Context, *schema.TransactionStatus) error { return nil }

func (noopPublisher) Close() {}
