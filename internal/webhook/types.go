package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mentor-registry/mentor-relay/internal/domain"
	"github.com/mentor-registry/mentor-relay/internal/providers/relayer"
	"github.com/mentor-registry/mentor-relay/internal/store/schema"
	"github.com/mentor-registry/mentor-relay/internal/types"
)

// SignatureHeader carries the base64 HMAC-SHA256 of the raw request body
const SignatureHeader = "X-Signature"

// ErrUnsupportedEvent is returned for deliveries that carry no transaction update
var ErrUnsupportedEvent = errors.New("unsupported webhook event")

// Event is a relayer webhook delivery
type Event struct {
	// ID is unique per delivery and used as the status row id
	ID string `json:"id"`
	// Event is the event name, only "transaction_update" is processed
	Event string `json:"event"`
	// Payload is the relayer transaction at the time of the event
	Payload json.RawMessage `json:"payload"`
	// Timestamp is the RFC 3339 time of the event
	Timestamp *string `json:"timestamp"`
}

// Parse decodes a raw webhook body
func Parse(body []byte) (*Event, error) {
	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to parse webhook body: %w", err)
	}
	return &event, nil
}

// IsTransactionUpdate reports whether the event carries a transaction update to store
func (e *Event) IsTransactionUpdate() bool {
	return e.Event == domain.EventTransactionUpdate && len(e.Payload) > 0 && string(e.Payload) != "null"
}

// ToStatus converts a transaction update into a status row.
// The event timestamp falls back to now when missing or unparseable.
func (e *Event) ToStatus(now time.Time) (*schema.TransactionStatus, error) {
	if !e.IsTransactionUpdate() {
		return nil, ErrUnsupportedEvent
	}
	if e.ID == "" {
		return nil, errors.New("webhook event id is required")
	}

	var tx relayer.Transaction
	if err := json.Unmarshal(e.Payload, &tx); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	if tx.ID == "" {
		return nil, errors.New("webhook payload transaction id is required")
	}

	eventTime := now.UTC()
	if parsed := types.ParseTimestamp(e.Timestamp); parsed != nil {
		eventTime = *parsed
	}

	return types.RelayerTransactionToStatus(e.ID, domain.SourceWebhook, &tx, eventTime, e.Payload), nil
}
