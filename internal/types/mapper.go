package types

import (
	"time"

	"gorm.io/datatypes"

	"github.com/mentor-registry/mentor-relay/internal/providers/relayer"
	"github.com/mentor-registry/mentor-relay/internal/store/schema"
)

// RelayerTransactionToStatus converts a relayer transaction into a status row.
// created_at falls back to eventTime when the relayer did not report it.
func RelayerTransactionToStatus(id, source string, tx *relayer.Transaction, eventTime time.Time, raw []byte) *schema.TransactionStatus {
	createdAt := eventTime
	if parsed := ParseTimestamp(tx.CreatedAt); parsed != nil {
		createdAt = *parsed
	}

	row := &schema.TransactionStatus{
		ID:                   id,
		TransactionID:        tx.ID,
		Status:               tx.Status,
		CreatedAt:            createdAt,
		SentAt:               ParseTimestamp(tx.SentAt),
		ConfirmedAt:          ParseTimestamp(tx.ConfirmedAt),
		GasPrice:             numericPtr(tx.GasPrice),
		Value:                numericPtr(tx.Value),
		From:                 tx.From,
		To:                   tx.To,
		RelayerID:            tx.RelayerID,
		Data:                 tx.Data,
		MaxFeePerGas:         numericPtr(tx.MaxFeePerGas),
		MaxPriorityFeePerGas: numericPtr(tx.MaxPriorityFeePerGas),
		Speed:                tx.Speed,
		StatusReason:         tx.StatusReason,
		EventTimestamp:       eventTime,
		Source:               source,
	}
	if tx.HasHash() {
		row.Hash = tx.Hash
	}
	if tx.GasLimit != nil {
		v := int64(*tx.GasLimit)
		row.GasLimit = &v
	}
	if tx.Nonce != nil {
		v := int64(*tx.Nonce)
		row.Nonce = &v
	}
	if len(raw) > 0 {
		row.Raw = datatypes.JSON(raw)
	}

	return row
}

func numericPtr(n *relayer.NumericString) *string {
	if n == nil {
		return nil
	}
	s := string(*n)
	return &s
}
