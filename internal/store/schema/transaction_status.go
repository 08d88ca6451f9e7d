package schema

import (
	"time"

	"gorm.io/datatypes"
)

// TransactionStatus represents the transaction_statuses table - one row per relayer status event
type TransactionStatus struct {
	// ID is the webhook event id, or a synthetic id for rows recorded by submission and reconciliation
	ID string `gorm:"column:id;primaryKey;type:varchar(255)"`
	// TransactionID is the relayer-assigned transaction id
	TransactionID string `gorm:"column:transaction_id;not null;index:idx_transaction_statuses_transaction_id"`
	// Hash is the on-chain transaction hash, null until the relayer has sent the transaction
	Hash *string `gorm:"column:hash;index:idx_transaction_statuses_hash"`
	// Status is the relayer status (pending, sent, submitted, mined, confirmed, failed, canceled, expired)
	Status string `gorm:"column:status;not null;index:idx_transaction_statuses_status"`
	// CreatedAt is the relayer creation time of the transaction
	CreatedAt time.Time  `gorm:"column:created_at;not null;autoCreateTime:false"`
	SentAt    *time.Time `gorm:"column:sent_at"`
	// ConfirmedAt is set once the transaction reached the required confirmations
	ConfirmedAt          *time.Time `gorm:"column:confirmed_at"`
	GasPrice             *string    `gorm:"column:gas_price"`
	GasLimit             *int64     `gorm:"column:gas_limit"`
	Nonce                *int64     `gorm:"column:nonce"`
	Value                *string    `gorm:"column:value"`
	From                 *string    `gorm:"column:from_address"`
	To                   *string    `gorm:"column:to_address"`
	RelayerID            *string    `gorm:"column:relayer_id"`
	Data                 *string    `gorm:"column:data;type:text"`
	MaxFeePerGas         *string    `gorm:"column:max_fee_per_gas"`
	MaxPriorityFeePerGas *string    `gorm:"column:max_priority_fee_per_gas"`
	Speed                *string    `gorm:"column:speed"`
	StatusReason         *string    `gorm:"column:status_reason;type:text"`
	// EventTimestamp is the time of the status event and orders the history of a transaction
	EventTimestamp time.Time `gorm:"column:event_timestamp;not null;index:idx_transaction_statuses_event_timestamp"`
	// Source records which path produced the row: webhook, submission or reconciler
	Source string `gorm:"column:source;not null;type:varchar(32)"`
	// Raw is the relayer payload the row was built from
	Raw datatypes.JSON `gorm:"column:raw"`
}

// TableName specifies the table name for the TransactionStatus model
func (TransactionStatus) TableName() string {
	return "transaction_statuses"
}
