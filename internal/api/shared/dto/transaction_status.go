package dto

import (
	"github.com/mentor-registry/mentor-relay/internal/store/schema"
	"github.com/mentor-registry/mentor-relay/internal/types"
)

// TransactionStatus is a status row as returned by the API, timestamps in RFC 3339
type TransactionStatus struct {
	ID                   string  `json:"id"`
	TransactionID        string  `json:"transactionId"`
	Hash                 *string `json:"hash"`
	Status               string  `json:"status"`
	CreatedAt            *string `json:"createdAt"`
	SentAt               *string `json:"sentAt"`
	ConfirmedAt          *string `json:"confirmedAt"`
	GasPrice             *string `json:"gasPrice"`
	GasLimit             *int64  `json:"gasLimit"`
	Nonce                *int64  `json:"nonce"`
	Value                *string `json:"value"`
	From                 *string `json:"from"`
	To                   *string `json:"to"`
	RelayerID            *string `json:"relayerId"`
	Data                 *string `json:"data"`
	MaxFeePerGas         *string `json:"maxFeePerGas"`
	MaxPriorityFeePerGas *string `json:"maxPriorityFeePerGas"`
	Speed                *string `json:"speed"`
	StatusReason         *string `json:"statusReason"`
	EventTimestamp       *string `json:"eventTimestamp"`
	Source               string  `json:"source"`
}

// TransactionStatusResponse is the body of GET /api/transaction/status
type TransactionStatusResponse struct {
	Success bool                `json:"success"`
	Latest  *TransactionStatus  `json:"latest"`
	History []TransactionStatus `json:"history"`
	Count   int                 `json:"count"`
}

// SyncTransactionResponse is the body of POST /api/admin/transactions/:transactionId/sync
type SyncTransactionResponse struct {
	Success  bool               `json:"success"`
	Recorded bool               `json:"recorded"`
	Latest   *TransactionStatus `json:"latest"`
}

// MapTransactionStatusToDTO maps a status row to its API representation
func MapTransactionStatusToDTO(row *schema.TransactionStatus) *TransactionStatus {
	if row == nil {
		return nil
	}

	createdAt := row.CreatedAt
	eventTimestamp := row.EventTimestamp
	return &TransactionStatus{
		ID:                   row.ID,
		TransactionID:        row.TransactionID,
		Hash:                 row.Hash,
		Status:               row.Status,
		CreatedAt:            types.FormatTimestamp(&createdAt),
		SentAt:               types.FormatTimestamp(row.SentAt),
		ConfirmedAt:          types.FormatTimestamp(row.ConfirmedAt),
		GasPrice:             row.GasPrice,
		GasLimit:             row.GasLimit,
		Nonce:                row.Nonce,
		Value:                row.Value,
		From:                 row.From,
		To:                   row.To,
		RelayerID:            row.RelayerID,
		Data:                 row.Data,
		MaxFeePerGas:         row.MaxFeePerGas,
		MaxPriorityFeePerGas: row.MaxPriorityFeePerGas,
		Speed:                row.Speed,
		StatusReason:         row.StatusReason,
		EventTimestamp:       types.FormatTimestamp(&eventTimestamp),
		Source:               row.Source,
	}
}

// NewTransactionStatusResponse builds the status response from rows ordered most recent first
func NewTransactionStatusResponse(rows []schema.TransactionStatus) *TransactionStatusResponse {
	resp := &TransactionStatusResponse{
		Success: true,
		History: make([]TransactionStatus, 0, len(rows)),
		Count:   len(rows),
	}
	for i := range rows {
		resp.History = append(resp.History, *MapTransactionStatusToDTO(&rows[i]))
	}
	if len(resp.History) > 0 {
		latest := resp.History[0]
		resp.Latest = &latest
	}
	return resp
}
