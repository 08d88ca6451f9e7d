package relayer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Speed is the relayer gas price strategy
type Speed string

const (
	SpeedSafeLow Speed = "safeLow"
	SpeedAverage Speed = "average"
	SpeedFast    Speed = "fast"
	SpeedFastest Speed = "fastest"
)

// NumericString accepts both JSON strings and JSON numbers, the relayer uses either for big integers
type NumericString string

// UnmarshalJSON implements json.Unmarshaler
func (n *NumericString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("invalid numeric value %s: %w", string(data), err)
	}
	*n = NumericString(num.String())
	return nil
}

// FlexInt accepts a JSON number or a decimal string
type FlexInt int64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var s NumericString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	v, err := strconv.ParseInt(string(s), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value %q: %w", string(s), err)
	}
	*f = FlexInt(v)
	return nil
}

// Transaction is an EVM transaction as reported by the relayer API and webhooks
type Transaction struct {
	PayloadType          string         `json:"payload_type,omitempty"`
	ID                   string         `json:"id"`
	Hash                 *string        `json:"hash"`
	Status               string         `json:"status"`
	StatusReason         *string        `json:"status_reason"`
	CreatedAt            *string        `json:"created_at"`
	SentAt               *string        `json:"sent_at"`
	ConfirmedAt          *string        `json:"confirmed_at"`
	GasPrice             *NumericString `json:"gas_price"`
	GasLimit             *FlexInt       `json:"gas_limit"`
	Nonce                *FlexInt       `json:"nonce"`
	Value                *NumericString `json:"value"`
	From                 *string        `json:"from"`
	To                   *string        `json:"to"`
	RelayerID            *string        `json:"relayer_id"`
	Data                 *string        `json:"data"`
	MaxFeePerGas         *NumericString `json:"max_fee_per_gas"`
	MaxPriorityFeePerGas *NumericString `json:"max_priority_fee_per_gas"`
	Speed                *string        `json:"speed"`
}

// HasHash reports whether the relayer already assigned an on-chain hash
func (t *Transaction) HasHash() bool {
	return t != nil && t.Hash != nil && *t.Hash != ""
}

// SendTransactionRequest is the body of POST /api/v1/relayers/{id}/transactions
type SendTransactionRequest struct {
	To       string `json:"to"`
	Data     string `json:"data"`
	Value    uint64 `json:"value"`
	GasLimit uint64 `json:"gas_limit"`
	Speed    Speed  `json:"speed"`
}

// apiResponse is the envelope of every relayer API response
type apiResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

// APIError is returned when the relayer answers with an error
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("relayer error (status %d): %s", e.StatusCode, e.Message)
}
