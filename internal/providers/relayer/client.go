package relayer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mentor-registry/mentor-relay/internal/adapter"
)

// Client defines the interface for OpenZeppelin Relayer operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/relayer_client.go -package=mocks -mock_names=Client=MockRelayerClient
type Client interface {
	// SendTransaction submits a transaction to the relayer and returns its initial state
	SendTransaction(ctx context.Context, req SendTransactionRequest) (*Transaction, error)
	// GetTransaction fetches the current state of a relayer transaction
	GetTransaction(ctx context.Context, transactionID string) (*Transaction, error)
}

// RelayerClient implements Client over the relayer REST API
type RelayerClient struct {
	httpClient adapter.HTTPClient
	baseURL    string
	relayerID  string
	apiKey     string
}

// NewClient creates a new relayer client
func NewClient(httpClient adapter.HTTPClient, baseURL, relayerID, apiKey string) Client {
	return &RelayerClient{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		relayerID:  relayerID,
		apiKey:     apiKey,
	}
}

func (c *RelayerClient) transactionsURL() string {
	return fmt.Sprintf("%s/api/v1/relayers/%s/transactions", c.baseURL, url.PathEscape(c.relayerID))
}

func (c *RelayerClient) headers() map[string]string {
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}
	return headers
}

// SendTransaction submits a transaction to the relayer
func (c *RelayerClient) SendTransaction(ctx context.Context, req SendTransactionRequest) (*Transaction, error) {
	var resp apiResponse[*Transaction]
	if err := c.httpClient.PostJSON(ctx, c.transactionsURL(), c.headers(), req, &resp); err != nil {
		return nil, toAPIError("failed to send transaction", err)
	}

	tx, err := unwrap(resp)
	if err != nil {
		return nil, err
	}
	if tx.ID == "" {
		return nil, &APIError{Message: "relayer returned a transaction without id"}
	}
	return tx, nil
}

// GetTransaction fetches the current state of a relayer transaction
func (c *RelayerClient) GetTransaction(ctx context.Context, transactionID string) (*Transaction, error) {
	if transactionID == "" {
		return nil, errors.New("transaction id is required")
	}

	var resp apiResponse[*Transaction]
	endpoint := c.transactionsURL() + "/" + url.PathEscape(transactionID)
	if err := c.httpClient.GetJSON(ctx, endpoint, c.headers(), &resp); err != nil {
		return nil, toAPIError("failed to get transaction", err)
	}

	return unwrap(resp)
}

func unwrap(resp apiResponse[*Transaction]) (*Transaction, error) {
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = "relayer request was not successful"
		}
		return nil, &APIError{Message: msg}
	}
	if resp.Data == nil {
		return nil, &APIError{Message: "relayer returned no transaction"}
	}
	return resp.Data, nil
}

// toAPIError extracts the relayer error message from a failed HTTP call
func toAPIError(action string, err error) error {
	var httpErr *adapter.HTTPError
	if !errors.As(err, &httpErr) {
		return fmt.Errorf("%s: %w", action, err)
	}

	msg := strings.TrimSpace(string(httpErr.Body))
	var body apiResponse[json.RawMessage]
	if jerr := json.Unmarshal(httpErr.Body, &body); jerr == nil && body.Error != "" {
		msg = body.Error
	}
	if msg == "" {
		msg = action
	}
	return &APIError{StatusCode: httpErr.StatusCode, Message: msg}
}
