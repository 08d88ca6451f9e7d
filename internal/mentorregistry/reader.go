package mentorregistry

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/mentor-registry/mentor-relay/internal/adapter"
)

// Mentor is an on-chain registry entry
type Mentor struct {
	Username string
	Address  common.Address
	Exists   bool
}

// Reader defines the read-only registry calls to enable mocking
//
//go:generate mockgen -source=reader.go -destination=../mocks/registry_reader.go -package=mocks -mock_names=Reader=MockRegistryReader
type Reader interface {
	// GetNonce returns the current signature nonce of an address
	GetNonce(ctx context.Context, address common.Address) (*big.Int, error)
	// UsernameExists reports whether a username is already registered
	UsernameExists(ctx context.Context, username string) (bool, error)
	// GetMentorByAddress returns the registry entry of a mentor address
	GetMentorByAddress(ctx context.Context, address common.Address) (*Mentor, error)
}

type contractReader struct {
	client   adapter.EthClient
	contract common.Address
}

// NewReader creates a registry reader calling the contract through client
func NewReader(client adapter.EthClient, contract common.Address) Reader {
	return &contractReader{client: client, contract: contract}
}

func (r *contractReader) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := parsedABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	result, err := r.client.CallContract(ctx, ethereum.CallMsg{
		To:   &r.contract,
		Data: data,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call contract: %w", err)
	}

	out, err := parsedABI.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}
	return out, nil
}

// GetNonce calls getNonce(address)
func (r *contractReader) GetNonce(ctx context.Context, address common.Address) (*big.Int, error) {
	out, err := r.call(ctx, MethodGetNonce, address)
	if err != nil {
		return nil, err
	}
	nonce, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s result type %T", MethodGetNonce, out[0])
	}
	return nonce, nil
}

// UsernameExists calls usernameExists(string)
func (r *contractReader) UsernameExists(ctx context.Context, username string) (bool, error) {
	out, err := r.call(ctx, MethodUsernameExists, username)
	if err != nil {
		return false, err
	}
	exists, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected %s result type %T", MethodUsernameExists, out[0])
	}
	return exists, nil
}

// GetMentorByAddress calls getMentorByAddress(address)
func (r *contractReader) GetMentorByAddress(ctx context.Context, address common.Address) (*Mentor, error) {
	out, err := r.call(ctx, MethodGetMentorByAddress, address)
	if err != nil {
		return nil, err
	}
	if len(out) != 3 {
		return nil, fmt.Errorf("unexpected %s result length %d", MethodGetMentorByAddress, len(out))
	}

	username, ok1 := out[0].(string)
	addr, ok2 := out[1].(common.Address)
	exists, ok3 := out[2].(bool)
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("unexpected %s result types", MethodGetMentorByAddress)
	}
	return &Mentor{Username: username, Address: addr, Exists: exists}, nil
}
