package mentorregistry

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/mentor-registry/mentor-relay/internal/domain"
)

// RegisterCall holds the decoded arguments of registerMentorByRelayer
type RegisterCall struct {
	Username      string
	MentorAddress common.Address
	Deadline      *big.Int
	V             uint8
	R             [32]byte
	S             [32]byte
}

// Signature returns the 65-byte r || s || v signature
func (c *RegisterCall) Signature() []byte {
	sig := make([]byte, 0, 65)
	sig = append(sig, c.R[:]...)
	sig = append(sig, c.S[:]...)
	return append(sig, c.V)
}

// DecodeRegisterCall decodes hex call data of registerMentorByRelayer
func DecodeRegisterCall(data string) (*RegisterCall, error) {
	raw, err := hexutil.Decode(strings.TrimSpace(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCallData, err)
	}

	method := parsedABI.Methods[MethodRegisterMentorByRelayer]
	if len(raw) < 4 || !bytes.Equal(raw[:4], method.ID) {
		return nil, fmt.Errorf("%w: not a %s call", domain.ErrInvalidCallData, MethodRegisterMentorByRelayer)
	}

	args, err := method.Inputs.Unpack(raw[4:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCallData, err)
	}
	if len(args) != 6 {
		return nil, fmt.Errorf("%w: expected 6 arguments, got %d", domain.ErrInvalidCallData, len(args))
	}

	call := &RegisterCall{}
	var ok bool
	if call.Username, ok = args[0].(string); !ok {
		return nil, fmt.Errorf("%w: invalid username argument", domain.ErrInvalidCallData)
	}
	if call.MentorAddress, ok = args[1].(common.Address); !ok {
		return nil, fmt.Errorf("%w: invalid mentor address argument", domain.ErrInvalidCallData)
	}
	if call.Deadline, ok = args[2].(*big.Int); !ok {
		return nil, fmt.Errorf("%w: invalid deadline argument", domain.ErrInvalidCallData)
	}
	if call.V, ok = args[3].(uint8); !ok {
		return nil, fmt.Errorf("%w: invalid v argument", domain.ErrInvalidCallData)
	}
	if call.R, ok = args[4].([32]byte); !ok {
		return nil, fmt.Errorf("%w: invalid r argument", domain.ErrInvalidCallData)
	}
	if call.S, ok = args[5].([32]byte); !ok {
		return nil, fmt.Errorf("%w: invalid s argument", domain.ErrInvalidCallData)
	}

	return call, nil
}

// EncodeRegisterCall encodes a registerMentorByRelayer call as 0x-prefixed hex
func EncodeRegisterCall(call *RegisterCall) (string, error) {
	deadline := call.Deadline
	if deadline == nil {
		deadline = new(big.Int)
	}
	data, err := parsedABI.Pack(MethodRegisterMentorByRelayer,
		call.Username, call.MentorAddress, deadline, call.V, call.R, call.S)
	if err != nil {
		return "", fmt.Errorf("failed to pack %s: %w", MethodRegisterMentorByRelayer, err)
	}
	return hexutil.Encode(data), nil
}

// SplitSignature splits a 65-byte signature into v, r and s, normalizing v to 27/28
func SplitSignature(sig []byte) (uint8, [32]byte, [32]byte, error) {
	var r, s [32]byte
	if len(sig) != 65 {
		return 0, r, s, fmt.Errorf("invalid signature length: %d", len(sig))
	}
	copy(r[:], sig[:32])
	copy(s[:], sig[32:64])
	v := sig[64]
	if v < 27 {
		v += 27
	}
	return v, r, s, nil
}
