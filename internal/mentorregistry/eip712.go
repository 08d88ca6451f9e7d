package mentorregistry

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const (
	DomainName    = "MentorRegistry"
	DomainVersion = "1"

	PrimaryTypeMentorRegister = "MentorRegister"
)

// MentorRegister is the message a mentor signs to authorize a relayed registration
type MentorRegister struct {
	Username       string
	CreatorAddress common.Address
	Nonce          *big.Int
	Deadline       *big.Int
}

var typedDataTypes = apitypes.Types{
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
	PrimaryTypeMentorRegister: {
		{Name: "username", Type: "string"},
		{Name: "creatorAddress", Type: "address"},
		{Name: "nonce", Type: "uint256"},
		{Name: "deadline", Type: "uint256"},
	},
}

// Domain returns the registry EIP-712 domain for a chain and contract
func Domain(chainID int64, verifyingContract common.Address) apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              DomainName,
		Version:           DomainVersion,
		ChainId:           math.NewHexOrDecimal256(chainID),
		VerifyingContract: verifyingContract.Hex(),
	}
}

// TypedData builds the EIP-712 typed data of a MentorRegister message
func TypedData(chainID int64, verifyingContract common.Address, msg MentorRegister) apitypes.TypedData {
	nonce := msg.Nonce
	if nonce == nil {
		nonce = new(big.Int)
	}
	deadline := msg.Deadline
	if deadline == nil {
		deadline = new(big.Int)
	}

	return apitypes.TypedData{
		Types:       typedDataTypes,
		PrimaryType: PrimaryTypeMentorRegister,
		Domain:      Domain(chainID, verifyingContract),
		Message: apitypes.TypedDataMessage{
			"username":       msg.Username,
			"creatorAddress": msg.CreatorAddress.Hex(),
			"nonce":          nonce.String(),
			"deadline":       deadline.String(),
		},
	}
}

// HashMentorRegister returns the EIP-712 digest to be signed
func HashMentorRegister(chainID int64, verifyingContract common.Address, msg MentorRegister) ([]byte, error) {
	hash, _, err := apitypes.TypedDataAndHash(TypedData(chainID, verifyingContract, msg))
	if err != nil {
		return nil, fmt.Errorf("failed to hash typed data: %w", err)
	}
	return hash, nil
}

// RecoverSigner recovers the address that produced a 65-byte signature over hash
func RecoverSigner(hash []byte, sig []byte) (common.Address, error) {
	if len(sig) != 65 {
		return common.Address{}, fmt.Errorf("invalid signature length: %d", len(sig))
	}

	normalized := make([]byte, 65)
	copy(normalized, sig)
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}

	pub, err := crypto.SigToPub(hash, normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}
