package mentorregistry

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/mentor-registry/mentor-relay/internal/adapter"
	"github.com/mentor-registry/mentor-relay/internal/domain"
)

var (
	// ErrAddressAlreadyExists mirrors the contract error of the same name
	ErrAddressAlreadyExists = errors.New(ErrorAddressAlreadyExists)
	// ErrUsernameAlreadyExists mirrors the contract error of the same name
	ErrUsernameAlreadyExists = errors.New(ErrorUsernameAlreadyExists)
)

// Verifier runs the contract's registration checks before a call is relayed
//
//go:generate mockgen -source=verifier.go -destination=../mocks/registry_verifier.go -package=mocks -mock_names=Verifier=MockRegistryVerifier
type Verifier interface {
	// VerifyRegistration returns a domain error when the relayed call would revert
	VerifyRegistration(ctx context.Context, call *RegisterCall) error
}

type verifier struct {
	reader   Reader
	clock    adapter.Clock
	chainID  int64
	contract common.Address
}

// NewVerifier creates a verifier for the registry deployed at contract on chainID
func NewVerifier(reader Reader, clock adapter.Clock, chainID int64, contract common.Address) Verifier {
	return &verifier{
		reader:   reader,
		clock:    clock,
		chainID:  chainID,
		contract: contract,
	}
}

// VerifyRegistration checks the deadline, uniqueness and the EIP-712 signature against the on-chain nonce
func (v *verifier) VerifyRegistration(ctx context.Context, call *RegisterCall) error {
	if call.Deadline == nil || call.Deadline.Cmp(big.NewInt(v.clock.Now().Unix())) <= 0 {
		return domain.ErrDeadlineExceeded
	}

	exists, err := v.reader.UsernameExists(ctx, call.Username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return ErrUsernameAlreadyExists
	}

	mentor, err := v.reader.GetMentorByAddress(ctx, call.MentorAddress)
	if err != nil {
		return fmt.Errorf("failed to check mentor address: %w", err)
	}
	if mentor != nil && mentor.Exists {
		return ErrAddressAlreadyExists
	}

	nonce, err := v.reader.GetNonce(ctx, call.MentorAddress)
	if err != nil {
		return fmt.Errorf("failed to get nonce: %w", err)
	}

	hash, err := HashMentorRegister(v.chainID, v.contract, MentorRegister{
		Username:       call.Username,
		CreatorAddress: call.MentorAddress,
		Nonce:          nonce,
		Deadline:       call.Deadline,
	})
	if err != nil {
		return err
	}

	signer, err := RecoverSigner(hash, call.Signature())
	if err != nil || signer != call.MentorAddress {
		return domain.ErrInvalidSignature
	}

	return nil
}
