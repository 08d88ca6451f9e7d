package domain

import "errors"

var (
	// ErrProfileNotFound is returned when a mentor profile does not exist or was deleted
	ErrProfileNotFound = errors.New("mentor profile not found")

	// ErrTransactionNotFound is returned when no status rows exist for a transaction
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidCallData is returned when call data is not a registerMentorByRelayer call
	ErrInvalidCallData = errors.New("invalid call data")

	// ErrCallDataMismatch is returned when request fields disagree with the decoded call data
	ErrCallDataMismatch = errors.New("call data does not match request")

	// ErrDeadlineExceeded is returned when the signed deadline has already passed
	ErrDeadlineExceeded = errors.New("DeadlineExceeded")

	// ErrInvalidSignature is returned when the EIP-712 signature does not recover to the mentor address
	ErrInvalidSignature = errors.New("InvalidSignature")
)
