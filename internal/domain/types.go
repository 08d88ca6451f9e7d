package domain

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// TransactionStatus is the relayer's lifecycle status of a transaction
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusSent      TransactionStatus = "sent"
	StatusSubmitted TransactionStatus = "submitted"
	StatusMined     TransactionStatus = "mined"
	StatusConfirmed TransactionStatus = "confirmed"
	StatusFailed    TransactionStatus = "failed"
	StatusCanceled  TransactionStatus = "canceled"
	StatusExpired   TransactionStatus = "expired"
)

// TerminalStatuses lists the statuses after which the relayer reports no further changes
var TerminalStatuses = []TransactionStatus{
	StatusConfirmed,
	StatusFailed,
	StatusCanceled,
	StatusExpired,
}

// IsTerminal reports whether the status is final
func (s TransactionStatus) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if strings.EqualFold(string(s), string(t)) {
			return true
		}
	}
	return false
}

// IsValid reports whether the status is one the relayer emits
func (s TransactionStatus) IsValid() bool {
	switch TransactionStatus(strings.ToLower(string(s))) {
	case StatusPending, StatusSent, StatusSubmitted, StatusMined,
		StatusConfirmed, StatusFailed, StatusCanceled, StatusExpired:
		return true
	}
	return false
}

var (
	usernameRegex = regexp.MustCompile(`^[a-z0-9_]+$`)
	walletRegex   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// IsValidUsername reports whether the username is snake_case (lowercase letters, digits, underscore)
func IsValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// IsValidWalletAddress reports whether the address is a 0x-prefixed 20 byte hex string
func IsValidWalletAddress(address string) bool {
	return walletRegex.MatchString(address)
}

// NormalizeAddress returns the EIP-55 checksummed form of a valid address
func NormalizeAddress(address string) string {
	if !common.IsHexAddress(address) {
		return address
	}
	return common.HexToAddress(address).Hex()
}

// SameAddress compares two addresses case-insensitively
func SameAddress(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
