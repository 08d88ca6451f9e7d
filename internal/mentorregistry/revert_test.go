package mentorregistry_test

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/mentor-registry/mentor-relay/internal/domain"
	"github.com/mentor-registry/mentor-relay/internal/mentorregistry"
)

func selector(sig string) string {
	return hexutil.Encode(crypto.Keccak256([]byte(sig))[:4])
}

func TestErrorSelector(t *testing.T) {
	assert.Equal(t, selector("AddressAlreadyExists()"), mentorregistry.ErrorSelector(mentorregistry.ErrorAddressAlreadyExists))
	assert.Equal(t, selector("UsernameAlreadyExists()"), mentorregistry.ErrorSelector(mentorregistry.ErrorUsernameAlreadyExists))
	assert.Empty(t, mentorregistry.ErrorSelector("NoSuchError"))
}

func TestTranslateRevert(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		expected string
	}{
		{
			name:     "address exists by name",
			msg:      "execution reverted: AddressAlreadyExists()",
			expected: "This mentor address is already registered",
		},
		{
			name:     "address exists by legacy selector",
			msg:      "execution reverted, data: 0x8baa579f",
			expected: "This mentor address is already registered",
		},
		{
			name:     "address exists by abi selector",
			msg:      "execution reverted, data: " + selector("AddressAlreadyExists()"),
			expected: "This mentor address is already registered",
		},
		{
			name:     "username taken",
			msg:      "reverted with custom error 'UsernameAlreadyExists()'",
			expected: "This username is already taken",
		},
		{
			name:     "username taken by selector",
			msg:      "revert data " + selector("UsernameAlreadyExists()"),
			expected: "This username is already taken",
		},
		{
			name:     "deadline exceeded",
			msg:      "DeadlineExceeded",
			expected: "Transaction deadline exceeded. Please try again",
		},
		{
			name:     "deadline exceeded by selector",
			msg:      "data=" + selector("DeadlineExceeded()"),
			expected: "Transaction deadline exceeded. Please try again",
		},
		{
			name:     "invalid signature",
			msg:      "execution reverted: InvalidSignature()",
			expected: "Invalid signature. Please try again",
		},
		{
			name:     "first match wins",
			msg:      "AddressAlreadyExists and UsernameAlreadyExists",
			expected: "This mentor address is already registered",
		},
		{
			name:     "unknown message passes through",
			msg:      "insufficient funds for gas",
			expected: "insufficient funds for gas",
		},
		{
			name:     "empty message",
			msg:      "  ",
			expected: "Failed to register mentor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mentorregistry.TranslateRevert(tt.msg))
		})
	}
}

func TestTranslateError(t *testing.T) {
	assert.Equal(t, "Failed to register mentor", mentorregistry.TranslateError(nil))
	assert.Equal(t, "Transaction deadline exceeded. Please try again", mentorregistry.TranslateError(domain.ErrDeadlineExceeded))
	assert.Equal(t, "Invalid signature. Please try again", mentorregistry.TranslateError(domain.ErrInvalidSignature))
	assert.Equal(t, "boom", mentorregistry.TranslateError(errors.New("boom")))
}
