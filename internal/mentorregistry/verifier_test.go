package mentorregistry_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentor-registry/mentor-relay/internal/domain"
	"github.com/mentor-registry/mentor-relay/internal/mentorregistry"
	"github.com/mentor-registry/mentor-relay/internal/mocks"
)

func TestVerifier_VerifyRegistration(t *testing.T) {
	now := time.Unix(1_800_000_000, 0)
	deadline := now.Add(10 * time.Minute).Unix()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	mentor := crypto.PubkeyToAddress(key.PublicKey)

	tests := []struct {
		name     string
		call     func(t *testing.T) *mentorregistry.RegisterCall
		setup    func(reader *mocks.MockRegistryReader)
		expected error
	}{
		{
			name: "valid registration",
			call: func(t *testing.T) *mentorregistry.RegisterCall {
				return signedRegisterCall(t, key, "alice", 2, deadline)
			},
			setup: func(reader *mocks.MockRegistryReader) {
				reader.EXPECT().UsernameExists(gomock.Any(), "alice").Return(false, nil)
				reader.EXPECT().GetMentorByAddress(gomock.Any(), mentor).Return(&mentorregistry.Mentor{}, nil)
				reader.EXPECT().GetNonce(gomock.Any(), mentor).Return(big.NewInt(2), nil)
			},
		},
		{
			name: "deadline in the past",
			call: func(t *testing.T) *mentorregistry.RegisterCall {
				return signedRegisterCall(t, key, "alice", 2, now.Add(-time.Second).Unix())
			},
			setup:    func(reader *mocks.MockRegistryReader) {},
			expected: domain.ErrDeadlineExceeded,
		},
		{
			name: "deadline equal to now",
			call: func(t *testing.T) *mentorregistry.RegisterCall {
				return signedRegisterCall(t, key, "alice", 2, now.Unix())
			},
			setup:    func(reader *mocks.MockRegistryReader) {},
			expected: domain.ErrDeadlineExceeded,
		},
		{
			name: "username taken",
			call: func(t *testing.T) *mentorregistry.RegisterCall {
				return signedRegisterCall(t, key, "alice", 2, deadline)
			},
			setup: func(reader *mocks.MockRegistryReader) {
				reader.EXPECT().UsernameExists(gomock.Any(), "alice").Return(true, nil)
			},
			expected: mentorregistry.ErrUsernameAlreadyExists,
		},
		{
			name: "address registered",
			call: func(t *testing.T) *mentorregistry.RegisterCall {
				return signedRegisterCall(t, key, "alice", 2, deadline)
			},
			setup: func(reader *mocks.MockRegistryReader) {
				reader.EXPECT().UsernameExists(gomock.Any(), "alice").Return(false, nil)
				reader.EXPECT().GetMentorByAddress(gomock.Any(), mentor).Return(&mentorregistry.Mentor{Username: "old", Address: mentor, Exists: true}, nil)
			},
			expected: mentorregistry.ErrAddressAlreadyExists,
		},
		{
			name: "stale nonce",
			call: func(t *testing.T) *mentorregistry.RegisterCall {
				return signedRegisterCall(t, key, "alice", 1, deadline)
			},
			setup: func(reader *mocks.MockRegistryReader) {
				reader.EXPECT().UsernameExists(gomock.Any(), "alice").Return(false, nil)
				reader.EXPECT().GetMentorByAddress(gomock.Any(), mentor).Return(&mentorregistry.Mentor{}, nil)
				reader.EXPECT().GetNonce(gomock.Any(), mentor).Return(big.NewInt(2), nil)
			},
			expected: domain.ErrInvalidSignature,
		},
		{
			name: "signed for another username",
			call: func(t *testing.T) *mentorregistry.RegisterCall {
				call := signedRegisterCall(t, key, "alice", 2, deadline)
				call.Username = "mallory"
				return call
			},
			setup: func(reader *mocks.MockRegistryReader) {
				reader.EXPECT().UsernameExists(gomock.Any(), "mallory").Return(false, nil)
				reader.EXPECT().GetMentorByAddress(gomock.Any(), mentor).Return(&mentorregistry.Mentor{}, nil)
				reader.EXPECT().GetNonce(gomock.Any(), mentor).Return(big.NewInt(2), nil)
			},
			expected: domain.ErrInvalidSignature,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := mocks.NewMockRegistryReader(ctrl)
			clock := mocks.NewMockClock(ctrl)
			clock.EXPECT().Now().Return(now).AnyTimes()
			tt.setup(reader)

			v := mentorregistry.NewVerifier(reader, clock, testChainID, common.HexToAddress(registryAddr))
			err := v.VerifyRegistration(context.Background(), tt.call(t))
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestVerifier_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	reader := mocks.NewMockRegistryReader(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1_800_000_000, 0))
	reader.EXPECT().UsernameExists(gomock.Any(), "alice").Return(false, errors.New("rpc down"))

	v := mentorregistry.NewVerifier(reader, clock, testChainID, common.HexToAddress(registryAddr))
	err = v.VerifyRegistration(context.Background(), signedRegisterCall(t, key, "alice", 0, 1_900_000_000))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc down")
}
