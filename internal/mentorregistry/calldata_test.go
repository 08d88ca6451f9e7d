package mentorregistry_test

import (
	"crypto/ecdsa"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentor-registry/mentor-relay/internal/domain"
	"github.com/mentor-registry/mentor-relay/internal/mentorregistry"
)

const (
	testChainID  = int64(31337)
	registryAddr = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
)

// signedRegisterCall builds a registerMentorByRelayer call signed by key
func signedRegisterCall(t *testing.T, key *ecdsa.PrivateKey, username string, nonce, deadline int64) *mentorregistry.RegisterCall {
	t.Helper()

	mentor := crypto.PubkeyToAddress(key.PublicKey)
	hash, err := mentorregistry.HashMentorRegister(testChainID, common.HexToAddress(registryAddr), mentorregistry.MentorRegister{
		Username:       username,
		CreatorAddress: mentor,
		Nonce:          big.NewInt(nonce),
		Deadline:       big.NewInt(deadline),
	})
	require.NoError(t, err)

	sig, err := crypto.Sign(hash, key)
	require.NoError(t, err)

	v, r, s, err := mentorregistry.SplitSignature(sig)
	require.NoError(t, err)

	return &mentorregistry.RegisterCall{
		Username:      username,
		MentorAddress: mentor,
		Deadline:      big.NewInt(deadline),
		V:             v,
		R:             r,
		S:             s,
	}
}

func TestDecodeRegisterCall(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	call := signedRegisterCall(t, key, "alice_dev", 0, 1_900_000_000)

	data, err := mentorregistry.EncodeRegisterCall(call)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(data, "0x"))

	decoded, err := mentorregistry.DecodeRegisterCall(data)
	require.NoError(t, err)
	assert.Equal(t, "alice_dev", decoded.Username)
	assert.Equal(t, call.MentorAddress, decoded.MentorAddress)
	assert.Equal(t, 0, decoded.Deadline.Cmp(big.NewInt(1_900_000_000)))
	assert.Equal(t, call.V, decoded.V)
	assert.GreaterOrEqual(t, decoded.V, uint8(27))
	assert.Equal(t, call.Signature(), decoded.Signature())
}

func TestDecodeRegisterCall_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not hex", data: "hello"},
		{name: "missing prefix", data: "deadbeef"},
		{name: "too short", data: "0x1234"},
		{name: "other selector", data: "0xdeadbeef" + strings.Repeat("00", 64)},
		{name: "truncated arguments", data: "0x" + common.Bytes2Hex(mentorregistry.ABI().Methods[mentorregistry.MethodRegisterMentorByRelayer].ID) + "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call, err := mentorregistry.DecodeRegisterCall(tt.data)
			assert.Nil(t, call)
			assert.ErrorIs(t, err, domain.ErrInvalidCallData)
		})
	}
}

func TestRecoverSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	call := signedRegisterCall(t, key, "bob", 3, 1_900_000_000)

	hash, err := mentorregistry.HashMentorRegister(testChainID, common.HexToAddress(registryAddr), mentorregistry.MentorRegister{
		Username:       "bob",
		CreatorAddress: call.MentorAddress,
		Nonce:          big.NewInt(3),
		Deadline:       call.Deadline,
	})
	require.NoError(t, err)

	t.Run("recovers the mentor address", func(t *testing.T) {
		signer, err := mentorregistry.RecoverSigner(hash, call.Signature())
		require.NoError(t, err)
		assert.Equal(t, call.MentorAddress, signer)
	})

	t.Run("different nonce recovers a different address", func(t *testing.T) {
		other, err := mentorregistry.HashMentorRegister(testChainID, common.HexToAddress(registryAddr), mentorregistry.MentorRegister{
			Username:       "bob",
			CreatorAddress: call.MentorAddress,
			Nonce:          big.NewInt(4),
			Deadline:       call.Deadline,
		})
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)

		signer, err := mentorregistry.RecoverSigner(other, call.Signature())
		if err == nil {
			assert.NotEqual(t, call.MentorAddress, signer)
		}
	})

	t.Run("different chain produces a different digest", func(t *testing.T) {
		other, err := mentorregistry.HashMentorRegister(1, common.HexToAddress(registryAddr), mentorregistry.MentorRegister{
			Username:       "bob",
			CreatorAddress: call.MentorAddress,
			Nonce:          big.NewInt(3),
			Deadline:       call.Deadline,
		})
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
	})

	t.Run("rejects short signatures", func(t *testing.T) {
		_, err := mentorregistry.RecoverSigner(hash, []byte{1, 2, 3})
		assert.Error(t, err)
	})
}

func TestSplitSignature(t *testing.T) {
	sig := make([]byte, 65)
	sig[0] = 0xaa
	sig[32] = 0xbb
	sig[64] = 1

	v, r, s, err := mentorregistry.SplitSignature(sig)
	require.NoError(t, err)
	assert.Equal(t, uint8(28), v)
	assert.Equal(t, byte(0xaa), r[0])
	assert.Equal(t, byte(0xbb), s[0])

	_, _, _, err = mentorregistry.SplitSignature(sig[:64])
	assert.Error(t, err)
}
