package executor_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentor-registry/mentor-relay/internal/api/shared/dto"
	apierrors "github.com/mentor-registry/mentor-relay/internal/api/shared/errors"
	"github.com/mentor-registry/mentor-relay/internal/api/shared/executor"
	"github.com/mentor-registry/mentor-relay/internal/domain"
	"github.com/mentor-registry/mentor-relay/internal/logger"
	"github.com/mentor-registry/mentor-relay/internal/mentorregistry"
	"github.com/mentor-registry/mentor-relay/internal/metrics"
	"github.com/mentor-registry/mentor-relay/internal/mocks"
	"github.com/mentor-registry/mentor-relay/internal/providers/relayer"
	"github.com/mentor-registry/mentor-relay/internal/registry"
	"github.com/mentor-registry/mentor-relay/internal/relay"
	"github.com/mentor-registry/mentor-relay/internal/store"
	"github.com/mentor-registry/mentor-relay/internal/store/schema"
	"github.com/mentor-registry/mentor-relay/internal/types"
	"github.com/mentor-registry/mentor-relay/internal/webhook"
)

const (
	mentorWallet = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	signingKey   = "webhook-secret"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fixture struct {
	store     *mocks.MockStore
	relay     *mocks.MockRelay
	publisher *mocks.MockPublisher
	verifier  *mocks.MockRegistryVerifier
	clock     *mocks.MockClock
	exec      executor.Executor
}

func newFixture(t *testing.T, withVerifier bool, cfg executor.Config) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		store:     mocks.NewMockStore(ctrl),
		relay:     mocks.NewMockRelay(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		verifier:  mocks.NewMockRegistryVerifier(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	f.clock.EXPECT().Now().Return(fixedNow).AnyTimes()

	var verifier mentorregistry.Verifier
	if withVerifier {
		verifier = f.verifier
	}
	f.exec = executor.NewExecutor(cfg, f.store, f.relay, f.publisher, verifier, f.clock)
	return f
}

func registerCallData(t *testing.T, username string) string {
	t.Helper()
	data, err := mentorregistry.EncodeRegisterCall(&mentorregistry.RegisterCall{
		Username:      username,
		MentorAddress: common.HexToAddress(mentorWallet),
		Deadline:      big.NewInt(fixedNow.Add(time.Hour).Unix()),
		V:             27,
		R:             [32]byte{1},
		S:             [32]byte{2},
	})
	require.NoError(t, err)
	return data
}

func requireAPIError(t *testing.T, err error, status int, message string) {
	t.Helper()
	apiErr, ok := apierrors.As(err)
	require.True(t, ok, "expected APIError, got %v", err)
	assert.Equal(t, status, apiErr.StatusCode())
	if message != "" {
		assert.Equal(t, message, apiErr.Message)
	}
}

const webhookBody = `{
	"id": "evt-1",
	"event": "transaction_update",
	"payload": {"id": "tx-1", "hash": "0xabc", "status": "mined", "created_at": "2025-06-01T11:59:00Z"},
	"timestamp": "2025-06-01T12:00:05Z"
}`

func TestProcessWebhook_StoresAndPublishes(t *testing.T) {
	f := newFixture(t, false, executor.Config{})
	ctx := context.Background()

	f.store.EXPECT().UpsertTransactionStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row *schema.TransactionStatus) error {
			assert.Equal(t, "evt-1", row.ID)
			assert.Equal(t, "tx-1", row.TransactionID)
			assert.Equal(t, "mined", row.Status)
			assert.Equal(t, domain.SourceWebhook, row.Source)
			assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 5, 0, time.UTC), row.EventTimestamp)
			return nil
		})
	f.publisher.EXPECT().PublishStatus(gomock.Any(), gomock.Any()).Return(nil)

	assert.Equal(t, metrics.ResultProcessed, f.exec.ProcessWebhook(ctx, []byte(webhookBody), ""))
}

func TestProcessWebhook_Swallows(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		outcome string
	}{
		{"malformed json", `{"id": "evt-1",`, metrics.ResultMalformed},
		{"other event", `{"id":"evt-2","event":"relayer_paused","payload":{}}`, metrics.ResultIgnored},
		{"null payload", `{"id":"evt-3","event":"transaction_update","payload":null}`, metrics.ResultIgnored},
		{"payload without tx id", `{"id":"evt-4","event":"transaction_update","payload":{"status":"sent"}}`, metrics.ResultMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false, executor.Config{})
			assert.Equal(t, tt.outcome, f.exec.ProcessWebhook(context.Background(), []byte(tt.body), ""))
		})
	}
}

func TestProcessWebhook_StoreFailureIsSwallowed(t *testing.T) {
	f := newFixture(t, false, executor.Config{})

	f.store.EXPECT().UpsertTransactionStatus(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	assert.Equal(t, metrics.ResultFailed, f.exec.ProcessWebhook(context.Background(), []byte(webhookBody), ""))
}

func TestProcessWebhook_Signature(t *testing.T) {
	body := []byte(webhookBody)

	t.Run("invalid signature is ignored", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{WebhookSigningKey: signingKey})
		outcome := f.exec.ProcessWebhook(context.Background(), body, webhook.Sign("other-secret", body))
		assert.Equal(t, metrics.ResultInvalidSignature, outcome)
	})

	t.Run("missing signature is ignored", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{WebhookSigningKey: signingKey})
		assert.Equal(t, metrics.ResultInvalidSignature, f.exec.ProcessWebhook(context.Background(), body, ""))
	})

	t.Run("valid signature is processed", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{WebhookSigningKey: signingKey})
		f.store.EXPECT().UpsertTransactionStatus(gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().PublishStatus(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

		outcome := f.exec.ProcessWebhook(context.Background(), body, webhook.Sign(signingKey, body))
		assert.Equal(t, metrics.ResultProcessed, outcome)
	})
}

func TestGetTransactionStatus(t *testing.T) {
	ctx := context.Background()
	rows := []schema.TransactionStatus{
		{ID: "evt-2", TransactionID: "tx-1", Hash: types.StringPtr("0xabc"), Status: "confirmed", EventTimestamp: fixedNow, CreatedAt: fixedNow, Source: domain.SourceWebhook},
		{ID: "evt-1", TransactionID: "tx-1", Hash: types.StringPtr("0xabc"), Status: "mined", EventTimestamp: fixedNow.Add(-time.Minute), CreatedAt: fixedNow, Source: domain.SourceWebhook},
	}

	t.Run("by hash", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{})
		f.store.EXPECT().GetTransactionStatusesByHash(ctx, "0xabc").Return(rows, nil)

		resp, err := f.exec.GetTransactionStatus(ctx, "0xabc", "")
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Count)
		require.NotNil(t, resp.Latest)
		assert.Equal(t, "confirmed", resp.Latest.Status)
		assert.Equal(t, "evt-1", resp.History[1].ID)
	})

	t.Run("by transaction id without rows", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{})
		f.store.EXPECT().GetTransactionStatusesByTransactionID(ctx, "tx-9").Return(nil, nil)

		resp, err := f.exec.GetTransactionStatus(ctx, "", "tx-9")
		require.NoError(t, err)
		assert.Nil(t, resp.Latest)
		assert.Equal(t, 0, resp.Count)
		assert.NotNil(t, resp.History)
	})

	t.Run("neither or both filters", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{})

		_, err := f.exec.GetTransactionStatus(ctx, "", "")
		requireAPIError(t, err, http.StatusBadRequest, "Either 'hash' or 'transactionId' query parameter is required")

		_, err = f.exec.GetTransactionStatus(ctx, "0xabc", "tx-1")
		requireAPIError(t, err, http.StatusBadRequest, "")
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{})
		f.store.EXPECT().GetTransactionStatusesByHash(ctx, "0xabc").Return(nil, errors.New("db down"))

		_, err := f.exec.GetTransactionStatus(ctx, "0xabc", "")
		requireAPIError(t, err, http.StatusInternalServerError, "Failed to get transaction status")
	})
}

func TestRegisterMentor_CreatesProfile(t *testing.T) {
	f := newFixture(t, false, executor.Config{})
	ctx := context.Background()
	data := registerCallData(t, "alice_dev")

	f.relay.EXPECT().SubmitAndPoll(gomock.Any(), data).Return(&relay.SubmitResult{
		TransactionID: "tx-1",
		Hash:          types.StringPtr("0xabc"),
		Status:        "submitted",
		CreatedAt:     types.StringPtr("2025-06-01T12:00:00Z"),
		Fetches:       2,
	}, nil)
	f.store.EXPECT().GetMentorProfile(gomock.Any(), mentorWallet, "alice_dev").Return(nil, nil)
	f.store.EXPECT().CreateMentorProfile(gomock.Any(), store.CreateMentorProfileInput{
		Username:      "alice_dev",
		WalletAddress: mentorWallet,
		FullName:      "Alice",
		Timezone:      "UTC",
	}).Return(&schema.MentorProfile{ID: "p-1"}, nil)

	resp, err := f.exec.RegisterMentor(ctx, dto.RegisterMentorRequest{
		Data:          data,
		Username:      "alice_dev",
		WalletAddress: mentorWallet,
		FullName:      "Alice",
		Timezone:      "UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, "0xabc", *resp.ID)
	assert.Equal(t, "tx-1", resp.TxID)
	assert.Equal(t, "submitted", resp.Status)
	assert.Nil(t, resp.ConfirmedAt)
	assert.True(t, resp.ProfileCreated)
}

func TestRegisterMentor_UpdatesExistingProfile(t *testing.T) {
	f := newFixture(t, false, executor.Config{})
	data := registerCallData(t, "alice_dev")
	bio := "solidity"

	f.relay.EXPECT().SubmitAndPoll(gomock.Any(), data).Return(&relay.SubmitResult{TransactionID: "tx-1", Status: "pending"}, nil)
	f.store.EXPECT().GetMentorProfile(gomock.Any(), mentorWallet, "alice_dev").Return(&schema.MentorProfile{ID: "p-1"}, nil)
	f.store.EXPECT().UpdateMentorProfile(gomock.Any(), mentorWallet, "alice_dev", store.UpdateMentorProfileInput{
		FullName: "Alice",
		Bio:      &bio,
		Timezone: "UTC",
	}).Return(&schema.MentorProfile{ID: "p-1"}, nil)

	resp, err := f.exec.RegisterMentor(context.Background(), dto.RegisterMentorRequest{
		Data:          data,
		Username:      "alice_dev",
		WalletAddress: mentorWallet,
		FullName:      "Alice",
		Bio:           &bio,
		Timezone:      "UTC",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.ID)
	assert.False(t, resp.ProfileCreated)
}

func TestRegisterMentor_WithoutProfileFields(t *testing.T) {
	f := newFixture(t, false, executor.Config{})
	data := registerCallData(t, "alice_dev")

	f.relay.EXPECT().SubmitAndPoll(gomock.Any(), data).Return(&relay.SubmitResult{TransactionID: "tx-1", Status: "sent"}, nil)

	resp, err := f.exec.RegisterMentor(context.Background(), dto.RegisterMentorRequest{Data: data})
	require.NoError(t, err)
	assert.False(t, resp.ProfileCreated)
}

func TestRegisterMentor_Denylist(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		denylist := mocks.NewMockDenylist(ctrl)
		denylist.EXPECT().IsWalletBlocked(mentorWallet).Return(true)

		f := newFixture(t, false, executor.Config{Denylist: denylist})
		_, err := f.exec.RegisterMentor(ctx, dto.RegisterMentorRequest{Data: registerCallData(t, "alice_dev")})
		requireAPIError(t, err, http.StatusBadRequest, "This mentor address is not allowed to register")
	})

	t.Run("reserved username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		denylist := mocks.NewMockDenylist(ctrl)
		denylist.EXPECT().IsWalletBlocked(mentorWallet).Return(false)
		denylist.EXPECT().IsUsernameReserved("admin").Return(true)

		f := newFixture(t, false, executor.Config{Denylist: denylist})
		_, err := f.exec.RegisterMentor(ctx, dto.RegisterMentorRequest{Data: registerCallData(t, "admin")})
		requireAPIError(t, err, http.StatusBadRequest, "This username is already taken")
	})

	t.Run("allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		denylist := mocks.NewMockDenylist(ctrl)
		denylist.EXPECT().IsWalletBlocked(mentorWallet).Return(false)
		denylist.EXPECT().IsUsernameReserved("alice_dev").Return(false)

		f := newFixture(t, false, executor.Config{Denylist: denylist})
		data := registerCallData(t, "alice_dev")
		f.relay.EXPECT().SubmitAndPoll(gomock.Any(), data).Return(&relay.SubmitResult{TransactionID: "tx-1", Status: "sent"}, nil)

		resp, err := f.exec.RegisterMentor(ctx, dto.RegisterMentorRequest{Data: data})
		require.NoError(t, err)
		assert.Equal(t, "tx-1", resp.TxID)
	})
}

func TestRegisterMentor_ProfileFailureKeepsRegistration(t *testing.T) {
	f := newFixture(t, false, executor.Config{})
	data := registerCallData(t, "alice_dev")

	f.relay.EXPECT().SubmitAndPoll(gomock.Any(), data).Return(&relay.SubmitResult{TransactionID: "tx-1", Status: "sent"}, nil)
	f.store.EXPECT().GetMentorProfile(gomock.Any(), mentorWallet, "alice_dev").Return(nil, errors.New("db down"))

	resp, err := f.exec.RegisterMentor(context.Background(), dto.RegisterMentorRequest{
		Data:          data,
		Username:      "alice_dev",
		WalletAddress: mentorWallet,
		FullName:      "Alice",
		Timezone:      "UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, "tx-1", resp.TxID)
	assert.False(t, resp.ProfileCreated)
}

func TestRegisterMentor_InvalidRequest(t *testing.T) {
	data := registerCallData(t, "alice_dev")

	tests := []struct {
		name string
		req  dto.RegisterMentorRequest
	}{
		{"missing data", dto.RegisterMentorRequest{}},
		{"not hex", dto.RegisterMentorRequest{Data: "0xzz"}},
		{"other function", dto.RegisterMentorRequest{Data: "0xdeadbeef"}},
		{"username mismatch", dto.RegisterMentorRequest{Data: data, Username: "bob"}},
		{"wallet mismatch", dto.RegisterMentorRequest{Data: data, WalletAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false, executor.Config{})
			_, err := f.exec.RegisterMentor(context.Background(), tt.req)
			requireAPIError(t, err, http.StatusBadRequest, "")
		})
	}
}

func TestRegisterMentor_RelayerRevert(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
	}{
		{
			name:    "address exists",
			err:     fmt.Errorf("failed to submit transaction: %w", &relayer.APIError{StatusCode: 400, Message: "execution reverted: AddressAlreadyExists()"}),
			message: "This mentor address is already registered",
		},
		{
			name:    "legacy selector",
			err:     errors.New("failed to submit transaction: reverted with 0x8baa579f"),
			message: "This mentor address is already registered",
		},
		{
			name:    "raw message",
			err:     &relayer.APIError{StatusCode: 503, Message: "Relayer is paused"},
			message: "Relayer is paused",
		},
		{
			name:    "empty message",
			err:     &relayer.APIError{StatusCode: 500},
			message: mentorregistry.DefaultRegisterError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false, executor.Config{})
			data := registerCallData(t, "alice_dev")
			f.relay.EXPECT().SubmitAndPoll(gomock.Any(), data).Return(nil, tt.err)

			_, err := f.exec.RegisterMentor(context.Background(), dto.RegisterMentorRequest{Data: data})
			requireAPIError(t, err, http.StatusInternalServerError, tt.message)
		})
	}
}

func TestRegisterMentor_Verifier(t *testing.T) {
	t.Run("rejection stops the relay", func(t *testing.T) {
		f := newFixture(t, true, executor.Config{})
		data := registerCallData(t, "alice_dev")
		f.verifier.EXPECT().VerifyRegistration(gomock.Any(), gomock.Any()).Return(mentorregistry.ErrUsernameAlreadyExists)

		_, err := f.exec.RegisterMentor(context.Background(), dto.RegisterMentorRequest{Data: data})
		requireAPIError(t, err, http.StatusBadRequest, "This username is already taken")
	})

	t.Run("rpc failure does not block", func(t *testing.T) {
		f := newFixture(t, true, executor.Config{})
		data := registerCallData(t, "alice_dev")
		f.verifier.EXPECT().VerifyRegistration(gomock.Any(), gomock.Any()).Return(errors.New("failed to get nonce: dial tcp: refused"))
		f.relay.EXPECT().SubmitAndPoll(gomock.Any(), data).Return(&relay.SubmitResult{TransactionID: "tx-1", Status: "pending"}, nil)

		resp, err := f.exec.RegisterMentor(context.Background(), dto.RegisterMentorRequest{Data: data})
		require.NoError(t, err)
		assert.Equal(t, "tx-1", resp.TxID)
	})

	t.Run("decoded call is verified", func(t *testing.T) {
		f := newFixture(t, true, executor.Config{})
		data := registerCallData(t, "alice_dev")
		f.verifier.EXPECT().VerifyRegistration(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, call *mentorregistry.RegisterCall) error {
				assert.Equal(t, "alice_dev", call.Username)
				assert.Equal(t, common.HexToAddress(mentorWallet), call.MentorAddress)
				return nil
			})
		f.relay.EXPECT().SubmitAndPoll(gomock.Any(), data).Return(&relay.SubmitResult{TransactionID: "tx-1"}, nil)

		_, err := f.exec.RegisterMentor(context.Background(), dto.RegisterMentorRequest{Data: data})
		require.NoError(t, err)
	})
}

func TestGetMentorProfile(t *testing.T) {
	ctx := context.Background()
	profile := &schema.MentorProfile{
		ID:            "p-1",
		Username:      "alice_dev",
		WalletAddress: mentorWallet,
		FullName:      "Alice",
		Timezone:      "UTC",
		CreatedAt:     fixedNow,
		UpdatedAt:     fixedNow,
	}

	f := newFixture(t, false, executor.Config{})
	f.store.EXPECT().GetMentorProfileByWallet(ctx, mentorWallet).Return(profile, nil)
	f.store.EXPECT().GetMentorProfileByUsername(ctx, "nobody").Return(nil, nil)

	got, err := f.exec.GetMentorProfileByWallet(ctx, mentorWallet)
	require.NoError(t, err)
	assert.Equal(t, "alice_dev", got.Username)
	assert.Equal(t, mentorWallet, got.WalletAddress)

	got, err = f.exec.GetMentorProfileByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveMentorProfile(t *testing.T) {
	ctx := context.Background()
	req := dto.SaveMentorProfileRequest{FullName: "Alice", Timezone: "UTC", Username: "alice_dev"}

	t.Run("creates when the wallet has no profile", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{})
		f.store.EXPECT().GetMentorProfileByWallet(ctx, mentorWallet).Return(nil, nil)
		f.store.EXPECT().CreateMentorProfile(ctx, gomock.Any()).Return(&schema.MentorProfile{}, nil)

		created, err := f.exec.SaveMentorProfile(ctx, mentorWallet, req)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("stores the checksummed wallet on create", func(t *testing.T) {
		lower := strings.ToLower(mentorWallet)
		f := newFixture(t, false, executor.Config{})
		f.store.EXPECT().GetMentorProfileByWallet(ctx, lower).Return(nil, nil)
		f.store.EXPECT().CreateMentorProfile(ctx, store.CreateMentorProfileInput{
			Username:      "alice_dev",
			WalletAddress: mentorWallet,
			FullName:      "Alice",
			Timezone:      "UTC",
		}).Return(&schema.MentorProfile{}, nil)

		created, err := f.exec.SaveMentorProfile(ctx, lower, req)
		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("updates an existing profile", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{})
		f.store.EXPECT().GetMentorProfileByWallet(ctx, mentorWallet).Return(&schema.MentorProfile{}, nil)
		f.store.EXPECT().UpdateMentorProfile(ctx, mentorWallet, "alice_dev", gomock.Any()).Return(&schema.MentorProfile{}, nil)

		created, err := f.exec.SaveMentorProfile(ctx, mentorWallet, req)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("username of another profile", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{})
		f.store.EXPECT().GetMentorProfileByWallet(ctx, mentorWallet).Return(&schema.MentorProfile{}, nil)
		f.store.EXPECT().UpdateMentorProfile(ctx, mentorWallet, "alice_dev", gomock.Any()).Return(nil, nil)

		_, err := f.exec.SaveMentorProfile(ctx, mentorWallet, req)
		requireAPIError(t, err, http.StatusNotFound, "Mentor profile not found")
	})

	t.Run("reserved username on create", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{
			Denylist: registry.NewDenylist(registry.DenylistData{Usernames: []string{"alice_dev"}}),
		})
		f.store.EXPECT().GetMentorProfileByWallet(ctx, mentorWallet).Return(nil, nil)

		_, err := f.exec.SaveMentorProfile(ctx, mentorWallet, req)
		requireAPIError(t, err, http.StatusBadRequest, "This username is already taken")
	})

	t.Run("required fields", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{})
		_, err := f.exec.SaveMentorProfile(ctx, mentorWallet, dto.SaveMentorProfileRequest{FullName: "Alice"})
		requireAPIError(t, err, http.StatusBadRequest, "Full name, timezone, and username are required")

		_, err = f.exec.SaveMentorProfile(ctx, mentorWallet, dto.SaveMentorProfileRequest{FullName: "Alice", Timezone: "UTC", Username: "Alice"})
		requireAPIError(t, err, http.StatusBadRequest, "")

		_, err = f.exec.SaveMentorProfile(ctx, "0x123", req)
		requireAPIError(t, err, http.StatusBadRequest, "")
	})
}

func TestDeleteMentorProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, false, executor.Config{})

	f.store.EXPECT().SoftDeleteMentorProfile(ctx, mentorWallet, "alice_dev").Return(true, nil)
	f.store.EXPECT().SoftDeleteMentorProfile(ctx, mentorWallet, "bob").Return(false, nil)

	require.NoError(t, f.exec.DeleteMentorProfile(ctx, mentorWallet, "alice_dev"))
	requireAPIError(t, f.exec.DeleteMentorProfile(ctx, mentorWallet, "bob"), http.StatusNotFound, "Mentor profile not found")
	requireAPIError(t, f.exec.DeleteMentorProfile(ctx, mentorWallet, ""), http.StatusBadRequest, "")
}

func TestSyncTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("recorded", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{})
		row := &schema.TransactionStatus{ID: "reconcile:tx-1:confirmed", TransactionID: "tx-1", Status: "confirmed", Source: domain.SourceReconciler}
		f.relay.EXPECT().Sync(ctx, "tx-1").Return(row, true, nil)

		resp, err := f.exec.SyncTransaction(ctx, "tx-1")
		require.NoError(t, err)
		assert.True(t, resp.Recorded)
		assert.Equal(t, "reconcile:tx-1:confirmed", resp.Latest.ID)
	})

	t.Run("unknown on the relayer", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{})
		f.relay.EXPECT().Sync(ctx, "tx-9").Return(nil, false,
			fmt.Errorf("failed to get transaction tx-9: %w", &relayer.APIError{StatusCode: http.StatusNotFound, Message: "not found"}))

		_, err := f.exec.SyncTransaction(ctx, "tx-9")
		requireAPIError(t, err, http.StatusNotFound, "Transaction not found")
	})

	t.Run("relayer failure", func(t *testing.T) {
		f := newFixture(t, false, executor.Config{})
		f.relay.EXPECT().Sync(ctx, "tx-1").Return(nil, false, errors.New("connection refused"))

		_, err := f.exec.SyncTransaction(ctx, "tx-1")
		requireAPIError(t, err, http.StatusInternalServerError, "")
	})
}
