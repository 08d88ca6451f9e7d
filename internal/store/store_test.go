package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/mentor-registry/mentor-relay/internal/domain"
	"github.com/mentor-registry/mentor-relay/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

var baseTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string {
	return &s
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// buildTestStatus creates a status row for a relayer transaction
func buildTestStatus(id, txID string, hash *string, status domain.TransactionStatus, eventTime time.Time) *schema.TransactionStatus {
	return &schema.TransactionStatus{
		ID:             id,
		TransactionID:  txID,
		Hash:           hash,
		Status:         string(status),
		CreatedAt:      baseTime,
		From:           strPtr("0x1111111111111111111111111111111111111111"),
		To:             strPtr("0x2222222222222222222222222222222222222222"),
		RelayerID:      strPtr("local-anvil-relayer"),
		EventTimestamp: eventTime,
		Source:         domain.SourceWebhook,
		Raw:            datatypes.JSON(fmt.Sprintf(`{"id":%q,"status":%q}`, txID, status)),
	}
}

// =============================================================================
// Test: UpsertTransactionStatus
// =============================================================================

func testUpsertTransactionStatus(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("insert then re-delivery updates mutable fields only", func(t *testing.T) {
		first := buildTestStatus("evt-1", "tx-1", nil, domain.StatusPending, baseTime)
		require.NoError(t, store.UpsertTransactionStatus(ctx, first))

		second := buildTestStatus("evt-1", "tx-1", strPtr("0xhash"), domain.StatusConfirmed, baseTime.Add(time.Minute))
		second.SentAt = timePtr(baseTime.Add(10 * time.Second))
		second.ConfirmedAt = timePtr(baseTime.Add(50 * time.Second))
		second.To = strPtr("0x3333333333333333333333333333333333333333")
		require.NoError(t, store.UpsertTransactionStatus(ctx, second))

		rows, err := store.GetTransactionStatusesByTransactionID(ctx, "tx-1")
		require.NoError(t, err)
		require.Len(t, rows, 1)

		row := rows[0]
		assert.Equal(t, string(domain.StatusConfirmed), row.Status)
		require.NotNil(t, row.SentAt)
		assert.True(t, baseTime.Add(10*time.Second).Equal(*row.SentAt))
		require.NotNil(t, row.ConfirmedAt)
		assert.True(t, baseTime.Add(50*time.Second).Equal(*row.ConfirmedAt))
		assert.True(t, baseTime.Add(time.Minute).Equal(row.EventTimestamp))
		// Immutable after the first insert
		assert.Nil(t, row.Hash)
		assert.Equal(t, "0x2222222222222222222222222222222222222222", *row.To)
	})

	t.Run("stores timestamps in UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*3600)
		row := buildTestStatus("evt-utc", "tx-utc", nil, domain.StatusSent, baseTime.In(loc))
		require.NoError(t, store.UpsertTransactionStatus(ctx, row))

		latest, err := store.GetLatestTransactionStatus(ctx, "tx-utc")
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.True(t, baseTime.Equal(latest.EventTimestamp))
	})

	t.Run("defaults the source", func(t *testing.T) {
		row := buildTestStatus("evt-src", "tx-src", nil, domain.StatusSent, baseTime)
		row.Source = ""
		require.NoError(t, store.UpsertTransactionStatus(ctx, row))

		latest, err := store.GetLatestTransactionStatus(ctx, "tx-src")
		require.NoError(t, err)
		assert.Equal(t, domain.SourceWebhook, latest.Source)
	})

	t.Run("rejects rows without ids", func(t *testing.T) {
		assert.Error(t, store.UpsertTransactionStatus(ctx, nil))
		assert.Error(t, store.UpsertTransactionStatus(ctx, buildTestStatus("", "tx", nil, domain.StatusSent, baseTime)))
		assert.Error(t, store.UpsertTransactionStatus(ctx, buildTestStatus("evt", "", nil, domain.StatusSent, baseTime)))
	})
}

// =============================================================================
// Test: status queries
// =============================================================================

func testGetTransactionStatuses(t *testing.T, store Store) {
	ctx := context.Background()
	hash := strPtr("0xabc")

	require.NoError(t, store.UpsertTransactionStatus(ctx, buildTestStatus("evt-a", "tx-q", hash, domain.StatusSent, baseTime)))
	require.NoError(t, store.UpsertTransactionStatus(ctx, buildTestStatus("evt-c", "tx-q", hash, domain.StatusConfirmed, baseTime.Add(2*time.Minute))))
	require.NoError(t, store.UpsertTransactionStatus(ctx, buildTestStatus("evt-b", "tx-q", hash, domain.StatusMined, baseTime.Add(time.Minute))))
	require.NoError(t, store.UpsertTransactionStatus(ctx, buildTestStatus("evt-z", "tx-other", strPtr("0xdef"), domain.StatusSent, baseTime)))

	t.Run("by hash ordered by event timestamp desc", func(t *testing.T) {
		rows, err := store.GetTransactionStatusesByHash(ctx, "0xabc")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "evt-c", rows[0].ID)
		assert.Equal(t, "evt-b", rows[1].ID)
		assert.Equal(t, "evt-a", rows[2].ID)
	})

	t.Run("by transaction id", func(t *testing.T) {
		rows, err := store.GetTransactionStatusesByTransactionID(ctx, "tx-q")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, string(domain.StatusConfirmed), rows[0].Status)
	})

	t.Run("ties broken by id desc", func(t *testing.T) {
		require.NoError(t, store.UpsertTransactionStatus(ctx, buildTestStatus("evt-tie-1", "tx-tie", nil, domain.StatusSent, baseTime)))
		require.NoError(t, store.UpsertTransactionStatus(ctx, buildTestStatus("evt-tie-2", "tx-tie", nil, domain.StatusMined, baseTime)))

		latest, err := store.GetLatestTransactionStatus(ctx, "tx-tie")
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "evt-tie-2", latest.ID)
	})

	t.Run("unknown values return empty results", func(t *testing.T) {
		rows, err := store.GetTransactionStatusesByHash(ctx, "0xnothing")
		require.NoError(t, err)
		assert.Empty(t, rows)

		latest, err := store.GetLatestTransactionStatus(ctx, "tx-missing")
		require.NoError(t, err)
		assert.Nil(t, latest)
	})
}

// =============================================================================
// Test: ListPendingTransactionIDs
// =============================================================================

func testListPendingTransactionIDs(t *testing.T, store Store) {
	ctx := context.Background()

	// stale and pending
	require.NoError(t, store.UpsertTransactionStatus(ctx, buildTestStatus("p1", "tx-stale", nil, domain.StatusPending, baseTime)))
	require.NoError(t, store.UpsertTransactionStatus(ctx, buildTestStatus("p2", "tx-stale", nil, domain.StatusSent, baseTime.Add(time.Minute))))
	// older stale and pending
	require.NoError(t, store.UpsertTransactionStatus(ctx, buildTestStatus("o1", "tx-older", nil, domain.StatusSubmitted, baseTime.Add(-time.Hour))))
	// finished
	require.NoError(t, store.UpsertTransactionStatus(ctx, buildTestStatus("f1", "tx-done", nil, domain.StatusSent, baseTime)))
	require.NoError(t, store.UpsertTransactionStatus(ctx, buildTestStatus("f2", "tx-done", nil, domain.StatusConfirmed, baseTime.Add(time.Minute))))
	// recent
	require.NoError(t, store.UpsertTransactionStatus(ctx, buildTestStatus("r1", "tx-recent", nil, domain.StatusPending, baseTime.Add(time.Hour))))

	staleBefore := baseTime.Add(30 * time.Minute)

	t.Run("lists stale non-terminal transactions oldest first", func(t *testing.T) {
		ids, err := store.ListPendingTransactionIDs(ctx, staleBefore, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"tx-older", "tx-stale"}, ids)
	})

	t.Run("respects the limit", func(t *testing.T) {
		ids, err := store.ListPendingTransactionIDs(ctx, staleBefore, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"tx-older"}, ids)
	})

	t.Run("zero limit returns nothing", func(t *testing.T) {
		ids, err := store.ListPendingTransactionIDs(ctx, staleBefore, 0)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

// =============================================================================
// Test: mentor profiles
// =============================================================================

func testMentorProfiles(t *testing.T, store Store) {
	ctx := context.Background()
	wallet := "0xAbCdEf0123456789aBcDeF0123456789AbCdEf01"

	created, err := store.CreateMentorProfile(ctx, CreateMentorProfileInput{
		Username:      "alice",
		WalletAddress: wallet,
		FullName:      "Alice Doe",
		Bio:           strPtr("Go mentor"),
		Timezone:      "Europe/Berlin",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)

	t.Run("get by wallet is case insensitive", func(t *testing.T) {
		profile, err := store.GetMentorProfileByWallet(ctx, "0xabcdef0123456789abcdef0123456789abcdef01")
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, created.ID, profile.ID)
		assert.Equal(t, "Go mentor", *profile.Bio)
	})

	t.Run("get by username and by wallet plus username", func(t *testing.T) {
		profile, err := store.GetMentorProfileByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, wallet, profile.WalletAddress)

		profile, err = store.GetMentorProfile(ctx, wallet, "alice")
		require.NoError(t, err)
		require.NotNil(t, profile)

		profile, err = store.GetMentorProfile(ctx, wallet, "bob")
		require.NoError(t, err)
		assert.Nil(t, profile)
	})

	t.Run("update", func(t *testing.T) {
		updated, err := store.UpdateMentorProfile(ctx, wallet, "alice", UpdateMentorProfileInput{
			FullName: "Alice D.",
			Bio:      nil,
			Timezone: "UTC",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Alice D.", updated.FullName)
		assert.Equal(t, "UTC", updated.Timezone)
		assert.Nil(t, updated.Bio)

		missing, err := store.UpdateMentorProfile(ctx, wallet, "nobody", UpdateMentorProfileInput{FullName: "x", Timezone: "UTC"})
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("soft delete hides the profile", func(t *testing.T) {
		deleted, err := store.SoftDeleteMentorProfile(ctx, wallet, "alice")
		require.NoError(t, err)
		assert.True(t, deleted)

		profile, err := store.GetMentorProfileByWallet(ctx, wallet)
		require.NoError(t, err)
		assert.Nil(t, profile)

		deleted, err = store.SoftDeleteMentorProfile(ctx, wallet, "alice")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func testPing(t *testing.T, store Store) {
	require.NoError(t, store.Ping(context.Background()))
}

// RunStoreTests runs the shared store suite against a Store factory
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UpsertTransactionStatus", testUpsertTransactionStatus},
		{"GetTransactionStatuses", testGetTransactionStatuses},
		{"ListPendingTransactionIDs", testListPendingTransactionIDs},
		{"MentorProfiles", testMentorProfiles},
		{"Ping", testPing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, initDB(t))
		})
	}
}
