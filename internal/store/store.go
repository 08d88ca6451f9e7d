package store

import (
	"context"
	"time"

	"github.com/mentor-registry/mentor-relay/internal/store/schema"
)

// CreateMentorProfileInput represents the data needed to create a mentor profile
type CreateMentorProfileInput struct {
	Username      string
	WalletAddress string
	FullName      string
	Bio           *string
	Timezone      string
}

// UpdateMentorProfileInput represents the mutable fields of a mentor profile
type UpdateMentorProfileInput struct {
	FullName string
	Bio      *string
	Timezone string
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertTransactionStatus inserts a status row or, when the id already exists,
	// updates its status, sent_at, confirmed_at and event_timestamp
	UpsertTransactionStatus(ctx context.Context, status *schema.TransactionStatus) error
	// GetTransactionStatusesByHash returns all rows for a hash, most recent event first
	GetTransactionStatusesByHash(ctx context.Context, hash string) ([]schema.TransactionStatus, error)
	// GetTransactionStatusesByTransactionID returns all rows for a relayer transaction id, most recent event first
	GetTransactionStatusesByTransactionID(ctx context.Context, transactionID string) ([]schema.TransactionStatus, error)
	// GetLatestTransactionStatus returns the most recent row for a relayer transaction id, nil if none
	GetLatestTransactionStatus(ctx context.Context, transactionID string) (*schema.TransactionStatus, error)
	// ListPendingTransactionIDs returns ids of transactions that never reached a terminal status
	// and whose latest event is older than staleBefore, oldest first
	ListPendingTransactionIDs(ctx context.Context, staleBefore time.Time, limit int) ([]string, error)

	// CreateMentorProfile creates a new mentor profile
	CreateMentorProfile(ctx context.Context, input CreateMentorProfileInput) (*schema.MentorProfile, error)
	// UpdateMentorProfile updates the profile identified by wallet address and username, nil if none
	UpdateMentorProfile(ctx context.Context, walletAddress, username string, input UpdateMentorProfileInput) (*schema.MentorProfile, error)
	// GetMentorProfile retrieves a profile by wallet address and username
	GetMentorProfile(ctx context.Context, walletAddress, username string) (*schema.MentorProfile, error)
	// GetMentorProfileByWallet retrieves a profile by wallet address
	GetMentorProfileByWallet(ctx context.Context, walletAddress string) (*schema.MentorProfile, error)
	// GetMentorProfileByUsername retrieves a profile by username
	GetMentorProfileByUsername(ctx context.Context, username string) (*schema.MentorProfile, error)
	// SoftDeleteMentorProfile marks a profile as deleted, reports whether a profile was deleted
	SoftDeleteMentorProfile(ctx context.Context, walletAddress, username string) (bool, error)

	// Ping checks the database connection
	Ping(ctx context.Context) error
}
