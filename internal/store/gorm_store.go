package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mentor-registry/mentor-relay/internal/domain"
	"github.com/mentor-registry/mentor-relay/internal/store/schema"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a store on top of an opened gorm connection (PostgreSQL or SQLite)
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// utc drops the location and anything below the microsecond so that both drivers round-trip the same value
func utc(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := utc(*t)
	return &v
}

// UpsertTransactionStatus inserts a status row or refreshes the mutable columns of an existing one
func (s *gormStore) UpsertTransactionStatus(ctx context.Context, status *schema.TransactionStatus) error {
	if status == nil {
		return errors.New("status is required")
	}
	if status.ID == "" || status.TransactionID == "" {
		return errors.New("status id and transaction id are required")
	}

	row := *status
	row.CreatedAt = utc(row.CreatedAt)
	row.EventTimestamp = utc(row.EventTimestamp)
	row.SentAt = utcPtr(row.SentAt)
	row.ConfirmedAt = utcPtr(row.ConfirmedAt)
	if row.Source == "" {
		row.Source = domain.SourceWebhook
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "sent_at", "confirmed_at", "event_timestamp"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert transaction status: %w", err)
	}

	return nil
}

// GetTransactionStatusesByHash returns all rows for a hash, most recent event first
func (s *gormStore) GetTransactionStatusesByHash(ctx context.Context, hash string) ([]schema.TransactionStatus, error) {
	var rows []schema.TransactionStatus
	err := s.db.WithContext(ctx).
		Where("hash = ?", hash).
		Order("event_timestamp DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction statuses by hash: %w", err)
	}
	return rows, nil
}

// GetTransactionStatusesByTransactionID returns all rows for a relayer transaction id, most recent event first
func (s *gormStore) GetTransactionStatusesByTransactionID(ctx context.Context, transactionID string) ([]schema.TransactionStatus, error) {
	var rows []schema.TransactionStatus
	err := s.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("event_timestamp DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction statuses by transaction id: %w", err)
	}
	return rows, nil
}

// GetLatestTransactionStatus returns the most recent row for a relayer transaction id
func (s *gormStore) GetLatestTransactionStatus(ctx context.Context, transactionID string) (*schema.TransactionStatus, error) {
	var row schema.TransactionStatus
	err := s.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		Order("event_timestamp DESC").
		Order("id DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest transaction status: %w", err)
	}
	return &row, nil
}

// ListPendingTransactionIDs returns ids of stale transactions that never reached a terminal status
func (s *gormStore) ListPendingTransactionIDs(ctx context.Context, staleBefore time.Time, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	terminal := make([]string, 0, len(domain.TerminalStatuses))
	for _, st := range domain.TerminalStatuses {
		terminal = append(terminal, string(st))
	}

	// A transaction is pending when its latest row is non-terminal and no terminal row exists at all
	newerOrTerminal := s.db.Table("transaction_statuses AS newer").
		Select("1").
		Where("newer.transaction_id = ts.transaction_id").
		Where("(newer.event_timestamp > ts.event_timestamp OR newer.status IN ?)", terminal)

	var ids []string
	err := s.db.WithContext(ctx).
		Table("transaction_statuses AS ts").
		Where("ts.status NOT IN ?", terminal).
		Where("ts.event_timestamp < ?", utc(staleBefore)).
		Where("NOT EXISTS (?)", newerOrTerminal).
		Group("ts.transaction_id").
		Order("MIN(ts.event_timestamp) ASC").
		Limit(limit).
		Pluck("ts.transaction_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transactions: %w", err)
	}

	return ids, nil
}

// CreateMentorProfile creates a new mentor profile
func (s *gormStore) CreateMentorProfile(ctx context.Context, input CreateMentorProfileInput) (*schema.MentorProfile, error) {
	now := utc(time.Now())
	profile := &schema.MentorProfile{
		ID:            uuid.New().String(),
		Username:      input.Username,
		WalletAddress: input.WalletAddress,
		FullName:      input.FullName,
		Bio:           input.Bio,
		Timezone:      input.Timezone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create mentor profile: %w", err)
	}
	return profile, nil
}

// UpdateMentorProfile updates the profile identified by wallet address and username
func (s *gormStore) UpdateMentorProfile(ctx context.Context, walletAddress, username string, input UpdateMentorProfileInput) (*schema.MentorProfile, error) {
	var profile *schema.MentorProfile

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.MentorProfile{}).
			Where("LOWER(wallet_address) = LOWER(?) AND username = ?", walletAddress, username).
			Updates(map[string]interface{}{
				"full_name":  input.FullName,
				"bio":        input.Bio,
				"timezone":   input.Timezone,
				"updated_at": utc(time.Now()),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		var updated schema.MentorProfile
		if err := tx.Where("LOWER(wallet_address) = LOWER(?) AND username = ?", walletAddress, username).
			First(&updated).Error; err != nil {
			return err
		}
		profile = &updated
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update mentor profile: %w", err)
	}

	return profile, nil
}

// GetMentorProfile retrieves a profile by wallet address and username
func (s *gormStore) GetMentorProfile(ctx context.Context, walletAddress, username string) (*schema.MentorProfile, error) {
	return s.firstProfile(ctx, "LOWER(wallet_address) = LOWER(?) AND username = ?", walletAddress, username)
}

// GetMentorProfileByWallet retrieves a profile by wallet address
func (s *gormStore) GetMentorProfileByWallet(ctx context.Context, walletAddress string) (*schema.MentorProfile, error) {
	return s.firstProfile(ctx, "LOWER(wallet_address) = LOWER(?)", walletAddress)
}

// GetMentorProfileByUsername retrieves a profile by username
func (s *gormStore) GetMentorProfileByUsername(ctx context.Context, username string) (*schema.MentorProfile, error) {
	return s.firstProfile(ctx, "username = ?", username)
}

func (s *gormStore) firstProfile(ctx context.Context, query string, args ...interface{}) (*schema.MentorProfile, error) {
	var profile schema.MentorProfile
	err := s.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mentor profile: %w", err)
	}
	return &profile, nil
}

// SoftDeleteMentorProfile marks a profile as deleted
func (s *gormStore) SoftDeleteMentorProfile(ctx context.Context, walletAddress, username string) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("LOWER(wallet_address) = LOWER(?) AND username = ?", walletAddress, username).
		Delete(&schema.MentorProfile{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete mentor profile: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Ping checks the database connection
func (s *gormStore) Ping(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
