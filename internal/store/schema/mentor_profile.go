package schema

import (
	"time"

	"gorm.io/gorm"
)

// MentorProfile represents the mentor_profiles table - off-chain profile data of a registered mentor
type MentorProfile struct {
	ID            string         `gorm:"column:id;primaryKey;type:varchar(36)"`
	Username      string         `gorm:"column:username;not null;index:idx_mentor_profiles_username"`
	WalletAddress string         `gorm:"column:wallet_address;not null;index:idx_mentor_profiles_wallet_address"`
	FullName      string         `gorm:"column:full_name;not null"`
	Bio           *string        `gorm:"column:bio;type:text"`
	Timezone      string         `gorm:"column:timezone;not null"`
	CreatedAt     time.Time      `gorm:"column:created_at;not null"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;not null"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

// TableName specifies the table name for the MentorProfile model
func (MentorProfile) TableName() string {
	return "mentor_profiles"
}
