package dto

import (
	"time"

	"github.com/mentor-registry/mentor-relay/internal/store/schema"
)

// MentorProfile is a mentor profile as returned by the API
type MentorProfile struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	WalletAddress string    `json:"walletAddress"`
	FullName      string    `json:"fullName"`
	Bio           *string   `json:"bio"`
	Timezone      string    `json:"timezone"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// MapMentorProfileToDTO maps a profile row to its API representation
func MapMentorProfileToDTO(profile *schema.MentorProfile) *MentorProfile {
	if profile == nil {
		return nil
	}
	return &MentorProfile{
		ID:            profile.ID,
		Username:      profile.Username,
		WalletAddress: profile.WalletAddress,
		FullName:      profile.FullName,
		Bio:           profile.Bio,
		Timezone:      profile.Timezone,
		CreatedAt:     profile.CreatedAt.UTC(),
		UpdatedAt:     profile.UpdatedAt.UTC(),
	}
}

// RegisterMentorRequest is the body of POST /api/mentor/register
type RegisterMentorRequest struct {
	Data          string  `json:"data"`
	Username      string  `json:"username"`
	WalletAddress string  `json:"walletAddress"`
	FullName      string  `json:"fullName"`
	Bio           *string `json:"bio"`
	Timezone      string  `json:"timezone"`
}

// HasProfile reports whether the request carries enough data to save a profile
func (r RegisterMentorRequest) HasProfile() bool {
	return r.Username != "" && r.WalletAddress != "" && r.FullName != "" && r.Timezone != ""
}

// RegisterMentorResponse is the body of a successful registration
type RegisterMentorResponse struct {
	// ID is the transaction hash, null when the relayer had not sent the transaction yet
	ID             *string `json:"id"`
	TxID           string  `json:"txId"`
	Status         string  `json:"status"`
	ConfirmedAt    *string `json:"confirmed_at"`
	CreatedAt      *string `json:"created_at"`
	ProfileCreated bool    `json:"profileCreated"`
}

// SaveMentorProfileRequest is the body of PATCH /api/mentor/:walletAddress
type SaveMentorProfileRequest struct {
	FullName string  `json:"fullName"`
	Bio      *string `json:"bio"`
	Timezone string  `json:"timezone"`
	Username string  `json:"username"`
}

// MessageResponse carries a human readable outcome
type MessageResponse struct {
	Message string `json:"message"`
}

// WebhookResponse is the body returned to the relayer for every delivery
type WebhookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
