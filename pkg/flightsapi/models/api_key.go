package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// APIKeyRole represents the authorization tier granted by an API key
type APIKeyRole string

const (
	RoleClient APIKeyRole = "CLIENT"
	RoleAdmin  APIKeyRole = "ADMIN"
)

// DefaultRateLimit is declared on every key but not enforced yet
const DefaultRateLimit = 100

// APIKey represents an opaque bearer token with a role tier
type APIKey struct {
	ID        string     `gorm:"primarykey" json:"id"`
	Key       string     `gorm:"uniqueIndex;not null" json:"key"`
	ExpiresAt time.Time  `json:"expiresAt"`
	CreatedAt time.Time  `json:"createdAt"`
	Role      APIKeyRole `gorm:"type:varchar(10)" json:"role"`
	Enabled   bool       `json:"enabled"`
	RateLimit int        `json:"rateLimit"`
}

// NewAPIKey builds a key with a random token, enabled, expiring one month out.
// The role is fixed at creation and is the only authorization signal.
func NewAPIKey(role APIKeyRole) APIKey {
	now := time.Now()
	return APIKey{
		Key:       uuid.NewString(),
		ExpiresAt: now.AddDate(0, 1, 0),
		CreatedAt: now,
		Role:      role,
		Enabled:   true,
		RateLimit: DefaultRateLimit,
	}
}

// BeforeCreate assigns a store-generated ID when none is provided
func (k *APIKey) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}

// Expired reports whether the key's expiry is in the past
func (k *APIKey) Expired() bool {
	return k.ExpiresAt.Before(time.Now())
}
