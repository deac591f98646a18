package models

import (
	"time"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// OAuthProvider is the closed set of supported social identity providers.
type OAuthProvider string

const (
	ProviderGoogle OAuthProvider = "google"
	ProviderApple  OAuthProvider = "apple"
)

func (p OAuthProvider) Valid() bool {
	return p == ProviderGoogle || p == ProviderApple
}

// User is a storefront account. Email is stored lowercased and unique.
// A user carries at most one OAuth linkage; re-linking overwrites it.
type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Email         string         `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password      string         `gorm:"not null" json:"-"`
	Role          Role           `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	OAuthProvider *OAuthProvider `gorm:"column:oauth_provider;type:varchar(20)" json:"oauth_provider,omitempty"`
	OAuthID       *string        `gorm:"column:oauth_id;size:255;index" json:"-"`
	ProfileImage  string         `gorm:"size:512" json:"profile_image,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
