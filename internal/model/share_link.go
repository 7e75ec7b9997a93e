package model

import "time"

// ShareLink grants time-boxed, unauthenticated download access to one file.
// LinkID doubles as the public token handed out to anyone.
type ShareLink struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"-"`

	LinkID string `gorm:"uniqueIndex;not null" json:"linkId"`
	FileID string `gorm:"index;not null" json:"fileId"`

	// Copied from the owning file at creation time and trusted afterwards.
	// Revocation checks against this, not against the file record
	UserID string `gorm:"not null" json:"userId"`

	// Always enforced: a link is invalid once this instant has passed.
	// Links created with no expirationDays hold their creation instant
	// here, so they are already past expiry
	ExpiryDate time.Time `json:"expiryDate"`

	AccessCount int64 `json:"accessCount"`
	IsRevoked   bool  `json:"isRevoked"`

	// Advisory seconds-until-expiry hint for a storage-level expiry sweep.
	// nil when no expirationDays was given. Not used for validity checks
	TTL *int64 `json:"ttl,omitempty"`

	CreatedAt time.Time `json:"createdDate"`
}
