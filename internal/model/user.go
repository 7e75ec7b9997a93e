package model

import "time"

type User struct {
	ID           string     `gorm:"primaryKey" json:"userId"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	CreatedAt    time.Time  `json:"createdDate"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}
