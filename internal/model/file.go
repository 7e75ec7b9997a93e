// Package model defines database models
package model

import "time"

const (
	FileStatusActive  = "active"
	FileStatusDeleted = "deleted"
)

type File struct {
	// Surrogate key owned by the database. All domain lookups go through
	// FileID because the two are not the same thing
	ID uint `gorm:"primaryKey;autoIncrement" json:"-"`

	FileID string `gorm:"uniqueIndex;not null" json:"fileId"`
	UserID string `gorm:"index;not null" json:"userId"`

	// Original file name as uploaded. The blob lives under
	// {userID}/{fileID}/{name} so equal names across users never collide
	Name string `json:"fileName"`

	// Full URL of the blob in object storage. The object key is derived
	// from this when the blob needs to be deleted or presigned
	BlobURL string `json:"blobUrl"`

	Size        int64  `json:"fileSize"`
	ContentType string `json:"contentType"`

	// Either "active" or "deleted". Only ever flips active -> deleted
	Status string `gorm:"default:active" json:"status"`

	CreatedAt time.Time `json:"uploadDate"`
}
