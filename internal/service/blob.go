// Package service contains the domain services sitting between the route
// handlers and the entity stores
package service

import (
	"context"
	"io"
	"time"
)

// BlobStore is the slice of the object-store client the services need.
// *aws.S3Client satisfies it; tests swap in a fake.
type BlobStore interface {
	// Put stores a blob under key and returns its URL
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// PresignGet returns a read-only URL valid for the given lifetime
	PresignGet(ctx context.Context, key string, lifetime time.Duration) (string, error)
}
