package service

import (
	"context"
	"time"

	"cloudpix/files-api/internal/model"
	"cloudpix/files-api/internal/store"
	"cloudpix/files-api/pkg/apperr"
	"cloudpix/files-api/pkg/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ShareLinks owns the share-link lifecycle: creation with computed expiry,
// validity checks, resolving a link into a time-boxed download URL, revocation
// and the cascade delete run when a file goes away.
type ShareLinks struct {
	Files *store.FileStore
	Links *store.ShareLinkStore
	Blobs BlobStore
}

func NewShareLinks(files *store.FileStore, links *store.ShareLinkStore, blobs BlobStore) *ShareLinks {
	return &ShareLinks{
		Files: files,
		Links: links,
		Blobs: blobs,
	}
}

// Resolved is what an anonymous visitor gets back for a valid link
type Resolved struct {
	File        *model.File      `json:"file"`
	ShareLink   *model.ShareLink `json:"shareLink"`
	DownloadURL string           `json:"downloadUrl"`
}

// Create makes a new share link for a file the requesting user owns.
// expirationDays == 0 stores the creation instant as the expiry and no TTL
// hint; validation treats that like any other past expiry.
func (s *ShareLinks) Create(ctx context.Context, fileID, userID string, expirationDays int) (*model.ShareLink, error) {
	if expirationDays < 0 {
		return nil, apperr.New(apperr.Validation, "expirationDays can't be negative")
	}

	file, err := s.Files.GetByFileID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if file.UserID != userID {
		return nil, apperr.New(apperr.Forbidden, "Unauthorized access to file")
	}

	if file.Status != model.FileStatusActive {
		return nil, apperr.New(apperr.Conflict, "Cannot share deleted file")
	}

	now := time.Now()

	link := &model.ShareLink{
		LinkID:     uuid.NewString(),
		FileID:     fileID,
		UserID:     file.UserID,
		ExpiryDate: now,
		CreatedAt:  now,
	}

	if expirationDays > 0 {
		// Calendar-day arithmetic so a "7 day" link spans 7 days even
		// across DST transitions
		expiry := now.AddDate(0, 0, expirationDays)
		link.ExpiryDate = expiry

		if ttl := int64(expiry.Sub(now).Seconds()); ttl > 0 {
			link.TTL = &ttl
		}
	}

	if err := s.Links.Create(ctx, link); err != nil {
		return nil, err
	}

	zap.L().Info("Share link created",
		zap.String("linkID", link.LinkID),
		zap.String("fileID", fileID),
		zap.Int("expirationDays", expirationDays),
	)

	return link, nil
}

// Validate reports whether a link is currently usable. Pure, no I/O.
// Revocation always wins; any link whose expiry date is strictly before now
// is invalid. Links created without expirationDays carry the creation
// instant as their expiry, so they stop validating the moment the clock
// moves past it.
func Validate(link *model.ShareLink, now time.Time) bool {
	if link.IsRevoked {
		return false
	}

	return !link.ExpiryDate.Before(now)
}

// Resolve turns a public link token into the file record plus a presigned
// download URL. Every successful resolve bumps the access counter, owner or
// not.
func (s *ShareLinks) Resolve(ctx context.Context, linkID string) (*Resolved, error) {
	link, err := s.Links.GetByLinkID(ctx, linkID)
	if err != nil {
		return nil, err
	}

	if !Validate(link, time.Now()) {
		return nil, apperr.New(apperr.Gone, "Share link is expired or revoked")
	}

	file, err := s.Files.GetByFileID(ctx, link.FileID)
	if err != nil {
		return nil, err
	}

	if file.Status != model.FileStatusActive {
		return nil, apperr.New(apperr.NotFound, "File not found or deleted")
	}

	key, err := util.BlobKeyFromURL(file.BlobURL)
	if err != nil {
		zap.L().Error("Stored blob URL is malformed", zap.String("fileID", file.FileID), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "Failed to access share link", err)
	}

	downloadURL, err := s.Blobs.PresignGet(ctx, key, presignLifetime(link, time.Now()))
	if err != nil {
		zap.L().Error("Failed to presign download URL", zap.String("linkID", linkID), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "Failed to generate download URL", err)
	}

	if err := s.Links.IncrementAccess(ctx, link.LinkID); err != nil {
		return nil, err
	}
	link.AccessCount++

	return &Resolved{
		File:        file,
		ShareLink:   link,
		DownloadURL: downloadURL,
	}, nil
}

// presignLifetime matches the download credential to the remaining link
// validity, clamped to at least 1 hour and at most 24 hours
func presignLifetime(link *model.ShareLink, now time.Time) time.Duration {
	hours := int(link.ExpiryDate.Sub(now).Hours())
	if hours < 1 {
		hours = 1
	}
	if hours > 24 {
		hours = 24
	}

	return time.Duration(hours) * time.Hour
}

// Revoke turns a link off for good. Only the user recorded on the link may
// do it; revoking twice is a no-op.
func (s *ShareLinks) Revoke(ctx context.Context, linkID, userID string) error {
	link, err := s.Links.GetByLinkID(ctx, linkID)
	if err != nil {
		return err
	}

	if link.UserID != userID {
		return apperr.New(apperr.Forbidden, "Unauthorized access")
	}

	if err := s.Links.Revoke(ctx, linkID); err != nil {
		return err
	}

	zap.L().Info("Share link revoked", zap.String("linkID", linkID))
	return nil
}

// ListByFile returns all non-revoked links of a file the user owns
func (s *ShareLinks) ListByFile(ctx context.Context, fileID, userID string) ([]model.ShareLink, error) {
	file, err := s.Files.GetByFileID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if file.UserID != userID {
		return nil, apperr.New(apperr.Forbidden, "Unauthorized access to file")
	}

	return s.Links.ListActiveByFileID(ctx, fileID)
}

// CascadeDeleteForFile hard-deletes every non-revoked link of a file. The
// fan-out isn't atomic: a failure partway through leaves earlier links gone,
// but each per-link delete is idempotent so the whole cascade can simply be
// run again.
func (s *ShareLinks) CascadeDeleteForFile(ctx context.Context, fileID string) error {
	links, err := s.Links.ListActiveByFileID(ctx, fileID)
	if err != nil {
		return err
	}

	for _, link := range links {
		if err := s.Links.DeleteByLinkID(ctx, link.LinkID); err != nil {
			return err
		}
	}

	return nil
}
