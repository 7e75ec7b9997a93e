package store

import (
	"context"
	"errors"

	"cloudpix/files-api/internal/model"
	"cloudpix/files-api/pkg/apperr"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ShareLinkStore struct {
	DB *gorm.DB
}

func NewShareLinkStore(db *gorm.DB) *ShareLinkStore {
	return &ShareLinkStore{DB: db}
}

func (s *ShareLinkStore) GetByLinkID(ctx context.Context, linkID string) (*model.ShareLink, error) {
	var link model.ShareLink

	err := s.DB.WithContext(ctx).
		Where("link_id = ?", linkID).
		First(&link).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "Share link not found")
		}

		zap.L().Error("Failed to get share link", zap.String("linkID", linkID), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "Failed to get share link", err)
	}

	return &link, nil
}

// ListActiveByFileID returns the file's share links that haven't been
// revoked. Expired links are still included; expiry is a validity concern,
// not a storage one.
func (s *ShareLinkStore) ListActiveByFileID(ctx context.Context, fileID string) ([]model.ShareLink, error) {
	var links []model.ShareLink

	err := s.DB.WithContext(ctx).
		Where("file_id = ? AND is_revoked = ?", fileID, false).
		Find(&links).
		Error
	if err != nil {
		zap.L().Error("Failed to list share links", zap.String("fileID", fileID), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "Failed to get share links for file", err)
	}

	return links, nil
}

func (s *ShareLinkStore) Create(ctx context.Context, link *model.ShareLink) error {
	err := s.DB.WithContext(ctx).Create(link).Error
	if err != nil {
		zap.L().Error("Failed to create share link", zap.String("linkID", link.LinkID), zap.Error(err))
		return apperr.Wrap(apperr.Internal, "Failed to create share link", err)
	}

	return nil
}

// Revoke marks a link revoked. Revoking an already-revoked link re-persists
// the same state and is not an error.
func (s *ShareLinkStore) Revoke(ctx context.Context, linkID string) error {
	res := s.DB.WithContext(ctx).
		Model(model.ShareLink{}).
		Where("link_id = ?", linkID).
		Update("is_revoked", true)
	if res.Error != nil {
		zap.L().Error("Failed to revoke share link", zap.String("linkID", linkID), zap.Error(res.Error))
		return apperr.Wrap(apperr.Internal, "Failed to revoke share link", res.Error)
	}

	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "Share link not found")
	}

	return nil
}

// IncrementAccess bumps the access counter in a single UPDATE so concurrent
// resolves don't lose counts to read-modify-write races.
func (s *ShareLinkStore) IncrementAccess(ctx context.Context, linkID string) error {
	res := s.DB.WithContext(ctx).
		Model(model.ShareLink{}).
		Where("link_id = ?", linkID).
		UpdateColumn("access_count", gorm.Expr("access_count + ?", 1))
	if res.Error != nil {
		zap.L().Error("Failed to increment access count", zap.String("linkID", linkID), zap.Error(res.Error))
		return apperr.Wrap(apperr.Internal, "Failed to increment access count", res.Error)
	}

	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "Share link not found")
	}

	return nil
}

// DeleteByLinkID hard-deletes a link record. Absent links are a no-op so
// cascade deletes can be retried after partial failures.
func (s *ShareLinkStore) DeleteByLinkID(ctx context.Context, linkID string) error {
	err := s.DB.WithContext(ctx).
		Where("link_id = ?", linkID).
		Delete(model.ShareLink{}).
		Error
	if err != nil {
		zap.L().Error("Failed to delete share link", zap.String("linkID", linkID), zap.Error(err))
		return apperr.Wrap(apperr.Internal, "Failed to delete share link", err)
	}

	return nil
}
