// Package store implements the entity stores on top of the metadata database
package store

import (
	"context"
	"errors"

	"cloudpix/files-api/internal/model"
	"cloudpix/files-api/pkg/apperr"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FileStore struct {
	DB *gorm.DB
}

func NewFileStore(db *gorm.DB) *FileStore {
	return &FileStore{DB: db}
}

// GetByFileID looks a file up by its domain identifier, not the surrogate
// database key
func (s *FileStore) GetByFileID(ctx context.Context, fileID string) (*model.File, error) {
	var file model.File

	err := s.DB.WithContext(ctx).
		Where("file_id = ?", fileID).
		First(&file).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "File not found")
		}

		zap.L().Error("Failed to get file", zap.String("fileID", fileID), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "Failed to get file", err)
	}

	return &file, nil
}

func (s *FileStore) ListByUser(ctx context.Context, userID string) ([]model.File, error) {
	var files []model.File

	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&files).
		Error
	if err != nil {
		zap.L().Error("Failed to list user files", zap.String("userID", userID), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "Failed to list files", err)
	}

	return files, nil
}

func (s *FileStore) Create(ctx context.Context, file *model.File) error {
	err := s.DB.WithContext(ctx).Create(file).Error
	if err != nil {
		zap.L().Error("Failed to create file record", zap.String("fileID", file.FileID), zap.Error(err))
		return apperr.Wrap(apperr.Internal, "Failed to create file", err)
	}

	return nil
}

func (s *FileStore) Save(ctx context.Context, file *model.File) error {
	err := s.DB.WithContext(ctx).Save(file).Error
	if err != nil {
		zap.L().Error("Failed to save file record", zap.String("fileID", file.FileID), zap.Error(err))
		return apperr.Wrap(apperr.Internal, "Failed to update file", err)
	}

	return nil
}

// SoftDelete flips an active file to deleted. The status only ever moves in
// that direction, so rows already deleted are left untouched.
func (s *FileStore) SoftDelete(ctx context.Context, fileID string) error {
	res := s.DB.WithContext(ctx).
		Model(model.File{}).
		Where("file_id = ? AND status = ?", fileID, model.FileStatusActive).
		Update("status", model.FileStatusDeleted)
	if res.Error != nil {
		zap.L().Error("Failed to soft delete file", zap.String("fileID", fileID), zap.Error(res.Error))
		return apperr.Wrap(apperr.Internal, "Failed to delete file", res.Error)
	}

	if res.RowsAffected == 0 {
		return apperr.New(apperr.NotFound, "File not found")
	}

	return nil
}

// HardDelete removes the metadata record. Deleting an absent file is a no-op
// so a failed delete flow can be retried.
func (s *FileStore) HardDelete(ctx context.Context, fileID string) error {
	err := s.DB.WithContext(ctx).
		Where("file_id = ?", fileID).
		Delete(model.File{}).
		Error
	if err != nil {
		zap.L().Error("Failed to hard delete file", zap.String("fileID", fileID), zap.Error(err))
		return apperr.Wrap(apperr.Internal, "Failed to delete file", err)
	}

	return nil
}
