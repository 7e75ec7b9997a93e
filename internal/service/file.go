package service

import (
	"context"
	"io"
	"time"

	"cloudpix/files-api/internal/model"
	"cloudpix/files-api/internal/store"
	"cloudpix/files-api/pkg/apperr"
	"cloudpix/files-api/pkg/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Files orchestrates uploads and deletes across the object store, the
// metadata store and the share links hanging off each file.
type Files struct {
	Store *store.FileStore
	Links *ShareLinks
	Blobs BlobStore
}

func NewFiles(files *store.FileStore, links *ShareLinks, blobs BlobStore) *Files {
	return &Files{
		Store: files,
		Links: links,
		Blobs: blobs,
	}
}

// Upload writes the blob first, then the metadata record. If the metadata
// write fails the blob is orphaned; that's accepted and logged rather than
// compensated.
func (s *Files) Upload(ctx context.Context, userID, name, contentType string, size int64, r io.Reader) (*model.File, error) {
	fileID := uuid.NewString()
	key := userID + "/" + fileID + "/" + name

	blobURL, err := s.Blobs.Put(ctx, key, r, size, contentType)
	if err != nil {
		zap.L().Error("Failed to upload blob", zap.String("key", key), zap.Error(err))
		return nil, apperr.Wrap(apperr.Internal, "Failed to upload file", err)
	}

	file := &model.File{
		FileID:      fileID,
		UserID:      userID,
		Name:        name,
		BlobURL:     blobURL,
		Size:        size,
		ContentType: contentType,
		Status:      model.FileStatusActive,
		CreatedAt:   time.Now(),
	}

	if err := s.Store.Create(ctx, file); err != nil {
		zap.L().Warn("Metadata write failed after blob upload, blob orphaned", zap.String("key", key))
		return nil, err
	}

	return file, nil
}

// Delete removes a file the user owns. Order is fixed: best-effort blob
// delete, then the cascade over share links, then the metadata record.
// A blob-delete failure is swallowed so metadata cleanup still happens.
func (s *Files) Delete(ctx context.Context, fileID, userID string) error {
	file, err := s.Store.GetByFileID(ctx, fileID)
	if err != nil {
		return err
	}

	if file.UserID != userID {
		return apperr.New(apperr.Forbidden, "Unauthorized access to file")
	}

	key, err := util.BlobKeyFromURL(file.BlobURL)
	if err != nil {
		zap.L().Warn("Can't derive blob key, skipping blob delete", zap.String("fileID", fileID), zap.Error(err))
	} else if err := s.Blobs.Delete(ctx, key); err != nil {
		zap.L().Warn("Failed to delete blob, continuing with metadata deletion", zap.String("key", key), zap.Error(err))
	}

	if err := s.Links.CascadeDeleteForFile(ctx, fileID); err != nil {
		return err
	}

	if err := s.Store.HardDelete(ctx, fileID); err != nil {
		return err
	}

	zap.L().Info("File deleted", zap.String("fileID", fileID), zap.String("userID", userID))
	return nil
}

func (s *Files) Get(ctx context.Context, fileID, userID string) (*model.File, error) {
	file, err := s.Store.GetByFileID(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if file.UserID != userID {
		return nil, apperr.New(apperr.Forbidden, "Unauthorized access to file")
	}

	return file, nil
}

func (s *Files) List(ctx context.Context, userID string) ([]model.File, error) {
	return s.Store.ListByUser(ctx, userID)
}
