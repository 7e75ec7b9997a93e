package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"cloudpix/files-api/internal/model"
	"cloudpix/files-api/internal/store"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeBlobStore stands in for the S3 client and records the presign
// lifetimes it was asked for
type fakeBlobStore struct {
	blobs        map[string][]byte
	putErr       error
	deleteErr    error
	presignErr   error
	lastPresign  string
	lastLifetime time.Duration
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: map[string][]byte{}}
}

func (f *fakeBlobStore) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return "", err
	}

	f.blobs[key] = buf.Bytes()
	return "https://blobs.test/bucket/" + key, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.blobs, key)
	return nil
}

func (f *fakeBlobStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.blobs[key]
	return ok, nil
}

func (f *fakeBlobStore) PresignGet(_ context.Context, key string, lifetime time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}

	f.lastPresign = key
	f.lastLifetime = lifetime
	return "https://blobs.test/bucket/" + key + "?sig=presigned", nil
}

var errBlobDown = errors.New("object store unavailable")

type fixture struct {
	db    *gorm.DB
	blobs *fakeBlobStore
	files *Files
	links *ShareLinks
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.User{}, model.File{}, model.ShareLink{}))

	blobs := newFakeBlobStore()
	fileStore := store.NewFileStore(db)
	linkStore := store.NewShareLinkStore(db)

	links := NewShareLinks(fileStore, linkStore, blobs)
	files := NewFiles(fileStore, links, blobs)

	return &fixture{
		db:    db,
		blobs: blobs,
		files: files,
		links: links,
	}
}

// seedFile puts a blob and an active metadata record in place directly
func (fx *fixture) seedFile(t *testing.T, fileID, userID string) *model.File {
	t.Helper()

	key := userID + "/" + fileID + "/photo.png"
	fx.blobs.blobs[key] = []byte("png bytes")

	file := &model.File{
		FileID:      fileID,
		UserID:      userID,
		Name:        "photo.png",
		BlobURL:     "https://blobs.test/bucket/" + key,
		Size:        9,
		ContentType: "image/png",
		Status:      model.FileStatusActive,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, fx.db.Create(file).Error)

	return file
}
