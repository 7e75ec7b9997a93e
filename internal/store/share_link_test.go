package store

import (
	"context"
	"testing"
	"time"

	"cloudpix/files-api/internal/model"
	"cloudpix/files-api/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLink(linkID, fileID, userID string) *model.ShareLink {
	return &model.ShareLink{
		LinkID:     linkID,
		FileID:     fileID,
		UserID:     userID,
		ExpiryDate: time.Now(),
		CreatedAt:  time.Now(),
	}
}

func TestShareLinkStoreCreateAndGet(t *testing.T) {
	s := NewShareLinkStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestLink("l1", "f1", "u1")))

	got, err := s.GetByLinkID(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, "f1", got.FileID)
	assert.False(t, got.IsRevoked)
	assert.Zero(t, got.AccessCount)
	assert.Nil(t, got.TTL)
}

func TestShareLinkStoreGetMissing(t *testing.T) {
	s := NewShareLinkStore(newTestDB(t))

	_, err := s.GetByLinkID(context.Background(), "nope")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestShareLinkStoreListActiveByFileID(t *testing.T) {
	s := NewShareLinkStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestLink("l1", "f1", "u1")))
	require.NoError(t, s.Create(ctx, newTestLink("l2", "f1", "u1")))
	require.NoError(t, s.Create(ctx, newTestLink("l3", "f2", "u1")))
	require.NoError(t, s.Revoke(ctx, "l2"))

	links, err := s.ListActiveByFileID(ctx, "f1")
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "l1", links[0].LinkID)
}

func TestShareLinkStoreRevoke(t *testing.T) {
	s := NewShareLinkStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestLink("l1", "f1", "u1")))
	require.NoError(t, s.Revoke(ctx, "l1"))

	got, err := s.GetByLinkID(ctx, "l1")
	require.NoError(t, err)
	assert.True(t, got.IsRevoked)

	// Revoking twice re-persists the same state
	require.NoError(t, s.Revoke(ctx, "l1"))

	err = s.Revoke(ctx, "missing")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestShareLinkStoreIncrementAccess(t *testing.T) {
	s := NewShareLinkStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestLink("l1", "f1", "u1")))

	require.NoError(t, s.IncrementAccess(ctx, "l1"))
	require.NoError(t, s.IncrementAccess(ctx, "l1"))

	got, err := s.GetByLinkID(ctx, "l1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.AccessCount)

	err = s.IncrementAccess(ctx, "missing")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestShareLinkStoreDeleteIdempotent(t *testing.T) {
	s := NewShareLinkStore(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, newTestLink("l1", "f1", "u1")))
	require.NoError(t, s.DeleteByLinkID(ctx, "l1"))

	_, err := s.GetByLinkID(ctx, "l1")
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))

	require.NoError(t, s.DeleteByLinkID(ctx, "l1"))
}
