package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlobKeyFromURL(t *testing.T) {
	key, err := BlobKeyFromURL("https://s3.eu-central-1.amazonaws.com/my-bucket/u123/f456/report.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "u123/f456/report.pdf", key)
}

func TestBlobKeyFromURLStripsQuery(t *testing.T) {
	key, err := BlobKeyFromURL("https://acc.r2.cloudflarestorage.com/files/u1/f1/cat.png?X-Amz-Signature=abc&X-Amz-Expires=3600")
	assert.NoError(t, err)
	assert.Equal(t, "u1/f1/cat.png", key)
}

func TestBlobKeyFromURLTooShort(t *testing.T) {
	_, err := BlobKeyFromURL("https://host/only")
	assert.ErrorIs(t, err, ErrBadBlobURL)
}
