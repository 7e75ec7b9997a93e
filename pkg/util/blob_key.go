// Package util contains any functions used across the application that don't match
// any other package
package util

import (
	"errors"
	"net/url"
	"strings"
)

var ErrBadBlobURL = errors.New("blob URL has an unexpected shape")

// BlobKeyFromURL derives the object-store key from a stored blob URL.
// Blob URLs look like {endpoint}/{bucket}/{userID}/{fileID}/{fileName},
// possibly with signing query parameters appended, so the key is always
// the last three path segments with the query stripped.
func BlobKeyFromURL(blobURL string) (string, error) {
	u, err := url.Parse(blobURL)
	if err != nil {
		return "", ErrBadBlobURL
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 3 {
		return "", ErrBadBlobURL
	}

	return strings.Join(parts[len(parts)-3:], "/"), nil
}
