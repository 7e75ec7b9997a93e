package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(NotFound, "file not found")
	assert.Equal(t, NotFound, KindOf(err))

	wrapped := fmt.Errorf("lookup failed: %w", err)
	assert.Equal(t, NotFound, KindOf(wrapped))

	assert.Equal(t, Internal, KindOf(errors.New("boom")))
	assert.Equal(t, Internal, KindOf(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(Internal, "failed to create share link", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to create share link", Message(err, "fallback"))
}

func TestMessageFallback(t *testing.T) {
	assert.Equal(t, "Internal server error", Message(errors.New("pq: deadlock"), "Internal server error"))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		NotFound:     http.StatusNotFound,
		Unauthorized: http.StatusUnauthorized,
		Forbidden:    http.StatusForbidden,
		Gone:         http.StatusGone,
		Conflict:     http.StatusConflict,
		Validation:   http.StatusBadRequest,
		Internal:     http.StatusInternalServerError,
	}

	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(New(kind, "x")), kind.String())
	}

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("unkinded")))
}
