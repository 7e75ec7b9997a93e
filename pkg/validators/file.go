package validators

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrFileTooLarge        = errors.New("file too large")
	ErrFileNameTooLong     = errors.New("file name is too long")
	ErrFileNameInvalid     = errors.New("file name contains invalid characters")
	ErrFileTypeUnsupported = errors.New("unsupported file type")
	ErrNoFile              = errors.New("no file provided")
)

const maxFileNameSize = 255

// FileValidator checks an uploaded file against the configured size and
// content-type limits. The declared Content-Type header is checked first
// because it's cheap, then the actual bytes are sniffed to catch clients
// lying about the type. Returns the opened file positioned at the start.
func FileValidator(fh *multipart.FileHeader) (int, multipart.File, error) {
	if fh == nil {
		return http.StatusBadRequest, nil, ErrNoFile
	}

	if len(fh.Filename) > maxFileNameSize {
		return http.StatusBadRequest, nil, ErrFileNameTooLong
	}

	// The blob key embeds the file name as its last path segment, so
	// separators would corrupt key derivation later
	if strings.ContainsAny(fh.Filename, "/\\?") || fh.Filename == "" {
		return http.StatusBadRequest, nil, ErrFileNameInvalid
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return http.StatusRequestEntityTooLarge, nil, ErrFileTooLarge
	}

	allowed := viper.GetStringSlice("upload.allowed_types")

	ct := fh.Header.Get("Content-Type")
	if len(allowed) > 0 && !typeAllowed(ct, allowed) {
		return http.StatusBadRequest, nil, ErrFileTypeUnsupported
	}

	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, nil, err
	}

	if len(allowed) > 0 {
		mime, err := mimetype.DetectReader(f)
		if err != nil {
			f.Close()
			return http.StatusInternalServerError, nil, err
		}

		if !typeAllowed(mime.String(), allowed) {
			f.Close()
			return http.StatusBadRequest, nil, ErrFileTypeUnsupported
		}
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, err
	}

	return 0, f, nil
}

func typeAllowed(ct string, allowed []string) bool {
	// mimetype can append parameters like "; charset=utf-8"
	ct, _, _ = strings.Cut(ct, ";")
	ct = strings.TrimSpace(ct)

	for _, a := range allowed {
		if strings.EqualFold(ct, a) {
			return true
		}
	}
	return false
}
