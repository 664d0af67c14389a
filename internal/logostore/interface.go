package logostore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Store is the binary object store contract: store bytes, return a stable
// public URL. Overwrites under the same name are allowed (upsert).
type Store interface {
	Upload(ctx context.Context, fileName string, data []byte, contentType string) (string, error)
}

// Validation failures. Both are raised locally, before any network call.
var (
	ErrTooLarge        = errors.New("logo exceeds the maximum allowed size")
	ErrUnsupportedType = errors.New("logo must be a JPEG, PNG or WebP image")
)

// extByType doubles as the content-type allowlist.
var extByType = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

// Validate enforces the upload contract client-side. When contentType is
// empty the type is sniffed from the payload.
func Validate(data []byte, contentType string, maxBytes int64) error {
	if int64(len(data)) > maxBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, len(data), maxBytes)
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if _, ok := extByType[contentType]; !ok {
		return fmt.Errorf("%w: got %s", ErrUnsupportedType, contentType)
	}
	return nil
}

// FileName returns the fixed upsert name for a logo of the given content
// type: every upload of the same type lands on the same object.
func FileName(contentType string) string {
	ext, ok := extByType[contentType]
	if !ok {
		ext = "png"
	}
	return "logo." + ext
}
