package logostore_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thunderfc/clubsync/internal/logostore"
)

func TestValidateEnforcesSizeCeiling(t *testing.T) {
	maxBytes := int64(5 << 20)

	err := logostore.Validate(bytes.Repeat([]byte{0x01}, 6<<20), "image/png", maxBytes)
	assert.ErrorIs(t, err, logostore.ErrTooLarge)

	err = logostore.Validate([]byte{0x01, 0x02}, "image/png", maxBytes)
	assert.NoError(t, err)
}

func TestValidateEnforcesTypeAllowlist(t *testing.T) {
	maxBytes := int64(5 << 20)

	for _, contentType := range []string{"image/jpeg", "image/jpg", "image/png", "image/webp"} {
		assert.NoError(t, logostore.Validate([]byte{0x01}, contentType, maxBytes), contentType)
	}
	for _, contentType := range []string{"image/gif", "image/svg+xml", "application/pdf", "text/html"} {
		assert.ErrorIs(t, logostore.Validate([]byte{0x01}, contentType, maxBytes), logostore.ErrUnsupportedType, contentType)
	}
}

func TestValidateSniffsMissingContentType(t *testing.T) {
	// PNG magic bytes; http.DetectContentType recognizes them.
	png := append([]byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 16)...)
	assert.NoError(t, logostore.Validate(png, "", 5<<20))

	assert.ErrorIs(t, logostore.Validate([]byte("<html></html>"), "", 5<<20), logostore.ErrUnsupportedType)
}

func TestFileNameIsStablePerType(t *testing.T) {
	assert.Equal(t, "logo.png", logostore.FileName("image/png"))
	assert.Equal(t, "logo.jpg", logostore.FileName("image/jpeg"))
	assert.Equal(t, "logo.webp", logostore.FileName("image/webp"))
}

func TestLocalUploadIsUpsert(t *testing.T) {
	dir := t.TempDir()
	store, err := logostore.NewLocal(dir, "http://localhost:8080")
	require.NoError(t, err)

	url, err := store.Upload(context.Background(), "logo.png", []byte("first"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/logos/logo.png", url)

	// Second upload under the same name overwrites, same URL.
	url2, err := store.Upload(context.Background(), "logo.png", []byte("second"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, url, url2)

	data, err := os.ReadFile(filepath.Join(dir, "logo.png"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}
