package logostore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

var _ Store = (*Local)(nil)

// Local stores logos on the local filesystem, served back under
// baseURL/logos/. It exists so a single-node deployment needs no bucket;
// the Store contract is the same either way.
type Local struct {
	dir     string
	baseURL string
}

// NewLocal creates a local logo store rooted at dir.
func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create logo directory %s: %w", dir, err)
	}
	return &Local{dir: dir, baseURL: baseURL}, nil
}

// Upload writes the bytes under fileName, overwriting any previous logo
// with that name, and returns the public URL.
func (l *Local) Upload(_ context.Context, fileName string, data []byte, _ string) (string, error) {
	path := filepath.Join(l.dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write logo %s: %w", path, err)
	}
	url := l.baseURL + "/logos/" + fileName
	log.Info("Stored team logo", "path", path, "url", url)
	return url, nil
}

// Dir returns the directory logos are written to, for static serving.
func (l *Local) Dir() string {
	return l.dir
}
