package scratch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/segmentio/ksuid"
)

// Dir is a per-request scratch directory. The token doubles as the
// directory name and as the unique filename prefix inside it, so no two
// requests can ever collide even when they download the same video.
type Dir struct {
	Token string
	Path  string
}

// New creates a fresh scratch directory under baseDir.
func New(baseDir string) (*Dir, error) {
	token := ksuid.New().String()
	path := filepath.Join(baseDir, token)

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create scratch dir: %w", err)
	}

	return &Dir{Token: token, Path: path}, nil
}

// Remove deletes the scratch directory and everything in it. Safe to call
// more than once.
func (d *Dir) Remove() error {
	return os.RemoveAll(d.Path)
}
