package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"causematch-backend/internal/shared/storage/object"
	"causematch-backend/internal/shared/util"
)

const keyNamespace = "proposals"

// Store implements object.Store using the local filesystem. It mirrors the
// S3 store's key scheme so the rest of the app is storage-agnostic.
type Store struct {
	baseDir string
	now     func() time.Time
}

// New creates a new local object store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

// Configured reports whether the store can accept uploads.
func (s *Store) Configured() bool {
	return strings.TrimSpace(s.baseDir) != ""
}

// Upload writes the reader to disk under a timestamped key.
func (s *Store) Upload(ctx context.Context, fileName string, contentType string, r io.Reader) (string, string, error) {
	if !s.Configured() {
		return "", "", fmt.Errorf("local store not configured")
	}

	sanitized, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", "", fmt.Errorf("sanitize file name: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	key := fmt.Sprintf("%s/%d_%s", keyNamespace, s.now().UnixMilli(), sanitized)
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", "", fmt.Errorf("mkdir: %w", err)
	}

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", "", fmt.Errorf("write body: %w", err)
	}

	_ = contentType
	return key, "local://" + key, nil
}

// Open opens a stored object for reading.
func (s *Store) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := filepath.Clean(filepath.FromSlash(key))
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("invalid storage key")
	}

	return os.Open(filepath.Join(s.baseDir, clean))
}

var _ object.Store = (*Store)(nil)
