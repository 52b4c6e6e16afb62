package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// UploadsMount is the static route under which local uploads are served.
const UploadsMount = "/uploads"

// LocalStore persists blobs under a directory exposed read-only over HTTP.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates a LocalStore rooted at dir. Returned URLs are
// <baseURL>/uploads/<name>.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Name implements Store.
func (s *LocalStore) Name() string { return "local" }

// Save implements Store.
func (s *LocalStore) Save(ctx context.Context, r io.Reader, originalFilename string) (string, error) {
	url, _, err := s.saveFile(ctx, r, originalFilename)
	return url, err
}

// saveFile writes the blob and also returns the stored file name for backends
// layered on top of local disk.
func (s *LocalStore) saveFile(ctx context.Context, r io.Reader, originalFilename string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	name := blobName(originalFilename)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("create blob file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", "", fmt.Errorf("write blob file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("close blob file: %w", err)
	}

	return s.baseURL + UploadsMount + "/" + name, name, nil
}

// Healthy implements Store.
func (s *LocalStore) Healthy(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("upload dir unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("upload path %s is not a directory", s.dir)
	}
	return nil
}

// Dir returns the root directory blobs are written to.
func (s *LocalStore) Dir() string { return s.dir }
