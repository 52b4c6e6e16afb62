// Package storage abstracts media blob persistence behind a single Store
// interface with interchangeable backends: S3, local disk, and local disk
// mirrored to a remote git repository.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Store saves an opaque blob and returns a stable, publicly fetchable URL.
type Store interface {
	// Save persists the blob read from r. originalFilename is used only to
	// preserve the extension; the stored name is timestamp-derived.
	Save(ctx context.Context, r io.Reader, originalFilename string) (string, error)

	// Healthy reports whether the backend is usable, for readiness checks.
	Healthy(ctx context.Context) error

	// Name identifies the backend in logs and metrics.
	Name() string
}

// blobName derives a collision-avoiding object name from the current time,
// preserving the original extension.
func blobName(originalFilename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalFilename)))
	return fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
}
