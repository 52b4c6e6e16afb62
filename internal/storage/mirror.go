package storage

import (
	"context"
	"io"
	"log/slog"

	"folio/internal/middleware"
	"folio/internal/repository"
)

// MirrorStore writes blobs to local disk like LocalStore and additionally
// enqueues each stored file for the next remote-mirror push. The enqueue is
// durable (a sync_entries row) so a crash between write and push loses nothing.
type MirrorStore struct {
	*LocalStore
	queue  repository.SyncQueueRepository
	notify func()
}

// NewMirrorStore layers mirror queueing over a LocalStore. notify wakes the
// push task after a write; it may be nil.
func NewMirrorStore(local *LocalStore, queue repository.SyncQueueRepository, notify func()) *MirrorStore {
	return &MirrorStore{LocalStore: local, queue: queue, notify: notify}
}

// Name implements Store.
func (s *MirrorStore) Name() string { return "mirror" }

// Save implements Store. A queue failure does not fail the upload: the blob is
// already durable locally and the next full push sweep is best effort anyway.
func (s *MirrorStore) Save(ctx context.Context, r io.Reader, originalFilename string) (string, error) {
	url, name, err := s.saveFile(ctx, r, originalFilename)
	if err != nil {
		return "", err
	}

	if err := s.queue.Enqueue(ctx, name); err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to enqueue blob for mirror push",
			slog.String("path", name), slog.String("error", err.Error()))
	} else if s.notify != nil {
		s.notify()
	}

	return url, nil
}
