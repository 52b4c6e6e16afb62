package storage

import (
	"context"
	"fmt"

	"folio/internal/config"
	"folio/internal/repository"
)

// Build constructs the configured Store and, for the mirror backend, its
// Syncer. The Syncer is returned unstarted; it is nil for other backends.
func Build(ctx context.Context, cfg *config.Config, queue repository.SyncQueueRepository) (Store, *Syncer, error) {
	switch cfg.StorageBackend {
	case config.StorageS3:
		store, err := NewS3Store(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil

	case config.StorageLocal:
		store, err := NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil

	case config.StorageMirror:
		local, err := NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
		if err != nil {
			return nil, nil, err
		}
		syncer := NewSyncer(cfg.UploadDir, cfg.MirrorRemoteURL, cfg.MirrorAccessToken, queue, cfg.MirrorInterval())
		return NewMirrorStore(local, queue, syncer.Notify), syncer, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
