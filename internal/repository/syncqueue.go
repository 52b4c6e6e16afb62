package repository

import (
	"context"

	"folio/internal/models"

	"gorm.io/gorm"
)

// SyncQueueRepository is the durable queue of file paths awaiting a push to the
// remote mirror.
type SyncQueueRepository interface {
	Enqueue(ctx context.Context, path string) error
	Pending(ctx context.Context) ([]models.SyncEntry, error)
	Remove(ctx context.Context, ids []uint) error
}

type syncQueueRepository struct {
	db *gorm.DB
}

// NewSyncQueueRepository returns a new SyncQueueRepository implementation.
func NewSyncQueueRepository(db *gorm.DB) SyncQueueRepository {
	return &syncQueueRepository{db: db}
}

func (r *syncQueueRepository) Enqueue(ctx context.Context, path string) error {
	if err := r.db.WithContext(ctx).Create(&models.SyncEntry{Path: path}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *syncQueueRepository) Pending(ctx context.Context) ([]models.SyncEntry, error) {
	entries := []models.SyncEntry{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *syncQueueRepository) Remove(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&models.SyncEntry{}, ids).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
