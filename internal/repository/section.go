package repository

import (
	"context"

	"folio/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SectionRepository defines persistence operations for portfolio sections.
type SectionRepository interface {
	Save(ctx context.Context, section *models.Section) error
	GetAll(ctx context.Context, userID uint) (map[string]string, error)
}

type sectionRepository struct {
	db *gorm.DB
}

// NewSectionRepository returns a new SectionRepository implementation.
func NewSectionRepository(db *gorm.DB) SectionRepository {
	return &sectionRepository{db: db}
}

// Save upserts on the (user_id, name) pair: last write wins for content.
func (r *sectionRepository) Save(ctx context.Context, section *models.Section) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(section).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// GetAll returns every section for a user as a name-to-content map, empty if none.
func (r *sectionRepository) GetAll(ctx context.Context, userID uint) (map[string]string, error) {
	var sections []models.Section
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&sections).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	out := make(map[string]string, len(sections))
	for _, s := range sections {
		out[s.Name] = s.Content
	}
	return out, nil
}
