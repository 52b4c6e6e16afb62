package service

import (
	"context"

	"folio/internal/models"
	"folio/internal/repository"
	"folio/internal/validation"
)

// SectionService handles portfolio section upserts and reads.
type SectionService struct {
	repo repository.SectionRepository
}

// NewSectionService creates a SectionService.
func NewSectionService(repo repository.SectionRepository) *SectionService {
	return &SectionService{repo: repo}
}

// Save upserts the (user, name) section and returns the resulting record.
func (s *SectionService) Save(ctx context.Context, userID uint, name, content string) (*models.Section, error) {
	if err := validation.ValidateSectionName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	section := &models.Section{
		UserID:  userID,
		Name:    name,
		Content: content,
	}
	if err := s.repo.Save(ctx, section); err != nil {
		return nil, err
	}
	return section, nil
}

// GetAll returns every section of a user as a name-to-content map.
func (s *SectionService) GetAll(ctx context.Context, userID uint) (map[string]string, error) {
	return s.repo.GetAll(ctx, userID)
}
