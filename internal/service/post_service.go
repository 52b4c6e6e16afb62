package service

import (
	"context"

	"folio/internal/models"
	"folio/internal/repository"
)

// PostService handles post creation, listing, and deletion.
type PostService struct {
	repo repository.PostRepository
}

// NewPostService creates a PostService.
func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// Create persists a post referencing already-stored media URLs. The owning
// user is not checked for existence.
func (s *PostService) Create(ctx context.Context, userID uint, content string, media []string) (*models.Post, error) {
	if content == "" && len(media) == 0 {
		return nil, models.NewValidationError("post content or media is required")
	}

	post := &models.Post{
		UserID:  userID,
		Content: content,
		Media:   models.MediaURLs(media),
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListByUser returns the user's posts newest first with owner info joined in.
func (s *PostService) ListByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Delete removes a post by id; unknown ids succeed silently.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
