// Package service contains the domain logic between HTTP handlers and repositories.
package service

import (
	"context"

	"folio/internal/cache"
	"folio/internal/models"
	"folio/internal/repository"
)

// UserService handles profile operations on top of the user repository.
type UserService struct {
	repo  repository.UserRepository
	cache *cache.Cache
}

// NewUserService creates a UserService.
func NewUserService(repo repository.UserRepository, c *cache.Cache) *UserService {
	return &UserService{repo: repo, cache: c}
}

// UpdateProfilePicture replaces the stored picture reference and drops the
// cached public profile.
func (s *UserService) UpdateProfilePicture(ctx context.Context, userID uint, url string) error {
	if err := s.repo.UpdateProfilePicture(ctx, userID, url); err != nil {
		return err
	}
	s.cache.InvalidateProfile(ctx, userID)
	return nil
}

// Search returns usernames matching the query as a case-insensitive substring.
func (s *UserService) Search(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return nil, models.NewValidationError("query parameter is required")
	}
	return s.repo.SearchUsernames(ctx, query)
}

// PublicProfile returns the externally visible profile, cache-aside.
func (s *UserService) PublicProfile(ctx context.Context, userID uint) (*models.PublicProfile, error) {
	var profile models.PublicProfile

	err := s.cache.Aside(ctx, cache.ProfileKey(userID), &profile, cache.ProfileTTL, func() error {
		user, err := s.repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		profile = models.PublicProfile{
			UserID:         user.ID,
			Username:       user.Username,
			ProfilePicture: user.ProfilePicture,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
