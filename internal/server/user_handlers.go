package server

import (
	"strconv"

	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UpdateProfilePicture handles POST /update-profile-picture
func (s *Server) UpdateProfilePicture(c *fiber.Ctx) error {
	rawID := c.FormValue("userId")
	userID, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid userId"))
	}

	fh, err := c.FormFile("profilePicture")
	if err != nil || fh == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	url, err := s.storeUpload(c.UserContext(), fh)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	if err := s.userService.UpdateProfilePicture(c.UserContext(), uint(userID), url); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"profilePicture": url,
	})
}

// SearchUsers handles GET /search-users?query=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	usernames, err := s.userService.Search(c.UserContext(), c.Query("query"))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(usernames)
}

// GetUserProfile handles GET /users/:userId
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	profile, err := s.userService.PublicProfile(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(profile)
}
