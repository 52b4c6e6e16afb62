package server

import (
	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SectionResponse mirrors the request shape of the save-section contract.
type SectionResponse struct {
	UserID    uint   `json:"userId"`
	SectionID string `json:"sectionId"`
	Content   string `json:"content"`
}

// SaveSection handles POST /save-section: create-or-replace on (user, section).
func (s *Server) SaveSection(c *fiber.Ctx) error {
	var req struct {
		UserID    uint   `json:"userId" form:"userId"`
		SectionID string `json:"sectionId" form:"sectionId"`
		Content   string `json:"content" form:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.UserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("userId is required"))
	}

	section, err := s.sectionService.Save(c.UserContext(), req.UserID, req.SectionID, req.Content)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(SectionResponse{
		UserID:    section.UserID,
		SectionID: section.Name,
		Content:   section.Content,
	})
}

// GetSections handles GET /get-sections/:userId. Users with no sections get an
// empty object, not an error.
func (s *Server) GetSections(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, err)
	}

	sections, err := s.sectionService.GetAll(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(sections)
}
