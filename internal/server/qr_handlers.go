package server

import (
	"folio/internal/models"
	"folio/internal/qr"

	"github.com/gofiber/fiber/v2"
)

// GenerateQR handles POST /generate-qr: renders the literal url string as a
// PNG data URL. No state is touched.
func (s *Server) GenerateQR(c *fiber.Ctx) error {
	var req struct {
		URL string `json:"url" form:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	dataURL, err := qr.Generate(req.URL)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"qrImageUrl": dataURL})
}
