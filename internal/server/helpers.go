package server

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"

	"folio/internal/middleware"
	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam parses a numeric route parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, models.NewValidationError(fmt.Sprintf("Invalid %s", name))
	}
	return uint(id), nil
}

// storeUpload enforces the per-file size cap at the API boundary, then hands
// the blob to the configured storage backend.
func (s *Server) storeUpload(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.config.MaxUploadSizeBytes() {
		return "", models.NewValidationError(
			fmt.Sprintf("File %s exceeds the %dMB limit", fh.Filename, s.config.MaxUploadSizeMB))
	}

	f, err := fh.Open()
	if err != nil {
		return "", models.NewInternalError(err)
	}
	defer func() { _ = f.Close() }()

	url, err := s.store.Save(ctx, f, fh.Filename)
	if err != nil {
		middleware.MediaUploads.WithLabelValues(s.store.Name(), "failure").Inc()
		return "", models.NewInternalError(err)
	}
	middleware.MediaUploads.WithLabelValues(s.store.Name(), "success").Inc()
	return url, nil
}
