package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"coverletter/generator/internal/services"
)

type DownloadHandler struct {
	storage services.StorageService
	errors  errorWriter
}

func NewDownloadHandler(storage services.StorageService, withTraceback bool) *DownloadHandler {
	return &DownloadHandler{
		storage: storage,
		errors:  errorWriter{withTraceback: withTraceback},
	}
}

// HandleDownload handles GET /download/:filename
func (h *DownloadHandler) HandleDownload(c *fiber.Ctx) error {
	filename := c.Params("filename")

	data, err := h.storage.Open(filename)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return h.errors.write(c, fiber.StatusBadRequest, err)
		case errors.Is(err, services.ErrArtifactNotFound):
			return h.errors.write(c, fiber.StatusNotFound, err)
		default:
			log.Printf("❌ Failed to read %s: %v", filename, err)
			return h.errors.write(c, fiber.StatusInternalServerError, err)
		}
	}

	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
