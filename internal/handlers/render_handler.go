package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"coverletter/generator/internal/models"
	"coverletter/generator/internal/services"
)

type RenderHandler struct {
	coverLetters services.CoverLetterService
	errors       errorWriter
}

func NewRenderHandler(coverLetters services.CoverLetterService, withTraceback bool) *RenderHandler {
	return &RenderHandler{
		coverLetters: coverLetters,
		errors:       errorWriter{withTraceback: withTraceback},
	}
}

// HandleGeneratePDF handles POST /generate-pdf
func (h *RenderHandler) HandleGeneratePDF(c *fiber.Ctx) error {
	var req models.RenderRequest

	if err := c.BodyParser(&req); err != nil {
		return h.errors.write(c, fiber.StatusBadRequest,
			fmt.Errorf("%w: invalid request payload", services.ErrValidation))
	}

	if req.CoverLetter == nil {
		return h.errors.write(c, fiber.StatusBadRequest,
			fmt.Errorf("%w: Missing required fields: [coverLetter]", services.ErrValidation))
	}

	letter := &models.GeneratedLetter{
		CoverLetter: *req.CoverLetter,
		CompanyName: req.CompanyName,
	}
	if req.PersonalInfo != nil {
		letter.PersonalInfo = *req.PersonalInfo
	}

	rendered, err := h.coverLetters.RenderLetter(c.UserContext(), letter)
	if err != nil {
		return h.errors.write(c, StatusForError(err), err)
	}

	return c.JSON(models.RenderResponse{
		CoverLetterFile: rendered.Filename,
	})
}
