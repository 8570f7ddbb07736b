package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"coverletter/generator/internal/models"
	"coverletter/generator/internal/services"
)

type GenerateHandler struct {
	coverLetters services.CoverLetterService
	timeout      time.Duration
	errors       errorWriter
}

func NewGenerateHandler(
	coverLetters services.CoverLetterService,
	timeout time.Duration,
	withTraceback bool,
) *GenerateHandler {
	return &GenerateHandler{
		coverLetters: coverLetters,
		timeout:      timeout,
		errors:       errorWriter{withTraceback: withTraceback},
	}
}

// HandleAnalyze handles POST /analyze
func (h *GenerateHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.GenerateRequest

	if err := c.BodyParser(&req); err != nil {
		return h.errors.write(c, fiber.StatusBadRequest,
			fmt.Errorf("%w: invalid request payload", services.ErrValidation))
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	letter, err := h.coverLetters.GenerateLetter(ctx, &req)
	if err != nil {
		return h.errors.write(c, StatusForError(err), err)
	}

	return c.JSON(letter)
}
