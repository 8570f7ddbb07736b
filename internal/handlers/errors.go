package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"coverletter/generator/internal/models"
	"coverletter/generator/internal/services"
)

// StatusForError maps a service error kind to an HTTP status.
func StatusForError(err error) int {
	switch services.ErrorKind(err) {
	case services.KindValidationFailure:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

type errorWriter struct {
	withTraceback bool
}

func (w errorWriter) write(c *fiber.Ctx, status int, err error) error {
	resp := models.ErrorResponse{
		Error: err.Error(),
		Kind:  services.ErrorKind(err),
	}
	if w.withTraceback {
		resp.Traceback = fmt.Sprintf("%+v", err)
	}
	return c.Status(status).JSON(resp)
}
