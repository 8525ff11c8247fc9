package api

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/common"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) requestLogger(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = statusFor(err)
	}

	s.logger.Info(c.UserContext(), "request",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"duration", time.Since(start),
	)
	return err
}

func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, common.ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, common.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, common.ErrAlreadyExists):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// errorHandler renders every failure as {"detail": ...}. Internal errors are
// logged and hidden from the caller.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	detail := err.Error()
	if status == fiber.StatusInternalServerError {
		s.logger.Error(c.UserContext(), "request failed", "path", c.Path(), "error", err)
		detail = "internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"detail": detail})
}
