package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/tutorlane/tutorlane/internal/model"
)

// NewErrorHandler maps the engine's error taxonomy onto HTTP statuses. No
// engine error is fatal: everything is reported back to the caller as a
// typed JSON failure.
func NewErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		kind := "internal"

		switch {
		case model.IsValidation(err):
			status, kind = fiber.StatusBadRequest, "validation"
		case model.IsNotFound(err):
			status, kind = fiber.StatusNotFound, "not_found"
		case model.IsConflict(err):
			status, kind = fiber.StatusConflict, "conflict"
		case model.IsPermission(err):
			status, kind = fiber.StatusForbidden, "permission"
		case model.IsStore(err):
			status, kind = fiber.StatusBadGateway, "store"
			logger.Error("Store failure", zap.Error(err))
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			} else {
				logger.Error("Unhandled error", zap.Error(err))
			}
		}

		msg := err.Error()
		if status >= fiber.StatusInternalServerError {
			// Never leak store internals to the client.
			msg = "something went wrong, please try again"
		}

		return c.Status(status).JSON(fiber.Map{"error": msg, "kind": kind})
	}
}
