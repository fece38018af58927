package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"country-exchange/core/logger"
)

// NewFiberHandler returns the Fiber error handler that maps taxonomy errors
// to JSON responses. Internal errors are logged with full detail; the body
// only ever carries the generic message.
func NewFiberHandler(l *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.WithRayID(l, c)

		var appErr *Error
		if errors.As(err, &appErr) {
			if appErr.Status >= 500 {
				log.Error("Request failed", zap.Error(err))
			}
			body := fiber.Map{"error": appErr.Message}
			if appErr.Details != nil {
				body["details"] = appErr.Details
			}
			return c.Status(appErr.Status).JSON(body)
		}

		// Fiber's own errors (unknown routes, body limits) keep their status.
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Error("Unhandled error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
