package webserver

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs method, path, status and latency of every request once it has been handled
func RequestLogger(logger *zap.SugaredLogger) func(*fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var e *fiber.Error
			status = fiber.StatusInternalServerError
			if errors.As(err, &e) {
				status = e.Code
			}
		}
		logger.Infow("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start),
		)
		return err
	}
}
