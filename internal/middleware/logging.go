package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Furqankhan76/Vidtube/internal/logger"
)

// RequestLogger logs one structured line per request; 4xx at warn, 5xx at error.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// let the app error handler write the response so the status is final
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		evt := logger.Log.Info()
		if status >= 500 {
			evt = logger.Log.Error()
		} else if status >= 400 {
			evt = logger.Log.Warn()
		}

		evt.
			Str("method", c.Method()).
			Str("route", c.Route().Path).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration_ms", time.Since(start)).
			Int("bytes_sent", len(c.Response().Body())).
			Msg("request")

		return nil
	}
}
