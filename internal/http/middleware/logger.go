package middleware

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"certviewer/internal/logger"
)

// Logger is a middleware that logs each HTTP request as one structured entry with
// request_id (from RequestID), method, path, status and latency in milliseconds.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Errors reach the global ErrorHandler after this middleware returns, so the
		// status has to be derived from err rather than read off the response.
		status := c.Response().StatusCode()
		if err != nil {
			status = statusFromError(err)
		}
		rid, _ := c.Locals(RequestIDLocalKey).(string)
		log.Info("request",
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("latency", float64(time.Since(start).Microseconds())/1000),
		)
		return err
	}
}

// LoggerWithWriter is Logger writing JSON lines to w with timestamps in loc.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return Logger(logger.NewWithWriter(w, zapcore.InfoLevel, loc))
}

func statusFromError(err error) int {
	if fe, ok := err.(*fiber.Error); ok {
		if fe.Code == fiber.StatusMethodNotAllowed {
			return fiber.StatusNotFound
		}
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
