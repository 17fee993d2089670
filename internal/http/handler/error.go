package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"certviewer/internal/http/middleware"
	"certviewer/internal/service"
)

// ErrorKind is the class of failure a request ended with.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	// KindNotFound is a routing miss: no route, no method or a rejected identifier.
	KindNotFound
	// KindServer is a failure a collaborator recognised and reported.
	KindServer
	// KindUnhandled is anything else, including recovered panics.
	KindUnhandled
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindUnhandled:
		return "unhandled"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

const notFoundBody = "This page does not exist"

// Classify maps an error returned by the handler chain to its kind.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch fe.Code {
		case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
			return KindNotFound
		default:
			return KindServer
		}
	}

	var se *service.Error
	if errors.As(err, &se) {
		return KindServer
	}
	return KindUnhandled
}

// Translate returns the status and plain text body answered for err.
func Translate(err error) (int, string) {
	switch Classify(err) {
	case KindNone:
		return fiber.StatusOK, ""
	case KindNotFound:
		return fiber.StatusNotFound, notFoundBody
	case KindServer:
		return fiber.StatusInternalServerError, "Server error: " + err.Error()
	default:
		return fiber.StatusInternalServerError, "Unhandled exception: " + err.Error()
	}
}

// ErrorHandler returns the global Fiber error handler. Every error is logged exactly once
// here and answered with a plain text body; stack traces are only ever logged.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := Translate(err)
		rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)

		switch Classify(err) {
		case KindNotFound:
			log.Error("Page not found",
				zap.String("request_id", rid),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
			)
		case KindServer:
			log.Error("Server error",
				zap.String("request_id", rid),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		case KindUnhandled:
			stack := zap.StackSkip("stacktrace", 1)
			var pe *middleware.PanicError
			if errors.As(err, &pe) {
				stack = zap.ByteString("stacktrace", pe.Stack)
			}
			// DPanic is the most severe level that leaves the process running in production.
			log.DPanic("Unhandled exception",
				zap.String("request_id", rid),
				zap.String("path", c.Path()),
				zap.Error(err),
				stack,
			)
		}

		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.Status(status).SendString(body)
	}
}
