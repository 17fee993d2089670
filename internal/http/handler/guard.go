package handler

import (
	"github.com/gofiber/fiber/v2"

	"certviewer/internal/certid"
)

// certificateIDParam is the route parameter holding a certificate identifier.
const certificateIDParam = "certificate_id"

// RequireCertificateID rejects requests whose certificate_id segment is not GUID shaped
// before any handler that could reach a collaborator runs. A rejection reads as a routing miss.
func RequireCertificateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !certid.Match(c.Params(certificateIDParam)) {
			return fiber.ErrNotFound
		}
		return c.Next()
	}
}
