package handler

import (
	"github.com/gofiber/fiber/v2"

	"certviewer/internal/config"
	"certviewer/internal/service"
)

// AwardPage renders the award for a certificate.
//
//	@Summary	Render a certificate award
//	@Tags		certificates
//	@Produce	html
//	@Param		certificate_id	path		string	true	"Certificate GUID"
//	@Success	200				{string}	string	"HTML page"
//	@Failure	404				{string}	string	"This page does not exist"
//	@Failure	500				{string}	string	"Server error"
//	@Router		/{certificate_id} [get]
func AwardPage(site config.SiteConfig, certs service.CertificateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		award, err := certs.Award(c.UserContext(), c.Params(certificateIDParam))
		if err != nil {
			return err
		}
		return c.Render("award", pageData(site, award.Title, fiber.Map{"Award": award}))
	}
}

// CertificateJSON returns the stored certificate document.
//
//	@Summary	Get a certificate document
//	@Tags		certificates
//	@Produce	json
//	@Param		certificate_id	path		string	true	"Certificate GUID"
//	@Success	200				{object}	object
//	@Failure	404				{string}	string	"This page does not exist"
//	@Failure	500				{string}	string	"Server error"
//	@Router		/certificate/{certificate_id} [get]
func CertificateJSON(certs service.CertificateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := certs.AwardJSON(c.UserContext(), c.Params(certificateIDParam))
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.Send(doc)
	}
}

// VerifyCertificate runs the verifier and answers JSON, or the verify page when the client
// prefers HTML.
//
//	@Summary	Verify a certificate
//	@Tags		certificates
//	@Produce	json
//	@Produce	html
//	@Param		certificate_id	path		string	true	"Certificate GUID"
//	@Success	200				{object}	model.VerificationResult
//	@Failure	404				{string}	string	"This page does not exist"
//	@Failure	500				{string}	string	"Server error"
//	@Router		/verify/{certificate_id} [get]
func VerifyCertificate(site config.SiteConfig, v service.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := v.Verify(c.UserContext(), c.Params(certificateIDParam))
		if err != nil {
			return err
		}
		if c.Accepts(fiber.MIMEApplicationJSON, fiber.MIMETextHTML) == fiber.MIMETextHTML {
			return c.Render("verify", pageData(site, "Verification", fiber.Map{"Result": res}))
		}
		return c.JSON(res)
	}
}
