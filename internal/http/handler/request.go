package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"certviewer/internal/config"
	"certviewer/internal/model"
	"certviewer/internal/service"
)

// csrfContextKey is where the CSRF middleware leaves the token for the request form.
const csrfContextKey = "csrf"

func requestForm(c *fiber.Ctx, site config.SiteConfig, form *model.Introduction, msg string) error {
	token, _ := c.Locals(csrfContextKey).(string)
	return c.Render("request", pageData(site, "Request a certificate", fiber.Map{
		"Form":      form,
		"Error":     msg,
		"CSRFToken": token,
	}))
}

// RequestForm renders the empty certificate request form.
//
//	@Summary	Render the certificate request form
//	@Tags		introductions
//	@Produce	html
//	@Success	200	{string}	string	"HTML page"
//	@Router		/request [get]
func RequestForm(site config.SiteConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return requestForm(c, site, &model.Introduction{}, "")
	}
}

// SubmitRequest stores a request posted from the form. Invalid input re-renders the
// form with the submitted values and the reason; other failures go to the error handler.
//
//	@Summary	Submit the certificate request form
//	@Tags		introductions
//	@Accept		x-www-form-urlencoded
//	@Produce	html
//	@Success	200	{string}	string	"HTML page"
//	@Failure	500	{string}	string	"Server error"
//	@Router		/request [post]
func SubmitRequest(site config.SiteConfig, intros service.IntroductionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		form := &model.Introduction{}
		if err := c.BodyParser(form); err != nil {
			return requestForm(c, site, form, "The form could not be read, please try again.")
		}
		if err := intros.Insert(c.UserContext(), form); err != nil {
			if errors.Is(err, service.ErrInvalidIntroduction) {
				return requestForm(c, site, form, err.Error())
			}
			return err
		}
		return c.Render("request_success", pageData(site, "Request received", fiber.Map{"Form": form}))
	}
}
