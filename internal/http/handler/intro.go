package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"certviewer/internal/model"
	"certviewer/internal/service"
)

const introWritten = "Successfully wrote introduction"

// PostIntroduction stores an introduction submitted as JSON or form data.
//
//	@Summary	Submit an introduction
//	@Tags		introductions
//	@Accept		json
//	@Produce	plain
//	@Param		introduction	body		model.Introduction	true	"Introduction"
//	@Success	200				{string}	string				"Successfully wrote introduction"
//	@Failure	500				{string}	string				"Server error"
//	@Router		/intro/ [post]
func PostIntroduction(intros service.IntroductionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.Introduction
		if err := c.BodyParser(&in); err != nil {
			return &service.Error{Op: "insert introduction", Err: fmt.Errorf("%w: %v", service.ErrInvalidIntroduction, err)}
		}
		if err := intros.Insert(c.UserContext(), &in); err != nil {
			return err
		}
		return c.SendString(introWritten)
	}
}
