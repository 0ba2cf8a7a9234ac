package applicationValidator

import (
	"tuitionhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateApplication validates the apply request
func CreateApplication() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TuitionID uint `json:"tuition_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TuitionID == 0 {
			errors["tuition_id"] = "Tuition ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedApplication", reqData)
		return c.Next()
	}
}
