package tuitionValidator

import (
	"tuitionhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// Tuition validates the create/update tuition payload
func Tuition() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string  `json:"title"`
			Description string  `json:"description"`
			Subject     string  `json:"subject"`
			ClassLevel  string  `json:"class_level"`
			IsPaid      bool    `json:"is_paid"`
			Price       float64 `json:"price"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Subject == "" {
			errors["subject"] = "Subject is required!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price cannot be negative!"
		}
		if reqData.IsPaid && reqData.Price == 0 {
			errors["price"] = "Price is required for a paid tuition!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTuition", reqData)
		return c.Next()
	}
}
