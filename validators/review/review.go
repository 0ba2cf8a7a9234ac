package reviewValidator

import (
	"tuitionhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateReview validates the review payload
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TuitionID uint   `json:"tuition_id"`
			Rating    int    `json:"rating"`
			Comment   string `json:"comment"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TuitionID == 0 {
			errors["tuition_id"] = "Tuition ID is required!"
		}
		if reqData.Rating < 1 || reqData.Rating > 5 {
			errors["rating"] = "Rating must be between 1 and 5!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
