package paymentValidator

import (
	"tuitionhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// InitiatePayment validates the payment initiation request
func InitiatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount       float64 `json:"amount"`
			EnrollmentID uint    `json:"enrollment_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if reqData.EnrollmentID == 0 {
			errors["enrollment_id"] = "Enrollment ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInitiatePayment", reqData)
		return c.Next()
	}
}
