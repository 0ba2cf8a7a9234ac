package reviewRoutes

import (
	reviewController "tuitionhub/controllers/review"
	"tuitionhub/middleware"
	"tuitionhub/models"
	reviewValidator "tuitionhub/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/review")

	reviewGroup.Get("/list", reviewController.GetReviews)
	reviewGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleUser), reviewValidator.CreateReview(), reviewController.CreateReview)
}
