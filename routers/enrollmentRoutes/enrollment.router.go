package enrollmentRoutes

import (
	enrollmentController "tuitionhub/controllers/enrollment"
	"tuitionhub/middleware"
	"tuitionhub/models"
	enrollmentValidator "tuitionhub/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollment")

	enrollmentGroup.Get("/list", middleware.JWTMiddleware, enrollmentController.GetEnrollments)
	enrollmentGroup.Get("/:id/progress", middleware.JWTMiddleware, enrollmentController.GetProgress)

	// Nested topic/assignment creation, owning tutor only
	enrollmentGroup.Post("/:id/topics", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTutor), enrollmentValidator.CreateTopic(), enrollmentController.AddTopic)
	enrollmentGroup.Post("/:id/assignments", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTutor), enrollmentValidator.CreateAssignment(), enrollmentController.AddAssignment)
}
