package applicationRoutes

import (
	applicationController "tuitionhub/controllers/application"
	"tuitionhub/middleware"
	"tuitionhub/models"
	applicationValidator "tuitionhub/validators/application"

	"github.com/gofiber/fiber/v2"
)

func SetupApplicationRoutes(app *fiber.App) {
	applicationGroup := app.Group("/application")

	applicationGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleUser), applicationValidator.CreateApplication(), applicationController.ApplyToTuition)
	applicationGroup.Get("/list", middleware.JWTMiddleware, applicationController.GetApplications)
	applicationGroup.Post("/:id/select", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTutor), applicationController.SelectApplicant)
}
