package tuitionRoutes

import (
	tuitionController "tuitionhub/controllers/tuition"
	"tuitionhub/middleware"
	"tuitionhub/models"
	tuitionValidator "tuitionhub/validators/tuition"

	"github.com/gofiber/fiber/v2"
)

func SetupTuitionRoutes(app *fiber.App) {
	tuitionGroup := app.Group("/tuition")

	// Public listing and details
	tuitionGroup.Get("/list", tuitionController.GetTuitionList)
	tuitionGroup.Get("/:id", tuitionController.GetTuitionDetail)

	// Tutor-only management
	tuitionGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTutor), tuitionValidator.Tuition(), tuitionController.CreateTuition)
	tuitionGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTutor), tuitionValidator.Tuition(), tuitionController.UpdateTuition)
	tuitionGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTutor), tuitionController.DeleteTuition)
}
