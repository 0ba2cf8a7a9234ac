package invoiceRoutes

import (
	invoiceController "tuitionhub/controllers/invoice"
	"tuitionhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupInvoiceRoutes(app *fiber.App) {
	invoiceGroup := app.Group("/invoice")

	invoiceGroup.Get("/list", middleware.JWTMiddleware, invoiceController.GetMyInvoices)
}
