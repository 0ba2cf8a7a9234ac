package paymentRoutes

import (
	paymentController "tuitionhub/controllers/payment"
	"tuitionhub/middleware"
	paymentValidator "tuitionhub/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/initiate/", middleware.JWTMiddleware, paymentValidator.InitiatePayment(), paymentController.InitiatePayment)

	// Gateway callbacks are server-to-server and unauthenticated; SSLCommerz
	// may deliver them as POST form fields or GET query parameters.
	paymentGroup.Post("/success/", paymentController.PaymentSuccess)
	paymentGroup.Get("/success/", paymentController.PaymentSuccess)
	paymentGroup.Post("/fail/", paymentController.PaymentFail)
	paymentGroup.Get("/fail/", paymentController.PaymentFail)
	paymentGroup.Post("/cancel/", paymentController.PaymentCancel)
	paymentGroup.Get("/cancel/", paymentController.PaymentCancel)

	paymentGroup.Get("/my-payments/", middleware.JWTMiddleware, paymentController.GetMyPayments)
}
