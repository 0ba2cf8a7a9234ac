package walletRoutes

import (
	walletController "tuitionhub/controllers/wallet"
	"tuitionhub/middleware"
	"tuitionhub/models"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App) {
	walletGroup := app.Group("/wallet")

	walletGroup.Get("/my-wallet/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTutor), walletController.GetMyWallet)
	walletGroup.Get("/earnings/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTutor), walletController.GetEarnings)
}
