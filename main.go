package main

import (
	"log"

	"tuitionhub/config"
	"tuitionhub/database"
	applicationRoutes "tuitionhub/routers/applicationRoutes"
	authRoutes "tuitionhub/routers/authRoutes"
	enrollmentRoutes "tuitionhub/routers/enrollmentRoutes"
	invoiceRoutes "tuitionhub/routers/invoiceRoutes"
	paymentRoutes "tuitionhub/routers/paymentRoutes"
	reviewRoutes "tuitionhub/routers/reviewRoutes"
	tuitionRoutes "tuitionhub/routers/tuitionRoutes"
	walletRoutes "tuitionhub/routers/walletRoutes"
	"tuitionhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	tuitionRoutes.SetupTuitionRoutes(app)
	applicationRoutes.SetupApplicationRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	walletRoutes.SetupWalletRoutes(app)
	invoiceRoutes.SetupInvoiceRoutes(app)

	utils.StartReconcileScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
