package walletController

import (
	"tuitionhub/database"
	"tuitionhub/middleware"
	"tuitionhub/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyWallet returns the authenticated tutor's wallet snapshot. Wallet rows
// are provisioned by the first completed payment, so a tutor who has never
// been paid gets a 404 here.
func GetMyWallet(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var wallet models.TutorWallet
	if err := database.Database.Db.Where("tutor_id = ?", userID).First(&wallet).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Wallet not found. Only tutors have wallets.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet fetched!", wallet)
}

// GetEarnings returns the tutor's balance totals plus the ten most recent
// completed payments.
func GetEarnings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var wallet models.TutorWallet
	if err := db.Where("tutor_id = ?", userID).First(&wallet).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Wallet not found!", nil)
	}

	var paymentsCount int64
	db.Model(&models.Payment{}).
		Where("tutor_id = ? AND status = ?", userID, models.PaymentStatusCompleted).
		Count(&paymentsCount)

	var recentPayments []models.Payment
	if err := db.Where("tutor_id = ? AND status = ?", userID, models.PaymentStatusCompleted).
		Order("created_at desc").
		Limit(10).
		Find(&recentPayments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch earnings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Earnings fetched!", fiber.Map{
		"total_earned":      wallet.TotalEarned,
		"available_balance": wallet.AvailableBalance,
		"pending_balance":   wallet.PendingBalance,
		"payments_count":    paymentsCount,
		"recent_payments":   recentPayments,
	})
}
