package invoiceController

import (
	"tuitionhub/database"
	"tuitionhub/middleware"
	"tuitionhub/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyInvoices lists the caller's invoices, student or tutor side.
func GetMyInvoices(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := db.Model(&models.Invoice{}).
		Joins("JOIN payments ON payments.id = invoices.payment_id")
	if user.Role == models.RoleTutor {
		query = query.Where("payments.tutor_id = ?", userID)
	} else {
		query = query.Where("payments.student_id = ?", userID)
	}

	var total int64
	query.Count(&total)

	var invoices []models.Invoice
	if err := query.Order("invoices.created_at desc").Offset(offset).Limit(limit).Find(&invoices).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch invoices!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Invoices fetched successfully!", fiber.Map{
		"invoices": invoices,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}
