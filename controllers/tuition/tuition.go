package tuitionController

import (
	"log"

	"tuitionhub/database"
	"tuitionhub/middleware"
	"tuitionhub/models"

	"github.com/gofiber/fiber/v2"
)

func CreateTuition(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedTuition").(*struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Subject     string  `json:"subject"`
		ClassLevel  string  `json:"class_level"`
		IsPaid      bool    `json:"is_paid"`
		Price       float64 `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tuition := models.Tuition{
		TutorID:      userID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		Subject:      reqData.Subject,
		ClassLevel:   reqData.ClassLevel,
		Availability: true,
		IsPaid:       reqData.IsPaid,
		Price:        reqData.Price,
	}

	if err := database.Database.Db.Create(&tuition).Error; err != nil {
		log.Printf("Error creating tuition: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create tuition!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Tuition created successfully!", tuition)
}

func UpdateTuition(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	tuitionID, err := c.ParamsInt("id")
	if err != nil || tuitionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tuition id!", nil)
	}

	var tuition models.Tuition
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", tuitionID).First(&tuition).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tuition not found!", nil)
	}

	if tuition.TutorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this tuition!", nil)
	}

	reqData, ok := c.Locals("validatedTuition").(*struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Subject     string  `json:"subject"`
		ClassLevel  string  `json:"class_level"`
		IsPaid      bool    `json:"is_paid"`
		Price       float64 `json:"price"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tuition.Title = reqData.Title
	tuition.Description = reqData.Description
	tuition.Subject = reqData.Subject
	tuition.ClassLevel = reqData.ClassLevel
	tuition.IsPaid = reqData.IsPaid
	tuition.Price = reqData.Price

	if err := database.Database.Db.Save(&tuition).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update tuition!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tuition updated successfully!", tuition)
}

func DeleteTuition(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	tuitionID, err := c.ParamsInt("id")
	if err != nil || tuitionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tuition id!", nil)
	}

	var tuition models.Tuition
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", tuitionID).First(&tuition).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tuition not found!", nil)
	}

	if tuition.TutorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this tuition!", nil)
	}

	tuition.IsDeleted = true
	tuition.Availability = false
	if err := database.Database.Db.Save(&tuition).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete tuition!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tuition deleted successfully!", nil)
}

// GetTuitionList is public. Supports subject/class_level/availability/is_paid
// filters, a free-text search over the descriptive columns, ordering by
// created_at or class_level, and pagination.
func GetTuitionList(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db
	query := db.Model(&models.Tuition{}).Where("is_deleted = false")

	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subject = ?", subject)
	}
	if classLevel := c.Query("class_level"); classLevel != "" {
		query = query.Where("class_level = ?", classLevel)
	}
	if availability := c.Query("availability"); availability != "" {
		query = query.Where("availability = ?", availability == "true")
	}
	if isPaid := c.Query("is_paid"); isPaid != "" {
		query = query.Where("is_paid = ?", isPaid == "true")
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where(
			"title LIKE ? OR description LIKE ? OR subject LIKE ? OR class_level LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	ordering := "created_at desc"
	switch c.Query("ordering") {
	case "created_at":
		ordering = "created_at asc"
	case "class_level":
		ordering = "class_level asc"
	case "-class_level":
		ordering = "class_level desc"
	}

	var total int64
	query.Count(&total)

	var tuitions []models.Tuition
	if err := query.Order(ordering).Offset(offset).Limit(limit).Find(&tuitions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tuitions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tuitions fetched successfully!", fiber.Map{
		"tuitions": tuitions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetTuitionDetail(c *fiber.Ctx) error {
	tuitionID, err := c.ParamsInt("id")
	if err != nil || tuitionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tuition id!", nil)
	}

	var tuition models.Tuition
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", tuitionID).First(&tuition).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tuition not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tuition fetched successfully!", tuition)
}
