package reviewController

import (
	"log"

	"tuitionhub/database"
	"tuitionhub/middleware"
	"tuitionhub/models"

	"github.com/gofiber/fiber/v2"
)

// CreateReview lets an enrolled student leave one review per tuition.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*struct {
		TuitionID uint   `json:"tuition_id"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("tuition_id = ? AND student_id = ?", reqData.TuitionID, userID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only review a tuition you are enrolled in!", nil)
	}

	var existing models.Review
	if err := db.Where("tuition_id = ? AND student_id = ?", reqData.TuitionID, userID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already reviewed this tuition!", nil)
	}

	review := models.Review{
		TuitionID: reqData.TuitionID,
		StudentID: userID,
		Rating:    reqData.Rating,
		Comment:   reqData.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		log.Printf("Error creating review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created!", review)
}

// GetReviews lists reviews, optionally filtered by tuition. Public.
func GetReviews(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.Review{})
	if tuitionID := c.QueryInt("tuition_id", 0); tuitionID > 0 {
		query = query.Where("tuition_id = ?", tuitionID)
	}

	var reviews []models.Review
	if err := query.Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}
