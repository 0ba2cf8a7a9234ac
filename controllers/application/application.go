package applicationController

import (
	"log"

	"tuitionhub/database"
	"tuitionhub/middleware"
	"tuitionhub/models"

	"github.com/gofiber/fiber/v2"
)

func ApplyToTuition(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedApplication").(*struct {
		TuitionID uint `json:"tuition_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var tuition models.Tuition
	if err := db.Where("id = ? AND is_deleted = false AND availability = true", reqData.TuitionID).First(&tuition).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tuition not found or not available!", nil)
	}

	// A student applies to a given tuition at most once
	var existing models.Application
	if err := db.Where("tuition_id = ? AND applicant_id = ?", reqData.TuitionID, userID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already applied to this tuition!", nil)
	}

	application := models.Application{
		TuitionID:   reqData.TuitionID,
		ApplicantID: userID,
		Status:      models.ApplicationStatusPending,
	}

	if err := db.Create(&application).Error; err != nil {
		log.Printf("Error creating application: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to apply!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Application submitted!", application)
}

// GetApplications is role-scoped: tutors see applications to their own
// tuitions, students see their own applications.
func GetApplications(c *fiber.Ctx) error {
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

	query := db.Model(&models.Application{})
	switch user.Role {
	case models.RoleTutor:
		query = query.Joins("JOIN tuitions ON tuitions.id = applications.tuition_id").
			Where("tuitions.tutor_id = ?", userID)
	default:
		query = query.Where("applicant_id = ?", userID)
	}

	var total int64
	query.Count(&total)

	var applications []models.Application
	if err := query.Order("applications.created_at desc").Offset(offset).Limit(limit).Find(&applications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch applications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Applications fetched successfully!", fiber.Map{
		"applications": applications,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// SelectApplicant accepts a pending application and creates the enrollment.
// Only the tutor who owns the tuition can select.
func SelectApplicant(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	applicationID, err := c.ParamsInt("id")
	if err != nil || applicationID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid application id!", nil)
	}

	db := database.Database.Db

	var application models.Application
	if err := db.Preload("Tuition").First(&application, applicationID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Application not found!", nil)
	}

	if application.Tuition.TutorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not own this tuition!", nil)
	}

	if application.Status != models.ApplicationStatusPending {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Application already processed!", nil)
	}

	var existing models.Enrollment
	if err := db.Where("tuition_id = ? AND student_id = ?", application.TuitionID, application.ApplicantID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Applicant already enrolled!", nil)
	}

	enrollment := models.Enrollment{
		TuitionID: application.TuitionID,
		StudentID: application.ApplicantID,
	}

	tx := db.Begin()
	application.Status = models.ApplicationStatusAccepted
	if err := tx.Save(&application).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to accept application!", nil)
	}
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create enrollment!", nil)
	}
	tx.Commit()

	log.Printf("Application %d accepted, enrollment %d created", application.ID, enrollment.ID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Applicant selected!", enrollment)
}
