package enrollmentController

import (
	"log"
	"time"

	"tuitionhub/database"
	"tuitionhub/middleware"
	"tuitionhub/models"

	"github.com/gofiber/fiber/v2"
)

// GetEnrollments is role-scoped: students see their own enrollments, tutors
// see enrollments into their tuitions.
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	query := db.Model(&models.Enrollment{})
	switch user.Role {
	case models.RoleTutor:
		query = query.Joins("JOIN tuitions ON tuitions.id = enrollments.tuition_id").
			Where("tuitions.tutor_id = ?", userID)
	default:
		query = query.Where("student_id = ?", userID)
	}

	var enrollments []models.Enrollment
	if err := query.Order("enrollments.created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

// GetProgress returns the topics and assignments recorded under one
// enrollment, visible to its student and its tutor.
func GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Preload("Tuition").First(&enrollment, enrollmentID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.StudentID != userID && enrollment.Tuition.TutorID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not part of this enrollment!", nil)
	}

	var topics []models.Topic
	if err := db.Where("enrollment_id = ?", enrollment.ID).Order("created_at asc").Find(&topics).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch topics!", nil)
	}

	var assignments []models.Assignment
	if err := db.Where("enrollment_id = ?", enrollment.ID).Order("created_at asc").Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment_id": enrollment.ID,
		"tuition_id":    enrollment.TuitionID,
		"topics":        topics,
		"assignments":   assignments,
	})
}

// AddTopic lets the owning tutor record a topic under an enrollment.
func AddTopic(c *fiber.Ctx) error {
	enrollment, errResp := ownedEnrollment(c)
	if enrollment == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedTopic").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Completed   bool   `json:"completed"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	topic := models.Topic{
		EnrollmentID: enrollment.ID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		Completed:    reqData.Completed,
	}

	if err := database.Database.Db.Create(&topic).Error; err != nil {
		log.Printf("Error creating topic: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic added!", topic)
}

// AddAssignment lets the owning tutor record an assignment under an enrollment.
func AddAssignment(c *fiber.Ctx) error {
	enrollment, errResp := ownedEnrollment(c)
	if enrollment == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedAssignment").(*struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		DueDate     *time.Time `json:"due_date"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	assignment := models.Assignment{
		EnrollmentID: enrollment.ID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		DueDate:      reqData.DueDate,
	}

	if err := database.Database.Db.Create(&assignment).Error; err != nil {
		log.Printf("Error creating assignment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add assignment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assignment added!", assignment)
}

// ownedEnrollment resolves the :id enrollment and checks the caller is the
// tutor who owns its tuition. On failure the first return is nil and the
// second carries the already-written error response.
func ownedEnrollment(c *fiber.Ctx) (*models.Enrollment, error) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return nil, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Preload("Tuition").First(&enrollment, enrollmentID).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	if enrollment.Tuition.TutorID != userID {
		return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only the tutor can modify this enrollment!", nil)
	}

	return &enrollment, nil
}
