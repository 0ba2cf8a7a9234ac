package applicationController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"tuitionhub/config"
	"tuitionhub/database"
	"tuitionhub/middleware"
	"tuitionhub/models"
	"tuitionhub/routers/applicationRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.Database = database.DbInstance{Db: db}

	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 4}

	app := fiber.New()
	applicationRoutes.SetupApplicationRoutes(app)
	return app
}

func seedTuition(t *testing.T) (models.User, models.Tuition) {
	t.Helper()
	db := database.Database.Db

	tutor := models.User{Email: fmt.Sprintf("tutor-%s@example.com", t.Name()), Role: models.RoleTutor, Password: "x"}
	require.NoError(t, db.Create(&tutor).Error)

	tuition := models.Tuition{TutorID: tutor.ID, Title: "HSC Chemistry", Subject: "Chemistry", Availability: true, IsPaid: true, Price: 800}
	require.NoError(t, db.Create(&tuition).Error)

	return tutor, tuition
}

func seedStudent(t *testing.T, email string) models.User {
	t.Helper()
	student := models.User{Email: email, Role: models.RoleUser, Password: "x"}
	require.NoError(t, database.Database.Db.Create(&student).Error)
	return student
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any, user models.User) *http.Response {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")

	token, err := middleware.GenerateJWT(user.ID, user.Role, user.Email)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestApplyToTuition(t *testing.T) {
	app := setupApp(t)
	_, tuition := seedTuition(t)
	student := seedStudent(t, "student@example.com")

	resp := doJSON(t, app, http.MethodPost, "/application/", fiber.Map{"tuition_id": tuition.ID}, student)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var application models.Application
	require.NoError(t, database.Database.Db.Where("tuition_id = ? AND applicant_id = ?", tuition.ID, student.ID).First(&application).Error)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)
}

func TestApplyTwiceConflicts(t *testing.T) {
	app := setupApp(t)
	_, tuition := seedTuition(t)
	student := seedStudent(t, "student@example.com")

	resp := doJSON(t, app, http.MethodPost, "/application/", fiber.Map{"tuition_id": tuition.ID}, student)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/application/", fiber.Map{"tuition_id": tuition.ID}, student)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestApplyRejectsTutors(t *testing.T) {
	app := setupApp(t)
	tutor, tuition := seedTuition(t)

	resp := doJSON(t, app, http.MethodPost, "/application/", fiber.Map{"tuition_id": tuition.ID}, tutor)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestApplyToUnavailableTuition(t *testing.T) {
	app := setupApp(t)
	_, tuition := seedTuition(t)
	student := seedStudent(t, "student@example.com")

	require.NoError(t, database.Database.Db.Model(&tuition).Update("availability", false).Error)

	resp := doJSON(t, app, http.MethodPost, "/application/", fiber.Map{"tuition_id": tuition.ID}, student)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSelectApplicantCreatesEnrollment(t *testing.T) {
	app := setupApp(t)
	tutor, tuition := seedTuition(t)
	student := seedStudent(t, "student@example.com")

	application := models.Application{TuitionID: tuition.ID, ApplicantID: student.ID, Status: models.ApplicationStatusPending}
	require.NoError(t, database.Database.Db.Create(&application).Error)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/application/%d/select", application.ID), nil, tutor)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var got models.Application
	require.NoError(t, database.Database.Db.First(&got, application.ID).Error)
	assert.Equal(t, models.ApplicationStatusAccepted, got.Status)

	var enrollment models.Enrollment
	require.NoError(t, database.Database.Db.Where("tuition_id = ? AND student_id = ?", tuition.ID, student.ID).First(&enrollment).Error)
	assert.False(t, enrollment.PaymentVerified)
}

func TestSelectApplicantRequiresOwnership(t *testing.T) {
	app := setupApp(t)
	_, tuition := seedTuition(t)
	student := seedStudent(t, "student@example.com")

	otherTutor := models.User{Email: "other-tutor@example.com", Role: models.RoleTutor, Password: "x"}
	require.NoError(t, database.Database.Db.Create(&otherTutor).Error)

	application := models.Application{TuitionID: tuition.ID, ApplicantID: student.ID, Status: models.ApplicationStatusPending}
	require.NoError(t, database.Database.Db.Create(&application).Error)

	resp := doJSON(t, app, http.MethodPost, fmt.Sprintf("/application/%d/select", application.ID), nil, otherTutor)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestSelectApplicantTwice(t *testing.T) {
	app := setupApp(t)
	tutor, tuition := seedTuition(t)
	student := seedStudent(t, "student@example.com")

	application := models.Application{TuitionID: tuition.ID, ApplicantID: student.ID, Status: models.ApplicationStatusPending}
	require.NoError(t, database.Database.Db.Create(&application).Error)

	path := fmt.Sprintf("/application/%d/select", application.ID)
	resp := doJSON(t, app, http.MethodPost, path, nil, tutor)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, path, nil, tutor)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetApplicationsScopedByRole(t *testing.T) {
	app := setupApp(t)
	tutor, tuition := seedTuition(t)
	student := seedStudent(t, "student@example.com")
	other := seedStudent(t, "other@example.com")

	require.NoError(t, database.Database.Db.Create(&models.Application{TuitionID: tuition.ID, ApplicantID: student.ID, Status: models.ApplicationStatusPending}).Error)
	require.NoError(t, database.Database.Db.Create(&models.Application{TuitionID: tuition.ID, ApplicantID: other.ID, Status: models.ApplicationStatusPending}).Error)

	// Tutor sees both applications to their tuition
	resp := doJSON(t, app, http.MethodGet, "/application/list", nil, tutor)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var env struct {
		Data struct {
			Applications []models.Application `json:"applications"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Len(t, env.Data.Applications, 2)

	// Each student sees only their own
	resp = doJSON(t, app, http.MethodGet, "/application/list", nil, student)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Len(t, env.Data.Applications, 1)
	assert.Equal(t, student.ID, env.Data.Applications[0].ApplicantID)
}
