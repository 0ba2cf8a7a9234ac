package enrollmentController_test

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
	"tuitionhub/routers/enrollmentRoutes"

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
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	return app
}

func seedEnrollment(t *testing.T) (models.User, models.User, models.Enrollment) {
	t.Helper()
	db := database.Database.Db

	tutor := models.User{Email: "tutor@example.com", Role: models.RoleTutor, Password: "x"}
	require.NoError(t, db.Create(&tutor).Error)

	student := models.User{Email: "student@example.com", Role: models.RoleUser, Password: "x"}
	require.NoError(t, db.Create(&student).Error)

	tuition := models.Tuition{TutorID: tutor.ID, Title: "HSC Biology", Subject: "Biology"}
	require.NoError(t, db.Create(&tuition).Error)

	enrollment := models.Enrollment{TuitionID: tuition.ID, StudentID: student.ID}
	require.NoError(t, db.Create(&enrollment).Error)

	return tutor, student, enrollment
}

func do(t *testing.T, app *fiber.App, method, path string, payload any, user models.User) *http.Response {
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

func TestGetEnrollmentsScopedByRole(t *testing.T) {
	app := setupApp(t)
	tutor, student, enrollment := seedEnrollment(t)

	other := models.User{Email: "other@example.com", Role: models.RoleUser, Password: "x"}
	require.NoError(t, database.Database.Db.Create(&other).Error)

	decode := func(resp *http.Response) []models.Enrollment {
		var env struct {
			Data []models.Enrollment `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		return env.Data
	}

	resp := do(t, app, http.MethodGet, "/enrollment/list", nil, student)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode(resp)
	require.Len(t, got, 1)
	assert.Equal(t, enrollment.ID, got[0].ID)

	resp = do(t, app, http.MethodGet, "/enrollment/list", nil, tutor)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode(resp), 1)

	resp = do(t, app, http.MethodGet, "/enrollment/list", nil, other)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode(resp), 0)
}

func TestAddTopicAndProgress(t *testing.T) {
	app := setupApp(t)
	tutor, student, enrollment := seedEnrollment(t)

	resp := do(t, app, http.MethodPost, fmt.Sprintf("/enrollment/%d/topics", enrollment.ID), fiber.Map{
		"title":       "Cell division",
		"description": "Mitosis and meiosis",
	}, tutor)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, app, http.MethodPost, fmt.Sprintf("/enrollment/%d/assignments", enrollment.ID), fiber.Map{
		"title": "Chapter 3 worksheet",
	}, tutor)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// The enrolled student can read the progress the tutor recorded
	resp = do(t, app, http.MethodGet, fmt.Sprintf("/enrollment/%d/progress", enrollment.ID), nil, student)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var env struct {
		Data struct {
			Topics      []models.Topic      `json:"topics"`
			Assignments []models.Assignment `json:"assignments"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.Len(t, env.Data.Topics, 1)
	assert.Equal(t, "Cell division", env.Data.Topics[0].Title)
	require.Len(t, env.Data.Assignments, 1)
	assert.Equal(t, "Chapter 3 worksheet", env.Data.Assignments[0].Title)
}

func TestAddTopicRequiresOwningTutor(t *testing.T) {
	app := setupApp(t)
	_, _, enrollment := seedEnrollment(t)

	otherTutor := models.User{Email: "other-tutor@example.com", Role: models.RoleTutor, Password: "x"}
	require.NoError(t, database.Database.Db.Create(&otherTutor).Error)

	resp := do(t, app, http.MethodPost, fmt.Sprintf("/enrollment/%d/topics", enrollment.ID), fiber.Map{
		"title": "Cell division",
	}, otherTutor)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetProgressRestrictedToParticipants(t *testing.T) {
	app := setupApp(t)
	_, _, enrollment := seedEnrollment(t)

	outsider := models.User{Email: "outsider@example.com", Role: models.RoleUser, Password: "x"}
	require.NoError(t, database.Database.Db.Create(&outsider).Error)

	resp := do(t, app, http.MethodGet, fmt.Sprintf("/enrollment/%d/progress", enrollment.ID), nil, outsider)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestGetProgressUnknownEnrollment(t *testing.T) {
	app := setupApp(t)
	_, student, _ := seedEnrollment(t)

	resp := do(t, app, http.MethodGet, "/enrollment/999/progress", nil, student)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
