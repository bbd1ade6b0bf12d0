package userController_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mzrun/config"
	"mzrun/database"
	"mzrun/middleware"
	"mzrun/models"
	userRoutes "mzrun/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type profileEnvelope struct {
	Message string `json:"message"`
	Data    struct {
		ID               uint   `json:"id"`
		Name             string `json:"name"`
		Email            string `json:"email"`
		AgreeMarketing   bool   `json:"agreeMarketing"`
		CreatedAt        string `json:"createdAt"`
		EnrolledCourses  int    `json:"enrolledCourses"`
		CompletedCourses int    `json:"completedCourses"`
	} `json:"data"`
}

func setupProfileApp(t *testing.T) (*fiber.App, models.User, string) {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}))
	database.Database = database.DbInstance{Db: db}

	user := models.User{Name: "홍길동", Email: "hong@example.com", Password: "x", AgreeMarketing: true}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	return app, user, token
}

func doProfile(t *testing.T, app *fiber.App, method, token string, payload interface{}) (int, profileEnvelope) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, "/api/user/profile", body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope profileEnvelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp.StatusCode, envelope
}

func TestGetProfile(t *testing.T) {
	app, user, token := setupProfileApp(t)

	status, envelope := doProfile(t, app, http.MethodGet, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, user.ID, envelope.Data.ID)
	assert.Equal(t, "홍길동", envelope.Data.Name)
	assert.Equal(t, "hong@example.com", envelope.Data.Email)
	assert.True(t, envelope.Data.AgreeMarketing)
	assert.NotEmpty(t, envelope.Data.CreatedAt)

	// Enrollment is not implemented; the counters stay at zero
	assert.Zero(t, envelope.Data.EnrolledCourses)
	assert.Zero(t, envelope.Data.CompletedCourses)
}

func TestGetProfileRequiresToken(t *testing.T) {
	app, _, _ := setupProfileApp(t)

	status, _ := doProfile(t, app, http.MethodGet, "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doProfile(t, app, http.MethodGet, "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	// A well-formed header without the Bearer prefix is rejected too
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set("Authorization", "Token abcdef")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetProfileUnresolvableUser(t *testing.T) {
	app, _, _ := setupProfileApp(t)

	token, err := middleware.GenerateJWT(99999, "ghost", "USER", "ghost@example.com")
	require.NoError(t, err)

	status, _ := doProfile(t, app, http.MethodGet, token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestUpdateProfile(t *testing.T) {
	app, user, token := setupProfileApp(t)

	status, envelope := doProfile(t, app, http.MethodPut, token, fiber.Map{
		"name":           "김철수",
		"agreeMarketing": false,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "김철수", envelope.Data.Name)
	assert.False(t, envelope.Data.AgreeMarketing)

	var stored models.User
	require.NoError(t, database.Database.Db.First(&stored, user.ID).Error)
	assert.Equal(t, "김철수", stored.Name)
	assert.False(t, stored.AgreeMarketing)
	// Email is not editable through the profile endpoint
	assert.Equal(t, "hong@example.com", stored.Email)
}

func TestUpdateProfileValidation(t *testing.T) {
	app, _, token := setupProfileApp(t)

	status, _ := doProfile(t, app, http.MethodPut, token, fiber.Map{"name": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, _ = doProfile(t, app, http.MethodPut, "", fiber.Map{"name": "김철수"})
	assert.Equal(t, http.StatusUnauthorized, status)
}
