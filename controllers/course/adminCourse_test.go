package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"mzrun/config"
	"mzrun/database"
	"mzrun/middleware"
	"mzrun/models"
	courseModels "mzrun/models/course"
	courseRoutes "mzrun/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAdminApp(t *testing.T) (*fiber.App, string, string) {
	t.Helper()
	config.LoadConfig()
	// Keep course creation offline in tests
	config.AppConfig.ValidateImageURLs = false

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.User{},
		&courseModels.Course{},
		&courseModels.CourseSession{},
	))
	database.Database = database.DbInstance{Db: db}

	require.NoError(t, db.Create(&[]models.Category{
		{ID: "all", Label: "전체"},
		{ID: "dev", Label: "개발"},
	}).Error)

	admin := models.User{Name: "관리자", Email: "admin@mzrun.io", Password: "x", Role: "ADMIN"}
	require.NoError(t, db.Create(&admin).Error)
	member := models.User{Name: "일반회원", Email: "user@mzrun.io", Password: "x"}
	require.NoError(t, db.Create(&member).Error)

	adminToken, err := middleware.GenerateJWT(admin.ID, admin.Name, admin.Role, admin.Email)
	require.NoError(t, err)
	memberToken, err := middleware.GenerateJWT(member.ID, member.Name, member.Role, member.Email)
	require.NoError(t, err)

	app := fiber.New()
	courseRoutes.SetupAdminRoutes(app)
	return app, adminToken, memberToken
}

func adminRequest(t *testing.T, app *fiber.App, method, url, token string, payload interface{}) *http.Response {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, url, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func validCoursePayload() fiber.Map {
	return fiber.Map{
		"title":         "Go 백엔드 입문",
		"instructor":    "고개발",
		"price":         55000,
		"originalPrice": 77000,
		"image":         "https://example.com/course.jpg",
		"category":      "dev",
		"tags":          []string{"NEW"},
		"level":         "입문",
		"whatYouLearn":  []string{"Go 기초 문법", "HTTP 서버 작성"},
	}
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	app, _, memberToken := setupAdminApp(t)

	resp := adminRequest(t, app, http.MethodPost, "/api/admin/courses", "", validCoursePayload())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = adminRequest(t, app, http.MethodPost, "/api/admin/courses", memberToken, validCoursePayload())
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&courseModels.Course{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAdminCreateCourse(t *testing.T) {
	app, adminToken, _ := setupAdminApp(t)

	resp := adminRequest(t, app, http.MethodPost, "/api/admin/courses", adminToken, validCoursePayload())
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var stored courseModels.Course
	require.NoError(t, database.Database.Db.Where("title = ?", "Go 백엔드 입문").First(&stored).Error)
	assert.Equal(t, "dev", stored.Category)
	assert.Equal(t, 55000, stored.Price)
	assert.JSONEq(t, `["NEW"]`, stored.Tags)
	assert.JSONEq(t, `["Go 기초 문법","HTTP 서버 작성"]`, string(stored.WhatYouLearn))
	// Omitted list fields default to empty JSON arrays, not null
	assert.JSONEq(t, `[]`, string(stored.Requirements))
	assert.JSONEq(t, `[]`, string(stored.Curriculum))
}

func TestAdminCreateCourseRejectsUnknownCategory(t *testing.T) {
	app, adminToken, _ := setupAdminApp(t)

	payload := validCoursePayload()
	payload["category"] = "nope"
	resp := adminRequest(t, app, http.MethodPost, "/api/admin/courses", adminToken, payload)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	payload["category"] = "all"
	resp = adminRequest(t, app, http.MethodPost, "/api/admin/courses", adminToken, payload)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAdminCreateCourseValidation(t *testing.T) {
	app, adminToken, _ := setupAdminApp(t)

	payload := validCoursePayload()
	payload["title"] = ""
	resp := adminRequest(t, app, http.MethodPost, "/api/admin/courses", adminToken, payload)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	payload = validCoursePayload()
	payload["originalPrice"] = 1000 // below price
	resp = adminRequest(t, app, http.MethodPost, "/api/admin/courses", adminToken, payload)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAdminSessions(t *testing.T) {
	app, adminToken, _ := setupAdminApp(t)

	course := courseModels.Course{
		Title: "세션 강의", Instructor: "고개발", Price: 10000, OriginalPrice: 10000,
		Image: "https://example.com/x.jpg", Tags: "[]", Category: "dev",
		WhatYouLearn: datatypes.JSON(`[]`), Requirements: datatypes.JSON(`[]`), Curriculum: datatypes.JSON(`[]`),
	}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	base := "/api/admin/courses/" + strconv.Itoa(int(course.ID)) + "/sessions"

	resp := adminRequest(t, app, http.MethodPost, base, adminToken, fiber.Map{
		"sessionNumber": 1,
		"startDate":     "2026-09-01",
		"endDate":       "2026-10-31",
		"capacity":      30,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// End before start is rejected
	resp = adminRequest(t, app, http.MethodPost, base, adminToken, fiber.Map{
		"sessionNumber": 2,
		"startDate":     "2026-11-01",
		"endDate":       "2026-10-01",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = adminRequest(t, app, http.MethodGet, base, adminToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []courseModels.CourseSession `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, 1, envelope.Data[0].SessionNumber)
	assert.Equal(t, 30, envelope.Data[0].Capacity)

	// Unknown course id
	resp = adminRequest(t, app, http.MethodGet, "/api/admin/courses/999999/sessions", adminToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAdminDashboardStats(t *testing.T) {
	app, adminToken, _ := setupAdminApp(t)

	courses := []courseModels.Course{
		{Title: "A", Instructor: "a", Price: 1000, OriginalPrice: 1000, Image: "x", Tags: "[]", Category: "dev", StudentCount: 10,
			WhatYouLearn: datatypes.JSON(`[]`), Requirements: datatypes.JSON(`[]`), Curriculum: datatypes.JSON(`[]`)},
		{Title: "B", Instructor: "b", Price: 2000, OriginalPrice: 2000, Image: "x", Tags: "[]", Category: "dev", StudentCount: 5,
			WhatYouLearn: datatypes.JSON(`[]`), Requirements: datatypes.JSON(`[]`), Curriculum: datatypes.JSON(`[]`)},
	}
	require.NoError(t, database.Database.Db.Create(&courses).Error)

	resp := adminRequest(t, app, http.MethodGet, "/api/admin/stats", adminToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			CourseCount   int64 `json:"courseCount"`
			UserCount     int64 `json:"userCount"`
			TotalStudents int64 `json:"totalStudents"`
			Revenue       int64 `json:"revenue"`
		} `json:"data"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &envelope))

	assert.EqualValues(t, 2, envelope.Data.CourseCount)
	assert.EqualValues(t, 2, envelope.Data.UserCount) // admin + member
	assert.EqualValues(t, 15, envelope.Data.TotalStudents)
	assert.EqualValues(t, 1000*10+2000*5, envelope.Data.Revenue)
}

func TestAdminListAllCourses(t *testing.T) {
	app, adminToken, _ := setupAdminApp(t)

	courses := []courseModels.Course{
		{Title: "A", Instructor: "a", Price: 1000, OriginalPrice: 1000, Image: "x", Tags: "[]", Category: "dev",
			WhatYouLearn: datatypes.JSON(`[]`), Requirements: datatypes.JSON(`[]`), Curriculum: datatypes.JSON(`[]`)},
		{Title: "B", Instructor: "b", Price: 2000, OriginalPrice: 2000, Image: "x", Tags: "[]", Category: "dev",
			WhatYouLearn: datatypes.JSON(`[]`), Requirements: datatypes.JSON(`[]`), Curriculum: datatypes.JSON(`[]`)},
	}
	require.NoError(t, database.Database.Db.Create(&courses).Error)

	resp := adminRequest(t, app, http.MethodGet, "/api/admin/courses?limit=1", adminToken, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope listEnvelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.EqualValues(t, 2, envelope.Total)
	assert.Len(t, envelope.Data, 1)
}
