package controllers

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"mzrun/config"
	"mzrun/database"
	"mzrun/middleware"
	"mzrun/models"
	courseModels "mzrun/models/course"
	"mzrun/utils"
	courseValidator "mzrun/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a catalog entry. Courses are immutable once created;
// there is no update or delete endpoint.
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Category must reference seeded reference data
	if err := db.Where("id = ?", reqData.Category).First(&models.Category{}).Error; err != nil {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"category": "Category does not exist!",
		})
	}

	if config.AppConfig.ValidateImageURLs {
		for field, url := range map[string]string{
			"image":           reqData.Image,
			"instructorImage": reqData.InstructorImage,
		} {
			if url != "" && !utils.ProbeURL(url) {
				return middleware.ValidationErrorResponse(c, map[string]string{
					field: "Image URL is unreachable!",
				})
			}
		}
	}

	tags := reqData.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, _ := json.Marshal(tags)
	whatYouLearnJSON, _ := json.Marshal(orEmpty(reqData.WhatYouLearn))
	requirementsJSON, _ := json.Marshal(orEmpty(reqData.Requirements))
	curriculum := reqData.Curriculum
	if curriculum == nil {
		curriculum = []courseModels.CurriculumSection{}
	}
	curriculumJSON, _ := json.Marshal(curriculum)

	level := reqData.Level
	if level == "" {
		level = "입문"
	}

	course := courseModels.Course{
		Title:           reqData.Title,
		Instructor:      reqData.Instructor,
		InstructorImage: reqData.InstructorImage,
		InstructorBio:   reqData.InstructorBio,
		Price:           reqData.Price,
		OriginalPrice:   reqData.OriginalPrice,
		Image:           reqData.Image,
		Tags:            string(tagsJSON),
		Category:        reqData.Category,
		Description:     reqData.Description,
		Level:           level,
		WhatYouLearn:    whatYouLearnJSON,
		Requirements:    requirementsJSON,
		TotalHours:      reqData.TotalHours,
		TotalLectures:   reqData.TotalLectures,
		LastUpdated:     reqData.LastUpdated,
		Curriculum:      curriculumJSON,
	}

	if err := db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Course created successfully.", mapCourseDetail(course))
}

func orEmpty(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// ListAllCourses returns the full catalog with engagement stats for the admin
// dashboard, newest first.
func ListAllCourses(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 1
	}
	if limit > 50 {
		limit = 50
	}

	db := database.Database.Db.Model(&courseModels.Course{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!", nil)
	}

	var courses []courseModels.Course
	if err := db.Order("created_at desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!", nil)
	}

	data := make([]CourseDTO, len(courses))
	for i, course := range courses {
		data[i] = mapCourse(course)
	}

	return middleware.PaginatedResponse(c, data, total, page, limit)
}

// CreateSession creates a cohort session for a course
func CreateSession(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid course id!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "Course not found!", nil)
	}

	reqData, ok := c.Locals("validatedSession").(*courseValidator.CreateSessionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!", nil)
	}

	// Dates were validated upstream
	start, _ := time.Parse("2006-01-02", reqData.StartDate)
	end, _ := time.Parse("2006-01-02", reqData.EndDate)

	session := courseModels.CourseSession{
		CourseID:      course.ID,
		SessionNumber: reqData.SessionNumber,
		StartDate:     start,
		EndDate:       end,
		Capacity:      reqData.Capacity,
	}

	if err := database.Database.Db.Create(&session).Error; err != nil {
		log.Printf("Error creating session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to create session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, "Session created successfully.", session)
}

// ListSessions lists the cohort sessions of a course
func ListSessions(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid course id!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "Course not found!", nil)
	}

	var sessions []courseModels.CourseSession
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Order("session_number asc").
		Find(&sessions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to fetch sessions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", sessions)
}

// DashboardStats aggregates the numbers shown on the admin dashboard
func DashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var courseCount int64
	if err := db.Model(&courseModels.Course{}).Count(&courseCount).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to fetch stats!", nil)
	}

	var userCount int64
	if err := db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&userCount).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to fetch stats!", nil)
	}

	var totalStudents int64
	if err := db.Model(&courseModels.Course{}).
		Select("COALESCE(SUM(student_count), 0)").
		Scan(&totalStudents).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to fetch stats!", nil)
	}

	// Revenue estimate: list price times lifetime students
	var revenue int64
	if err := db.Model(&courseModels.Course{}).
		Select("COALESCE(SUM(price * student_count), 0)").
		Scan(&revenue).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", fiber.Map{
		"courseCount":   courseCount,
		"userCount":     userCount,
		"totalStudents": totalStudents,
		"revenue":       revenue,
	})
}
