package controllers

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"mzrun/database"
	"mzrun/middleware"
	courseModels "mzrun/models/course"

	"github.com/gofiber/fiber/v2"
)

// CourseDTO is the catalog list shape; detail-only columns are left out
type CourseDTO struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	Instructor    string   `json:"instructor"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice"`
	Rating        float64  `json:"rating"`
	ReviewCount   int64    `json:"reviewCount"`
	StudentCount  int64    `json:"studentCount"`
	Image         string   `json:"image"`
	Tags          []string `json:"tags"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Level         string   `json:"level"`
	CreatedAt     string   `json:"createdAt"`
}

// CourseDetailDTO adds the instructor and curriculum columns
type CourseDetailDTO struct {
	CourseDTO
	InstructorImage string                           `json:"instructorImage"`
	InstructorBio   string                           `json:"instructorBio"`
	WhatYouLearn    []string                         `json:"whatYouLearn"`
	Requirements    []string                         `json:"requirements"`
	TotalHours      int                              `json:"totalHours"`
	TotalLectures   int                              `json:"totalLectures"`
	LastUpdated     string                           `json:"lastUpdated"`
	Curriculum      []courseModels.CurriculumSection `json:"curriculum"`
}

func mapCourse(course courseModels.Course) CourseDTO {
	tags := []string{}
	if err := json.Unmarshal([]byte(course.Tags), &tags); err != nil {
		tags = []string{}
	}
	return CourseDTO{
		ID:            course.ID,
		Title:         course.Title,
		Instructor:    course.Instructor,
		Price:         course.Price,
		OriginalPrice: course.OriginalPrice,
		Rating:        course.Rating,
		ReviewCount:   course.ReviewCount,
		StudentCount:  course.StudentCount,
		Image:         course.Image,
		Tags:          tags,
		Category:      course.Category,
		Description:   course.Description,
		Level:         course.Level,
		CreatedAt:     course.CreatedAt.Format(time.RFC3339),
	}
}

func mapCourseDetail(course courseModels.Course) CourseDetailDTO {
	whatYouLearn := []string{}
	if len(course.WhatYouLearn) > 0 {
		json.Unmarshal(course.WhatYouLearn, &whatYouLearn)
	}
	requirements := []string{}
	if len(course.Requirements) > 0 {
		json.Unmarshal(course.Requirements, &requirements)
	}
	curriculum := []courseModels.CurriculumSection{}
	if len(course.Curriculum) > 0 {
		json.Unmarshal(course.Curriculum, &curriculum)
	}
	return CourseDetailDTO{
		CourseDTO:       mapCourse(course),
		InstructorImage: course.InstructorImage,
		InstructorBio:   course.InstructorBio,
		WhatYouLearn:    whatYouLearn,
		Requirements:    requirements,
		TotalHours:      course.TotalHours,
		TotalLectures:   course.TotalLectures,
		LastUpdated:     course.LastUpdated,
		Curriculum:      curriculum,
	}
}

// orderClause maps a sort key to its ORDER BY column. Unknown keys fall back
// to latest.
func orderClause(sort string) string {
	switch sort {
	case "popular":
		return "student_count desc"
	case "rating":
		return "rating desc"
	case "price_low":
		return "price asc"
	case "price_high":
		return "price desc"
	default:
		return "created_at desc"
	}
}

// ListCourses returns a filtered, sorted page of the catalog plus the total
// matching count.
func ListCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("courseQuery").(*struct {
		Category string
		Search   string
		Tags     string
		Sort     string
		Page     int
		Limit    int
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid query parameters!", nil)
	}

	db := database.Database.Db.Model(&courseModels.Course{})

	if reqData.Category != "" && reqData.Category != "all" {
		db = db.Where("category = ?", reqData.Category)
	}

	if reqData.Search != "" {
		pattern := "%" + reqData.Search + "%"
		db = db.Where("(title LIKE ? OR instructor LIKE ?)", pattern, pattern)
	}

	// Conjunctive tag filter against the serialized tag column. Matching the
	// quoted form keeps a tag that is a prefix of another from matching it.
	if reqData.Tags != "" {
		for _, tag := range strings.Split(reqData.Tags, ",") {
			db = db.Where("tags LIKE ?", `%"`+tag+`"%`)
		}
	}

	// Total count under the predicate, ignoring pagination
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!", nil)
	}

	offset := (reqData.Page - 1) * reqData.Limit

	var courses []courseModels.Course
	if err := db.Order(orderClause(reqData.Sort)).
		Offset(offset).Limit(reqData.Limit).
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!", nil)
	}

	data := make([]CourseDTO, len(courses))
	for i, course := range courses {
		data[i] = mapCourse(course)
	}

	return middleware.PaginatedResponse(c, data, total, reqData.Page, reqData.Limit)
}

// GetCourseDetail returns the full detail record for a single course
func GetCourseDetail(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid course id!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", mapCourseDetail(course))
}
