package courseValidator

import (
	"strings"
	"time"

	"mzrun/middleware"
	courseModels "mzrun/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseRequest is the admin course creation payload
type CreateCourseRequest struct {
	Title           string                           `json:"title"`
	Instructor      string                           `json:"instructor"`
	InstructorImage string                           `json:"instructorImage"`
	InstructorBio   string                           `json:"instructorBio"`
	Price           int                              `json:"price"`
	OriginalPrice   int                              `json:"originalPrice"`
	Image           string                           `json:"image"`
	Tags            []string                         `json:"tags"`
	Category        string                           `json:"category"`
	Description     string                           `json:"description"`
	Level           string                           `json:"level"`
	WhatYouLearn    []string                         `json:"whatYouLearn"`
	Requirements    []string                         `json:"requirements"`
	TotalHours      int                              `json:"totalHours"`
	TotalLectures   int                              `json:"totalLectures"`
	LastUpdated     string                           `json:"lastUpdated"`
	Curriculum      []courseModels.CurriculumSection `json:"curriculum"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Instructor) == "" {
			errors["instructor"] = "Instructor is required!"
		}

		if strings.TrimSpace(reqData.Image) == "" {
			errors["image"] = "Image is required!"
		}

		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		} else if reqData.Category == "all" {
			errors["category"] = "Category 'all' is reserved for filtering!"
		}

		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}
		if reqData.OriginalPrice < reqData.Price {
			errors["originalPrice"] = "Original price must not be lower than price!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CreateSessionRequest is the admin cohort creation payload. Dates use the
// 2006-01-02 layout.
type CreateSessionRequest struct {
	SessionNumber int    `json:"sessionNumber"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	Capacity      int    `json:"capacity"`
}

func CreateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSessionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SessionNumber < 1 {
			errors["sessionNumber"] = "Session number must be greater than 0!"
		}
		if reqData.Capacity < 0 {
			errors["capacity"] = "Capacity must not be negative!"
		}

		var start, end time.Time
		var err error
		if start, err = time.Parse("2006-01-02", reqData.StartDate); err != nil {
			errors["startDate"] = "Start date must be in YYYY-MM-DD format!"
		}
		if end, err = time.Parse("2006-01-02", reqData.EndDate); err != nil {
			errors["endDate"] = "End date must be in YYYY-MM-DD format!"
		}
		if errors["startDate"] == "" && errors["endDate"] == "" && !end.After(start) {
			errors["endDate"] = "End date must be after start date!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}
