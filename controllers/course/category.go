package controllers

import (
	"mzrun/database"
	"mzrun/middleware"
	"mzrun/models"

	"github.com/gofiber/fiber/v2"
)

// ListCategories returns the static category reference data
func ListCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", categories)
}
