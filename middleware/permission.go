package middleware

import (
	"mzrun/database"
	"mzrun/models"

	"github.com/gofiber/fiber/v2"
)

// AdminOnly ensures the authenticated user carries the ADMIN role. Must run
// after JWTMiddleware.
func AdminOnly(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, "User not found!", nil)
	}

	if user.Role != "ADMIN" {
		return JsonResponse(c, fiber.StatusForbidden, "You do not have permission to access this resource!", nil)
	}

	c.Locals("adminUser", user)
	return c.Next()
}
