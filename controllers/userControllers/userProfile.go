package userController

import (
	"log"
	"time"

	"mzrun/database"
	"mzrun/middleware"
	"mzrun/models"

	"github.com/gofiber/fiber/v2"
)

// ProfileDTO is the account shape returned by the profile endpoints. The
// course counters stay at zero until enrollment ships.
type ProfileDTO struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	AgreeMarketing   bool   `json:"agreeMarketing"`
	CreatedAt        string `json:"createdAt"`
	EnrolledCourses  int    `json:"enrolledCourses"`
	CompletedCourses int    `json:"completedCourses"`
}

func mapProfile(user models.User) ProfileDTO {
	return ProfileDTO{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		AgreeMarketing: user.AgreeMarketing,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
}

func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "", mapProfile(user))
}

func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Name           string `json:"name"`
		AgreeMarketing bool   `json:"agreeMarketing"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!", nil)
	}

	user.Name = reqData.Name
	user.AgreeMarketing = reqData.AgreeMarketing

	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating profile for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Profile updated.", mapProfile(user))
}
