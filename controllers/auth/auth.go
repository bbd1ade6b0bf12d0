package authController

import (
	"log"
	"time"

	"mzrun/config"
	"mzrun/database"
	"mzrun/middleware"
	"mzrun/models"
	"mzrun/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserDTO is the account shape returned by signup, login and profile
type UserDTO struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	AgreeMarketing bool   `json:"agreeMarketing"`
	CreatedAt      string `json:"createdAt"`
}

// MapUser shapes a stored user row into its response DTO
func MapUser(user models.User) UserDTO {
	return UserDTO{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		AgreeMarketing: user.AgreeMarketing,
		CreatedAt:      user.CreatedAt.Format(time.RFC3339),
	}
}

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Name           string `json:"name"`
		Email          string `json:"email"`
		Password       string `json:"password"`
		AgreeMarketing bool   `json:"agreeMarketing"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, "Email is already registered!", nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:           reqData.Name,
		Email:          reqData.Email,
		Password:       string(hashedPassword),
		AgreeMarketing: reqData.AgreeMarketing,
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to signup user!", nil)
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Name, newUser.Role, newUser.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to signup user!", nil)
	}

	// Welcome email must never delay or fail the signup response
	go utils.SendWelcomeEmail(newUser.Name, newUser.Email)

	return middleware.JsonResponse(c, fiber.StatusCreated, "Signup successful.", fiber.Map{
		"user":  MapUser(newUser),
		"token": token,
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, "Invalid request data!", nil)
	}

	var user models.User
	result := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user)

	// Unknown email and wrong password are deliberately indistinguishable
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to login!", nil)
	}

	tracking := models.LoginTracking{
		UserID:    user.ID,
		SessionID: uuid.NewString(),
		IPAddress: c.IP(),
		Device:    c.Get("User-Agent"),
		Timestamp: time.Now(),
	}
	if err := database.Database.Db.Create(&tracking).Error; err != nil {
		log.Printf("Error recording login: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, "Login successful.", fiber.Map{
		"user":  MapUser(user),
		"token": token,
	})
}

// LoginHistory returns the caller's recent logins, newest first
func LoginHistory(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, "Unauthorized!", nil)
	}

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

	db := database.Database.Db.Model(&models.LoginTracking{}).
		Where("user_id = ? AND is_deleted = ?", userID, false)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to fetch login history!", nil)
	}

	var logins []models.LoginTracking
	if err := db.Order("timestamp desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&logins).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, "Failed to fetch login history!", nil)
	}

	return middleware.PaginatedResponse(c, logins, total, page, limit)
}
