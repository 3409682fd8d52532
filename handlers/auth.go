// handlers/auth.go - Account registration and login
package handlers

import (
	"log"
	"os"
	"time"

	"shaurya/database"
	"shaurya/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Age            int    `json:"age"`
	AbilityTypeID  uint   `json:"ability_type_id"`
	OrganizationID uint   `json:"organization_id"`
	Contact        string `json:"contact"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account with the default Participant role.
// POST /api/Account/register
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Email and password required"})
	}
	if req.Age <= 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Age must be a positive integer"})
	}

	db := database.GetDB()
	if db == nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database not available"})
	}

	var ability models.AbilityType
	if err := db.Where("id = ? AND is_deleted = ?", req.AbilityTypeID, false).First(&ability).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid ability type ID"})
	}

	var org models.Organization
	if err := db.Where("id = ? AND is_deleted = ?", req.OrganizationID, false).First(&org).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid organization ID"})
	}

	var existing models.User
	if err := db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return c.Status(409).JSON(fiber.Map{"success": false, "error": "Email already registered"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create account"})
	}

	var role models.Role
	if err := db.Where("name = ?", models.RoleParticipant).First(&role).Error; err != nil {
		log.Printf("Default role missing: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create account"})
	}

	user := models.User{
		Email:          req.Email,
		Password:       string(hashed),
		Age:            req.Age,
		AbilityTypeID:  req.AbilityTypeID,
		OrganizationID: req.OrganizationID,
		Contact:        req.Contact,
		RoleID:         role.ID,
		CreatedAt:      time.Now(),
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create account"})
	}

	return c.Status(201).JSON(fiber.Map{
		"success": true,
		"message": "Registered successfully",
		"user_id": user.ID,
	})
}

// Login authenticates a user and returns a signed token.
// POST /api/Account/login
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Email and password required"})
	}

	db := database.GetDB()
	if db == nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Database not available"})
	}

	var user models.User
	if err := db.Preload("Role").Where("email = ? AND is_deleted = ?", req.Email, false).First(&user).Error; err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Invalid credentials"})
	}

	token, err := generateToken(user)
	if err != nil {
		log.Printf("Failed to generate token for user %d: %v", user.ID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to generate token"})
	}

	now := time.Now()
	db.Model(&models.User{}).Where("id = ?", user.ID).Update("last_login", now)

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}

func generateToken(user models.User) (string, error) {
	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    roleName,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
