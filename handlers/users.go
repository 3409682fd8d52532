// handlers/users.go - User administration (Volunteer role only)
package handlers

import (
	"log"
	"time"

	"shaurya/database"
	"shaurya/models"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
)

type userView struct {
	ID             uint   `json:"id"`
	Email          string `json:"email"`
	Age            int    `json:"age"`
	AbilityTypeID  uint   `json:"ability_type_id"`
	OrganizationID uint   `json:"organization_id"`
	Contact        string `json:"contact"`
	Role           string `json:"role"`
	Version        int    `json:"version"`
}

func viewOf(u models.User) userView {
	roleName := ""
	if u.Role != nil {
		roleName = u.Role.Name
	}
	return userView{
		ID:             u.ID,
		Email:          u.Email,
		Age:            u.Age,
		AbilityTypeID:  u.AbilityTypeID,
		OrganizationID: u.OrganizationID,
		Contact:        u.Contact,
		Role:           roleName,
		Version:        u.Version,
	}
}

// GET /api/Users
func GetUsers(c *fiber.Ctx) error {
	db := database.GetDB()

	var users []models.User
	if err := db.Preload("Role").Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return utils.Error(c, 500, "Failed to fetch users")
	}

	views := make([]userView, len(users))
	for i, u := range users {
		views[i] = viewOf(u)
	}

	return c.JSON(views)
}

// GET /api/Users/:id
func GetUser(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid user ID")
	}

	db := database.GetDB()

	var user models.User
	if err := db.Preload("Role").Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		return utils.Error(c, 404, "User not found")
	}

	return c.JSON(viewOf(user))
}

// PUT /api/Users/:id
func UpdateUser(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid user ID")
	}

	var req struct {
		ID             uint   `json:"id"`
		Age            int    `json:"age"`
		AbilityTypeID  uint   `json:"ability_type_id"`
		OrganizationID uint   `json:"organization_id"`
		Contact        string `json:"contact"`
		Role           string `json:"role"`
		Version        int    `json:"version"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}
	if req.ID != id {
		return utils.Error(c, 400, "ID mismatch")
	}
	if req.Age <= 0 {
		return utils.Error(c, 400, "Age must be a positive integer")
	}

	db := database.GetDB()

	var role models.Role
	if err := db.Where("name = ?", req.Role).First(&role).Error; err != nil {
		return utils.Error(c, 400, "Invalid role")
	}

	now := time.Now()
	res := db.Model(&models.User{}).
		Where("id = ? AND version = ? AND is_deleted = ?", id, req.Version, false).
		Updates(map[string]interface{}{
			"age":             req.Age,
			"ability_type_id": req.AbilityTypeID,
			"organization_id": req.OrganizationID,
			"contact":         req.Contact,
			"role_id":         role.ID,
			"version":         req.Version + 1,
			"updated_at":      now,
		})
	if res.Error != nil {
		log.Printf("Error updating user %d: %v", id, res.Error)
		return utils.Error(c, 500, "Failed to update user")
	}
	if res.RowsAffected == 0 {
		return resolveUpdateMiss(c, db, &models.User{}, id)
	}

	return c.SendStatus(204)
}

// DELETE /api/Users/:id
func DeleteUser(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid user ID")
	}

	db := database.GetDB()

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&user).Error; err != nil {
		return utils.Error(c, 404, "User not found")
	}

	now := time.Now()
	if err := db.Model(&user).Updates(map[string]interface{}{
		"is_deleted": true,
		"updated_at": now,
	}).Error; err != nil {
		log.Printf("Error deleting user %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete user")
	}

	return c.SendStatus(204)
}
