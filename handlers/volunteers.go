// handlers/volunteers.go
package handlers

import (
	"log"
	"time"

	"shaurya/database"
	"shaurya/models"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/Volunteers
func GetVolunteers(c *fiber.Ctx) error {
	db := database.GetDB()

	var volunteers []models.Volunteer
	if err := db.Where("is_deleted = ?", false).Find(&volunteers).Error; err != nil {
		log.Printf("Error fetching volunteers: %v", err)
		return utils.Error(c, 500, "Failed to fetch volunteers")
	}

	return c.JSON(volunteers)
}

// GET /api/Volunteers/:id
func GetVolunteer(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid volunteer ID")
	}

	db := database.GetDB()

	var volunteer models.Volunteer
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&volunteer).Error; err != nil {
		return utils.Error(c, 404, "Volunteer not found")
	}

	return c.JSON(volunteer)
}

// POST /api/Volunteers
func CreateVolunteer(c *fiber.Ctx) error {
	var volunteer models.Volunteer
	if err := c.BodyParser(&volunteer); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	if volunteer.Name == "" {
		return utils.Error(c, 400, "Volunteer name is required")
	}

	volunteer.ID = 0
	volunteer.IsDeleted = false
	volunteer.Version = 1
	volunteer.CreatedDate = time.Now()
	volunteer.UpdatedDate = nil

	db := database.GetDB()
	if err := db.Create(&volunteer).Error; err != nil {
		log.Printf("Error creating volunteer: %v", err)
		return utils.Error(c, 500, "Failed to create volunteer")
	}

	return c.Status(201).JSON(volunteer)
}

// PUT /api/Volunteers/:id
func UpdateVolunteer(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid volunteer ID")
	}

	var volunteer models.Volunteer
	if err := c.BodyParser(&volunteer); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}
	if volunteer.ID != id {
		return utils.Error(c, 400, "ID mismatch")
	}
	if volunteer.Name == "" {
		return utils.Error(c, 400, "Volunteer name is required")
	}

	db := database.GetDB()
	now := time.Now()
	res := db.Model(&models.Volunteer{}).
		Where("id = ? AND version = ? AND is_deleted = ?", id, volunteer.Version, false).
		Updates(map[string]interface{}{
			"name":         volunteer.Name,
			"contact":      volunteer.Contact,
			"whats_app_no": volunteer.WhatsAppNo,
			"email":        volunteer.Email,
			"address":      volunteer.Address,
			"version":      volunteer.Version + 1,
			"updated_date": now,
		})
	if res.Error != nil {
		log.Printf("Error updating volunteer %d: %v", id, res.Error)
		return utils.Error(c, 500, "Failed to update volunteer")
	}
	if res.RowsAffected == 0 {
		return resolveUpdateMiss(c, db, &models.Volunteer{}, id)
	}

	return c.SendStatus(204)
}

// DELETE /api/Volunteers/:id
func DeleteVolunteer(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid volunteer ID")
	}

	db := database.GetDB()

	var volunteer models.Volunteer
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&volunteer).Error; err != nil {
		return utils.Error(c, 404, "Volunteer not found")
	}

	now := time.Now()
	if err := db.Model(&volunteer).Updates(map[string]interface{}{
		"is_deleted":   true,
		"updated_date": now,
	}).Error; err != nil {
		log.Printf("Error deleting volunteer %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete volunteer")
	}

	return c.SendStatus(204)
}
