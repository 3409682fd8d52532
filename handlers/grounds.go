// handlers/grounds.go
package handlers

import (
	"log"

	"shaurya/database"
	"shaurya/models"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/Grounds
func GetGrounds(c *fiber.Ctx) error {
	db := database.GetDB()

	var grounds []models.Ground
	if err := db.Where("is_deleted = ?", false).Find(&grounds).Error; err != nil {
		log.Printf("Error fetching grounds: %v", err)
		return utils.Error(c, 500, "Failed to fetch grounds")
	}

	return c.JSON(grounds)
}

// GET /api/Grounds/:id
func GetGround(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid ground ID")
	}

	db := database.GetDB()

	var ground models.Ground
	if err := db.Preload("Allocations").Where("id = ? AND is_deleted = ?", id, false).First(&ground).Error; err != nil {
		return utils.Error(c, 404, "Ground not found")
	}

	return c.JSON(ground)
}

// POST /api/Grounds
func CreateGround(c *fiber.Ctx) error {
	var ground models.Ground
	if err := c.BodyParser(&ground); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	if ground.Name == "" {
		return utils.Error(c, 400, "Ground name is required")
	}

	ground.ID = 0
	ground.IsDeleted = false
	ground.Version = 1

	db := database.GetDB()
	if err := db.Create(&ground).Error; err != nil {
		log.Printf("Error creating ground: %v", err)
		return utils.Error(c, 500, "Failed to create ground")
	}

	return c.Status(201).JSON(ground)
}

// PUT /api/Grounds/:id
func UpdateGround(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid ground ID")
	}

	var ground models.Ground
	if err := c.BodyParser(&ground); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}
	if ground.ID != id {
		return utils.Error(c, 400, "ID mismatch")
	}
	if ground.Name == "" {
		return utils.Error(c, 400, "Ground name is required")
	}

	db := database.GetDB()
	res := db.Model(&models.Ground{}).
		Where("id = ? AND version = ? AND is_deleted = ?", id, ground.Version, false).
		Updates(map[string]interface{}{
			"name":     ground.Name,
			"location": ground.Location,
			"version":  ground.Version + 1,
		})
	if res.Error != nil {
		log.Printf("Error updating ground %d: %v", id, res.Error)
		return utils.Error(c, 500, "Failed to update ground")
	}
	if res.RowsAffected == 0 {
		return resolveUpdateMiss(c, db, &models.Ground{}, id)
	}

	return c.SendStatus(204)
}

// DELETE /api/Grounds/:id
func DeleteGround(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid ground ID")
	}

	db := database.GetDB()

	var ground models.Ground
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&ground).Error; err != nil {
		return utils.Error(c, 404, "Ground not found")
	}

	if err := db.Model(&ground).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting ground %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete ground")
	}

	return c.SendStatus(204)
}
