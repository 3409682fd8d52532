// handlers/ability_types.go
package handlers

import (
	"log"

	"shaurya/database"
	"shaurya/models"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/AbilityTypes
func GetAbilityTypes(c *fiber.Ctx) error {
	db := database.GetDB()

	var types []models.AbilityType
	if err := db.Where("is_deleted = ?", false).Find(&types).Error; err != nil {
		log.Printf("Error fetching ability types: %v", err)
		return utils.Error(c, 500, "Failed to fetch ability types")
	}

	return c.JSON(types)
}

// GET /api/AbilityTypes/:id
func GetAbilityType(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid ability type ID")
	}

	db := database.GetDB()

	var abilityType models.AbilityType
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&abilityType).Error; err != nil {
		return utils.Error(c, 404, "Ability type not found")
	}

	return c.JSON(abilityType)
}

// POST /api/AbilityTypes
func CreateAbilityType(c *fiber.Ctx) error {
	var abilityType models.AbilityType
	if err := c.BodyParser(&abilityType); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	if abilityType.Name == "" {
		return utils.Error(c, 400, "Ability type name is required")
	}

	abilityType.ID = 0
	abilityType.IsDeleted = false
	abilityType.Version = 1

	db := database.GetDB()
	if err := db.Create(&abilityType).Error; err != nil {
		log.Printf("Error creating ability type: %v", err)
		return utils.Error(c, 500, "Failed to create ability type")
	}

	return c.Status(201).JSON(abilityType)
}

// PUT /api/AbilityTypes/:id
func UpdateAbilityType(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid ability type ID")
	}

	var abilityType models.AbilityType
	if err := c.BodyParser(&abilityType); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}
	if abilityType.ID != id {
		return utils.Error(c, 400, "ID mismatch")
	}
	if abilityType.Name == "" {
		return utils.Error(c, 400, "Ability type name is required")
	}

	db := database.GetDB()
	res := db.Model(&models.AbilityType{}).
		Where("id = ? AND version = ? AND is_deleted = ?", id, abilityType.Version, false).
		Updates(map[string]interface{}{
			"name":        abilityType.Name,
			"description": abilityType.Description,
			"version":     abilityType.Version + 1,
		})
	if res.Error != nil {
		log.Printf("Error updating ability type %d: %v", id, res.Error)
		return utils.Error(c, 500, "Failed to update ability type")
	}
	if res.RowsAffected == 0 {
		return resolveUpdateMiss(c, db, &models.AbilityType{}, id)
	}

	return c.SendStatus(204)
}

// DELETE /api/AbilityTypes/:id
func DeleteAbilityType(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid ability type ID")
	}

	db := database.GetDB()

	var abilityType models.AbilityType
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&abilityType).Error; err != nil {
		return utils.Error(c, 404, "Ability type not found")
	}

	if err := db.Model(&abilityType).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting ability type %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete ability type")
	}

	return c.SendStatus(204)
}
