// handlers/activity_categories.go
package handlers

import (
	"log"

	"shaurya/database"
	"shaurya/models"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
)

// ActivityCategory rows carry no lifecycle flag; deletes are physical.

// GET /api/ActivityCategories
func GetActivityCategories(c *fiber.Ctx) error {
	db := database.GetDB()

	var categories []models.ActivityCategory
	if err := db.Preload("Activity").Preload("AbilityType").Find(&categories).Error; err != nil {
		log.Printf("Error fetching activity categories: %v", err)
		return utils.Error(c, 500, "Failed to fetch activity categories")
	}

	return c.JSON(categories)
}

// GET /api/ActivityCategories/:id
func GetActivityCategory(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid activity category ID")
	}

	db := database.GetDB()

	var category models.ActivityCategory
	if err := db.Preload("Activity").Preload("AbilityType").First(&category, id).Error; err != nil {
		return utils.Error(c, 404, "Activity category not found")
	}

	return c.JSON(category)
}

// POST /api/ActivityCategories
func CreateActivityCategory(c *fiber.Ctx) error {
	var category models.ActivityCategory
	if err := c.BodyParser(&category); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	db := database.GetDB()

	var activity models.Activity
	if err := db.Where("id = ? AND is_deleted = ?", category.ActivityID, false).First(&activity).Error; err != nil {
		return utils.Error(c, 400, "Invalid activity ID")
	}
	var ability models.AbilityType
	if err := db.Where("id = ? AND is_deleted = ?", category.AbilityTypeID, false).First(&ability).Error; err != nil {
		return utils.Error(c, 400, "Invalid ability type ID")
	}

	category.ID = 0
	if err := db.Create(&category).Error; err != nil {
		log.Printf("Error creating activity category: %v", err)
		return utils.Error(c, 500, "Failed to create activity category")
	}

	return c.Status(201).JSON(category)
}

// PUT /api/ActivityCategories/:id
func UpdateActivityCategory(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid activity category ID")
	}

	var category models.ActivityCategory
	if err := c.BodyParser(&category); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}
	if category.ID != id {
		return utils.Error(c, 400, "ID mismatch")
	}

	db := database.GetDB()

	var existing models.ActivityCategory
	if err := db.First(&existing, id).Error; err != nil {
		return utils.Error(c, 404, "Activity category not found")
	}

	if err := db.Model(&existing).Updates(map[string]interface{}{
		"activity_id":     category.ActivityID,
		"ability_type_id": category.AbilityTypeID,
		"exclusion_type":  category.ExclusionType,
	}).Error; err != nil {
		log.Printf("Error updating activity category %d: %v", id, err)
		return utils.Error(c, 500, "Failed to update activity category")
	}

	return c.SendStatus(204)
}

// DELETE /api/ActivityCategories/:id
func DeleteActivityCategory(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid activity category ID")
	}

	db := database.GetDB()

	var category models.ActivityCategory
	if err := db.First(&category, id).Error; err != nil {
		return utils.Error(c, 404, "Activity category not found")
	}

	if err := db.Delete(&category).Error; err != nil {
		log.Printf("Error deleting activity category %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete activity category")
	}

	return c.SendStatus(204)
}
