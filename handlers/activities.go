// handlers/activities.go
package handlers

import (
	"log"

	"shaurya/database"
	"shaurya/models"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/Activities
func GetActivities(c *fiber.Ctx) error {
	db := database.GetDB()

	var activities []models.Activity
	if err := db.Preload("Categories").Where("is_deleted = ?", false).Find(&activities).Error; err != nil {
		log.Printf("Error fetching activities: %v", err)
		return utils.Error(c, 500, "Failed to fetch activities")
	}

	return c.JSON(activities)
}

// GET /api/Activities/:id
func GetActivity(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid activity ID")
	}

	db := database.GetDB()

	var activity models.Activity
	if err := db.Preload("Categories").Preload("Allocations").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&activity).Error; err != nil {
		return utils.Error(c, 404, "Activity not found")
	}

	return c.JSON(activity)
}

// POST /api/Activities
func CreateActivity(c *fiber.Ctx) error {
	var activity models.Activity
	if err := c.BodyParser(&activity); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	if activity.Name == "" {
		return utils.Error(c, 400, "Activity name is required")
	}

	activity.ID = 0
	activity.IsDeleted = false
	activity.Version = 1

	db := database.GetDB()
	if err := db.Create(&activity).Error; err != nil {
		log.Printf("Error creating activity: %v", err)
		return utils.Error(c, 500, "Failed to create activity")
	}

	return c.Status(201).JSON(activity)
}

// PUT /api/Activities/:id
func UpdateActivity(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid activity ID")
	}

	var activity models.Activity
	if err := c.BodyParser(&activity); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}
	if activity.ID != id {
		return utils.Error(c, 400, "ID mismatch")
	}
	if activity.Name == "" {
		return utils.Error(c, 400, "Activity name is required")
	}

	db := database.GetDB()
	res := db.Model(&models.Activity{}).
		Where("id = ? AND version = ? AND is_deleted = ?", id, activity.Version, false).
		Updates(map[string]interface{}{
			"name":          activity.Name,
			"rules":         activity.Rules,
			"tournament_id": activity.TournamentID,
			"version":       activity.Version + 1,
		})
	if res.Error != nil {
		log.Printf("Error updating activity %d: %v", id, res.Error)
		return utils.Error(c, 500, "Failed to update activity")
	}
	if res.RowsAffected == 0 {
		return resolveUpdateMiss(c, db, &models.Activity{}, id)
	}

	return c.SendStatus(204)
}

// DELETE /api/Activities/:id
func DeleteActivity(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid activity ID")
	}

	db := database.GetDB()

	var activity models.Activity
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&activity).Error; err != nil {
		return utils.Error(c, 404, "Activity not found")
	}

	if err := db.Model(&activity).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting activity %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete activity")
	}

	return c.SendStatus(204)
}
