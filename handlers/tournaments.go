// handlers/tournaments.go
package handlers

import (
	"log"
	"time"

	"shaurya/database"
	"shaurya/models"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/Tournaments
func GetTournaments(c *fiber.Ctx) error {
	db := database.GetDB()

	var tournaments []models.Tournament
	if err := db.Preload("Activities", "is_deleted = ?", false).
		Where("is_deleted = ?", false).
		Find(&tournaments).Error; err != nil {
		log.Printf("Error fetching tournaments: %v", err)
		return utils.Error(c, 500, "Failed to fetch tournaments")
	}

	return c.JSON(tournaments)
}

// GET /api/Tournaments/:id
func GetTournament(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid tournament ID")
	}

	db := database.GetDB()

	var tournament models.Tournament
	if err := db.Preload("Activities", "is_deleted = ?", false).
		Preload("Activities.Allocations").
		Preload("Activities.Allocations.Ground").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&tournament).Error; err != nil {
		return utils.Error(c, 404, "Tournament not found")
	}

	return c.JSON(tournament)
}

// POST /api/Tournaments
func CreateTournament(c *fiber.Ctx) error {
	var tournament models.Tournament
	if err := c.BodyParser(&tournament); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	if tournament.Name == "" {
		return utils.Error(c, 400, "Tournament name is required")
	}
	if !tournament.StartDate.Before(tournament.EndDate) {
		return utils.Error(c, 400, "Start date must be before end date")
	}

	tournament.ID = 0
	tournament.IsActive = true
	tournament.IsDeleted = false
	tournament.Version = 1
	tournament.CreatedAt = time.Now()
	tournament.UpdatedAt = nil

	db := database.GetDB()
	if err := db.Create(&tournament).Error; err != nil {
		log.Printf("Error creating tournament: %v", err)
		return utils.Error(c, 500, "Failed to create tournament")
	}

	return c.Status(201).JSON(tournament)
}

// PUT /api/Tournaments/:id
func UpdateTournament(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid tournament ID")
	}

	var tournament models.Tournament
	if err := c.BodyParser(&tournament); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}
	if tournament.ID != id {
		return utils.Error(c, 400, "ID mismatch")
	}
	if tournament.Name == "" {
		return utils.Error(c, 400, "Tournament name is required")
	}
	if !tournament.StartDate.Before(tournament.EndDate) {
		return utils.Error(c, 400, "Start date must be before end date")
	}

	db := database.GetDB()
	now := time.Now()
	res := db.Model(&models.Tournament{}).
		Where("id = ? AND version = ? AND is_deleted = ?", id, tournament.Version, false).
		Updates(map[string]interface{}{
			"name":        tournament.Name,
			"description": tournament.Description,
			"start_date":  tournament.StartDate,
			"end_date":    tournament.EndDate,
			"location":    tournament.Location,
			"is_active":   tournament.IsActive,
			"version":     tournament.Version + 1,
			"updated_at":  now,
		})
	if res.Error != nil {
		log.Printf("Error updating tournament %d: %v", id, res.Error)
		return utils.Error(c, 500, "Failed to update tournament")
	}
	if res.RowsAffected == 0 {
		return resolveUpdateMiss(c, db, &models.Tournament{}, id)
	}

	return c.SendStatus(204)
}

// DELETE /api/Tournaments/:id
func DeleteTournament(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid tournament ID")
	}

	db := database.GetDB()

	var tournament models.Tournament
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&tournament).Error; err != nil {
		return utils.Error(c, 404, "Tournament not found")
	}

	now := time.Now()
	if err := db.Model(&tournament).Updates(map[string]interface{}{
		"is_deleted": true,
		"is_active":  false,
		"updated_at": now,
	}).Error; err != nil {
		log.Printf("Error deleting tournament %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete tournament")
	}

	return c.SendStatus(204)
}

// AddActivityToTournament attaches an activity to a tournament.
// POST /api/Tournaments/:tournamentId/activities/:activityId
func AddActivityToTournament(c *fiber.Ctx) error {
	tournamentID, err := utils.ParseIDParam(c, "tournamentId")
	if err != nil {
		return utils.Error(c, 400, "Invalid tournament ID")
	}
	activityID, err := utils.ParseIDParam(c, "activityId")
	if err != nil {
		return utils.Error(c, 400, "Invalid activity ID")
	}

	db := database.GetDB()

	var tournament models.Tournament
	if err := db.First(&tournament, tournamentID).Error; err != nil {
		return utils.Error(c, 404, "Tournament not found")
	}
	var activity models.Activity
	if err := db.First(&activity, activityID).Error; err != nil {
		return utils.Error(c, 404, "Activity not found")
	}

	if tournament.IsDeleted || activity.IsDeleted {
		return utils.Error(c, 400, "Cannot add deleted items")
	}

	if err := db.Model(&activity).Update("tournament_id", tournamentID).Error; err != nil {
		log.Printf("Error attaching activity %d to tournament %d: %v", activityID, tournamentID, err)
		return utils.Error(c, 500, "Failed to add activity to tournament")
	}

	return c.SendStatus(200)
}

// RemoveActivityFromTournament detaches an activity from a tournament.
// DELETE /api/Tournaments/:tournamentId/activities/:activityId
func RemoveActivityFromTournament(c *fiber.Ctx) error {
	tournamentID, err := utils.ParseIDParam(c, "tournamentId")
	if err != nil {
		return utils.Error(c, 400, "Invalid tournament ID")
	}
	activityID, err := utils.ParseIDParam(c, "activityId")
	if err != nil {
		return utils.Error(c, 400, "Invalid activity ID")
	}

	db := database.GetDB()

	var activity models.Activity
	if err := db.First(&activity, activityID).Error; err != nil {
		return utils.Error(c, 404, "Activity not found")
	}
	if activity.TournamentID == nil || *activity.TournamentID != tournamentID {
		return utils.Error(c, 404, "Activity not attached to this tournament")
	}

	if err := db.Model(&activity).Update("tournament_id", nil).Error; err != nil {
		log.Printf("Error detaching activity %d from tournament %d: %v", activityID, tournamentID, err)
		return utils.Error(c, 500, "Failed to remove activity from tournament")
	}

	return c.SendStatus(200)
}

// GetTournamentActivities lists the non-deleted activities of a tournament.
// GET /api/Tournaments/:id/activities
func GetTournamentActivities(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid tournament ID")
	}

	db := database.GetDB()

	var tournament models.Tournament
	if err := db.Preload("Activities", "is_deleted = ?", false).
		Preload("Activities.Allocations").
		Preload("Activities.Allocations.Ground").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&tournament).Error; err != nil {
		return utils.Error(c, 404, "Tournament not found")
	}

	return c.JSON(tournament.Activities)
}
