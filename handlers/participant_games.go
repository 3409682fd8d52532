// handlers/participant_games.go - Game registrations
package handlers

import (
	"log"
	"time"

	"shaurya/database"
	"shaurya/models"
	"shaurya/services"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/ParticipantGames
func GetParticipantGames(c *fiber.Ctx) error {
	db := database.GetDB()

	var registrations []models.ParticipantGame
	if err := db.Preload("Participant").Preload("Game").
		Where("is_deleted = ?", false).
		Find(&registrations).Error; err != nil {
		log.Printf("Error fetching registrations: %v", err)
		return utils.Error(c, 500, "Failed to fetch registrations")
	}

	return c.JSON(registrations)
}

// GET /api/ParticipantGames/:id
func GetParticipantGame(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid registration ID")
	}

	db := database.GetDB()

	var registration models.ParticipantGame
	if err := db.Preload("Participant").Preload("Game").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&registration).Error; err != nil {
		return utils.Error(c, 404, "Registration not found")
	}

	return c.JSON(registration)
}

// CreateParticipantGame registers a participant for a game. The
// participant's age must resolve to the game's age category.
// POST /api/ParticipantGames
func CreateParticipantGame(c *fiber.Ctx) error {
	var registration models.ParticipantGame
	if err := c.BodyParser(&registration); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	db := database.GetDB()

	var participant models.Participant
	if err := db.Where("id = ? AND is_deleted = ?", registration.ParticipantID, false).First(&participant).Error; err != nil {
		return utils.Error(c, 400, "Invalid participant ID")
	}
	var game models.Game
	if err := db.Where("id = ? AND is_deleted = ?", registration.GameID, false).First(&game).Error; err != nil {
		return utils.Error(c, 400, "Invalid game ID")
	}

	band, err := services.AgeBand(participant.Age)
	if err != nil {
		return utils.Error(c, 400, err.Error())
	}
	if band != game.AgeCategory {
		return utils.Error(c, 400, "Participant age does not fall in the game's age category")
	}

	var count int64
	db.Model(&models.ParticipantGame{}).
		Where("participant_id = ? AND game_id = ? AND is_deleted = ?", registration.ParticipantID, registration.GameID, false).
		Count(&count)
	if count > 0 {
		return c.Status(409).JSON(fiber.Map{
			"success": false,
			"error":   "Participant is already registered for this game",
		})
	}

	registration.ID = 0
	registration.Participant = nil
	registration.Game = nil
	registration.IsDeleted = false
	registration.RegisteredDate = time.Now()

	if err := db.Create(&registration).Error; err != nil {
		log.Printf("Error creating registration: %v", err)
		return utils.Error(c, 500, "Failed to create registration")
	}

	return c.Status(201).JSON(registration)
}

// DELETE /api/ParticipantGames/:id
func DeleteParticipantGame(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid registration ID")
	}

	db := database.GetDB()

	var registration models.ParticipantGame
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&registration).Error; err != nil {
		return utils.Error(c, 404, "Registration not found")
	}

	if err := db.Model(&registration).Update("is_deleted", true).Error; err != nil {
		log.Printf("Error deleting registration %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete registration")
	}

	return c.SendStatus(204)
}
