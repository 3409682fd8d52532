// handlers/participants.go
package handlers

import (
	"log"
	"time"

	"shaurya/database"
	"shaurya/models"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetParticipants returns all non-deleted participants with their
// organization and ability type preloaded.
// GET /api/Participants
func GetParticipants(c *fiber.Ctx) error {
	db := database.GetDB()

	var participants []models.Participant
	if err := db.Preload("Organization").Preload("AbilityType").
		Where("is_deleted = ?", false).
		Find(&participants).Error; err != nil {
		log.Printf("Error fetching participants: %v", err)
		return utils.Error(c, 500, "Failed to fetch participants")
	}

	return c.JSON(participants)
}

// GET /api/Participants/:id
func GetParticipant(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid participant ID")
	}

	db := database.GetDB()

	var participant models.Participant
	if err := db.Preload("Organization").Preload("AbilityType").
		Where("id = ? AND is_deleted = ?", id, false).
		First(&participant).Error; err != nil {
		return utils.Error(c, 404, "Participant not found")
	}

	return c.JSON(participant)
}

// CreateParticipant registers a participant and assigns a registration
// reference.
// POST /api/Participants
func CreateParticipant(c *fiber.Ctx) error {
	var participant models.Participant
	if err := c.BodyParser(&participant); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	if participant.Name == "" {
		return utils.Error(c, 400, "Participant name is required")
	}
	if participant.Age <= 0 {
		return utils.Error(c, 400, "Age must be a positive integer")
	}

	db := database.GetDB()

	var org models.Organization
	if err := db.Where("id = ? AND is_deleted = ?", participant.OrganizationID, false).First(&org).Error; err != nil {
		return utils.Error(c, 400, "Invalid organization ID")
	}
	var ability models.AbilityType
	if err := db.Where("id = ? AND is_deleted = ?", participant.AbilityTypeID, false).First(&ability).Error; err != nil {
		return utils.Error(c, 400, "Invalid ability type ID")
	}

	participant.ID = 0
	participant.IsDeleted = false
	participant.Version = 1
	participant.RegistrationRef = uuid.New().String()
	participant.CreatedDate = time.Now()
	participant.UpdatedDate = nil

	if err := db.Create(&participant).Error; err != nil {
		log.Printf("Error creating participant: %v", err)
		return utils.Error(c, 500, "Failed to create participant")
	}

	return c.Status(201).JSON(participant)
}

// PUT /api/Participants/:id
func UpdateParticipant(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid participant ID")
	}

	var participant models.Participant
	if err := c.BodyParser(&participant); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}
	if participant.ID != id {
		return utils.Error(c, 400, "ID mismatch")
	}
	if participant.Name == "" {
		return utils.Error(c, 400, "Participant name is required")
	}
	if participant.Age <= 0 {
		return utils.Error(c, 400, "Age must be a positive integer")
	}

	db := database.GetDB()
	now := time.Now()
	res := db.Model(&models.Participant{}).
		Where("id = ? AND version = ? AND is_deleted = ?", id, participant.Version, false).
		Updates(map[string]interface{}{
			"name":              participant.Name,
			"age":               participant.Age,
			"gender":            participant.Gender,
			"blood_group":       participant.BloodGroup,
			"organization_id":   participant.OrganizationID,
			"ability_type_id":   participant.AbilityTypeID,
			"contact":           participant.Contact,
			"emergency_contact": participant.EmergencyContact,
			"address":           participant.Address,
			"medical_notes":     participant.MedicalNotes,
			"version":           participant.Version + 1,
			"updated_date":      now,
		})
	if res.Error != nil {
		log.Printf("Error updating participant %d: %v", id, res.Error)
		return utils.Error(c, 500, "Failed to update participant")
	}
	if res.RowsAffected == 0 {
		return resolveUpdateMiss(c, db, &models.Participant{}, id)
	}

	return c.SendStatus(204)
}

// DELETE /api/Participants/:id
func DeleteParticipant(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid participant ID")
	}

	db := database.GetDB()

	var participant models.Participant
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&participant).Error; err != nil {
		return utils.Error(c, 404, "Participant not found")
	}

	now := time.Now()
	if err := db.Model(&participant).Updates(map[string]interface{}{
		"is_deleted":   true,
		"updated_date": now,
	}).Error; err != nil {
		log.Printf("Error deleting participant %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete participant")
	}

	return c.SendStatus(204)
}
