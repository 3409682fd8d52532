// handlers/ground_allocations.go - Ground booking with conflict detection
package handlers

import (
	"errors"
	"log"

	"shaurya/database"
	"shaurya/models"
	"shaurya/services"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GET /api/GroundAllocations
func GetGroundAllocations(c *fiber.Ctx) error {
	db := database.GetDB()

	var allocations []models.GroundAllocation
	if err := db.Preload("Ground").Preload("Activity").Find(&allocations).Error; err != nil {
		log.Printf("Error fetching ground allocations: %v", err)
		return utils.Error(c, 500, "Failed to fetch ground allocations")
	}

	return c.JSON(allocations)
}

// GET /api/GroundAllocations/:id
func GetGroundAllocation(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid allocation ID")
	}

	db := database.GetDB()

	var allocation models.GroundAllocation
	if err := db.Preload("Ground").Preload("Activity").First(&allocation, id).Error; err != nil {
		return utils.Error(c, 404, "Ground allocation not found")
	}

	return c.JSON(allocation)
}

// CreateGroundAllocation books a ground for an activity. The conflict scan
// and the insert run in one transaction so two rival bookings cannot both
// pass the check against the same snapshot.
// POST /api/GroundAllocations
func CreateGroundAllocation(c *fiber.Ctx) error {
	var allocation models.GroundAllocation
	if err := c.BodyParser(&allocation); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	db := database.GetDB()

	var ground models.Ground
	if err := db.Where("id = ? AND is_deleted = ?", allocation.GroundID, false).First(&ground).Error; err != nil {
		return utils.Error(c, 400, "Invalid ground ID")
	}
	var activity models.Activity
	if err := db.Where("id = ? AND is_deleted = ?", allocation.ActivityID, false).First(&activity).Error; err != nil {
		return utils.Error(c, 400, "Invalid activity ID")
	}

	allocation.ID = 0
	allocation.Ground = nil
	allocation.Activity = nil

	if err := commitAllocation(db, &allocation, 0); err != nil {
		return allocationError(c, err)
	}

	services.PublishAllocationEvent(services.EventAllocationCreated, &allocation)
	return c.Status(201).JSON(allocation)
}

// UpdateGroundAllocation reschedules a booking, excluding the booking
// itself from the conflict scan.
// PUT /api/GroundAllocations/:id
func UpdateGroundAllocation(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid allocation ID")
	}

	var allocation models.GroundAllocation
	if err := c.BodyParser(&allocation); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}
	if allocation.ID != id {
		return utils.Error(c, 400, "ID mismatch")
	}

	db := database.GetDB()

	var existing models.GroundAllocation
	if err := db.First(&existing, id).Error; err != nil {
		return utils.Error(c, 404, "Ground allocation not found")
	}

	allocation.Ground = nil
	allocation.Activity = nil

	if err := commitAllocation(db, &allocation, id); err != nil {
		return allocationError(c, err)
	}

	services.PublishAllocationEvent(services.EventAllocationUpdated, &allocation)
	return c.SendStatus(204)
}

// DELETE /api/GroundAllocations/:id
func DeleteGroundAllocation(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid allocation ID")
	}

	db := database.GetDB()

	var allocation models.GroundAllocation
	if err := db.First(&allocation, id).Error; err != nil {
		return utils.Error(c, 404, "Ground allocation not found")
	}

	if err := db.Delete(&allocation).Error; err != nil {
		log.Printf("Error deleting ground allocation %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete ground allocation")
	}

	services.PublishAllocationEvent(services.EventAllocationDeleted, &allocation)
	return c.SendStatus(204)
}

// commitAllocation runs the load-check-write cycle inside one transaction.
// excludeID carries the id of the booking being replaced, 0 for creates.
func commitAllocation(db *gorm.DB, allocation *models.GroundAllocation, excludeID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing []models.GroundAllocation
		if err := tx.Where("ground_id = ?", allocation.GroundID).
			Order("id").
			Find(&existing).Error; err != nil {
			return err
		}

		if err := services.CheckGroundConflict(existing, allocation.StartTime, allocation.EndTime, excludeID); err != nil {
			return err
		}

		if excludeID == 0 {
			return tx.Create(allocation).Error
		}
		return tx.Model(&models.GroundAllocation{}).
			Where("id = ?", excludeID).
			Updates(map[string]interface{}{
				"ground_id":   allocation.GroundID,
				"activity_id": allocation.ActivityID,
				"start_time":  allocation.StartTime,
				"end_time":    allocation.EndTime,
			}).Error
	})
}

func allocationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrInvalidInterval) {
		return utils.Error(c, 400, err.Error())
	}

	var conflict *services.ConflictError
	if errors.As(err, &conflict) {
		return c.Status(409).JSON(fiber.Map{
			"success":                  false,
			"error":                    conflict.Error(),
			"conflicting_allocation_id": conflict.AllocationID,
		})
	}

	log.Printf("Error committing ground allocation: %v", err)
	return utils.Error(c, 500, "Failed to save ground allocation")
}
