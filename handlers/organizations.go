// handlers/organizations.go
package handlers

import (
	"log"
	"time"

	"shaurya/database"
	"shaurya/models"
	"shaurya/utils"

	"github.com/gofiber/fiber/v2"
)

// GetOrganizations returns all non-deleted organizations.
// GET /api/Organizations
func GetOrganizations(c *fiber.Ctx) error {
	db := database.GetDB()

	var orgs []models.Organization
	if err := db.Where("is_deleted = ?", false).Find(&orgs).Error; err != nil {
		log.Printf("Error fetching organizations: %v", err)
		return utils.Error(c, 500, "Failed to fetch organizations")
	}

	return c.JSON(orgs)
}

// GetOrganization returns one organization by id.
// GET /api/Organizations/:id
func GetOrganization(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid organization ID")
	}

	db := database.GetDB()

	var org models.Organization
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&org).Error; err != nil {
		return utils.Error(c, 404, "Organization not found")
	}

	return c.JSON(org)
}

// CreateOrganization creates an organization.
// POST /api/Organizations
func CreateOrganization(c *fiber.Ctx) error {
	var org models.Organization
	if err := c.BodyParser(&org); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}

	if org.Name == "" {
		return utils.Error(c, 400, "Organization name is required")
	}

	org.ID = 0
	org.IsDeleted = false
	org.Version = 1
	org.CreatedDate = time.Now()
	org.UpdatedDate = nil

	db := database.GetDB()
	if err := db.Create(&org).Error; err != nil {
		log.Printf("Error creating organization: %v", err)
		return utils.Error(c, 500, "Failed to create organization")
	}

	return c.Status(201).JSON(org)
}

// UpdateOrganization updates an organization using its version stamp.
// PUT /api/Organizations/:id
func UpdateOrganization(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid organization ID")
	}

	var org models.Organization
	if err := c.BodyParser(&org); err != nil {
		return utils.Error(c, 400, "Invalid request body")
	}
	if org.ID != id {
		return utils.Error(c, 400, "ID mismatch")
	}
	if org.Name == "" {
		return utils.Error(c, 400, "Organization name is required")
	}

	db := database.GetDB()
	now := time.Now()
	res := db.Model(&models.Organization{}).
		Where("id = ? AND version = ? AND is_deleted = ?", id, org.Version, false).
		Updates(map[string]interface{}{
			"name":         org.Name,
			"contact":      org.Contact,
			"version":      org.Version + 1,
			"updated_date": now,
		})
	if res.Error != nil {
		log.Printf("Error updating organization %d: %v", id, res.Error)
		return utils.Error(c, 500, "Failed to update organization")
	}
	if res.RowsAffected == 0 {
		return resolveUpdateMiss(c, db, &models.Organization{}, id)
	}

	return c.SendStatus(204)
}

// DeleteOrganization soft-deletes an organization.
// DELETE /api/Organizations/:id
func DeleteOrganization(c *fiber.Ctx) error {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		return utils.Error(c, 400, "Invalid organization ID")
	}

	db := database.GetDB()

	var org models.Organization
	if err := db.Where("id = ? AND is_deleted = ?", id, false).First(&org).Error; err != nil {
		return utils.Error(c, 404, "Organization not found")
	}

	now := time.Now()
	if err := db.Model(&org).Updates(map[string]interface{}{
		"is_deleted":   true,
		"updated_date": now,
	}).Error; err != nil {
		log.Printf("Error deleting organization %d: %v", id, err)
		return utils.Error(c, 500, "Failed to delete organization")
	}

	return c.SendStatus(204)
}
