// handlers/common.go - Shared update/delete plumbing
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shaurya/utils"
)

// resolveUpdateMiss maps a compare-and-swap update that touched zero rows
// to the right status: 409 when the row still exists (stale version), 404
// when it is gone or soft-deleted.
func resolveUpdateMiss(c *fiber.Ctx, db *gorm.DB, model interface{}, id uint) error {
	var count int64
	db.Model(model).Where("id = ? AND is_deleted = ?", id, false).Count(&count)
	if count == 0 {
		return utils.Error(c, 404, "Not found")
	}
	return utils.Error(c, 409, "The record was modified by another request. Reload and retry.")
}
