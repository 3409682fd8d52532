// utils/respond.go - Shared handler helpers
package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Error sends a JSON error response with the given status.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// ParseIDParam reads a numeric :id-style route parameter.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// QueryInt reads an integer query parameter, returning ok=false when the
// parameter is missing or malformed.
func QueryInt(c *fiber.Ctx, name string) (int, bool) {
	val := c.Query(name)
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}
