package auth

import (
	"github.com/gofiber/fiber/v2"

	"moodlight_backend/internals/constants"
)

// OnlyAdmin must run after AuthMiddleware.
func OnlyAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, _ := c.Locals("is_admin").(bool)
		if !isAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.MsgUserNotAdmin)
		}
		return c.Next()
	}
}
