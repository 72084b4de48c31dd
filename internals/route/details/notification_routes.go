package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationRoute "moodlight_backend/internals/features/notifications/route"
)

func NotificationRoutes(app *fiber.App, db *gorm.DB, requireAuth fiber.Handler) {
	notificationRoute.NotificationUserRoutes(app, db, requireAuth)
}
