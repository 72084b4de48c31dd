package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moodlight_backend/internals/features/notifications/controller"
)

func NotificationUserRoutes(user fiber.Router, db *gorm.DB, mw ...fiber.Handler) {
	ctrl := controller.NewNotificationController(db)

	notification := user.Group("/notification", mw...)
	notification.Get("/", ctrl.GetMyNotifications)
	notification.Put("/:id/read", ctrl.MarkAsRead)
}
