package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "moodlight_backend/internals/features/users/user/route"
	rateLimiter "moodlight_backend/internals/middlewares"
)

func UserRoutes(app *fiber.App, db *gorm.DB, requireAuth fiber.Handler) {
	api := app.Group("/api/user", rateLimiter.GlobalRateLimiter())

	// 🔓 /api/user/exist
	userRoute.UserPublicRoutes(api, db)

	// 🔐 everything else
	userRoute.UserRoutes(api.Group("", requireAuth), db)
}
