// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "moodlight_backend/internals/features/users/auth/controller"
	middlewares "moodlight_backend/internals/middlewares"
	authMiddleware "moodlight_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /api/auth.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// 🔓 Public
	baseAuth := app.Group("/api/auth")
	baseAuth.Post("/join", middlewares.JoinRateLimiter(), authController.Join)
	baseAuth.Post("/login", middlewares.LoginRateLimiter(), authController.Login)

	// 🔐 Protected
	protected := baseAuth.Group("", authMiddleware.AuthMiddleware(db))
	protected.Get("/", authController.Me)
	protected.Post("/change-password", authController.ChangePassword)
	protected.Post("/logout", authController.Logout)
}
