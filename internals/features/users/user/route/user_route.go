package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "moodlight_backend/internals/features/users/user/controller"
)

// UserPublicRoutes is mounted on /api/user without auth.
func UserPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)
	r.Get("/exist", ctrl.Exist)
}

// UserRoutes is mounted on /api/user behind AuthMiddleware.
func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)
	r.Get("/:userId", ctrl.GetByID)
	r.Put("/", ctrl.UpdateMe)
	r.Delete("/", ctrl.DeleteMe)
}
