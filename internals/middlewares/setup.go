package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"moodlight_backend/internals/configs"
	"moodlight_backend/internals/middlewares/logger"
)

func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware(configs.Timezone))
}
