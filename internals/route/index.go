// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	routeDetails "moodlight_backend/internals/route/details"
	authMiddleware "moodlight_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, d Deps) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, d.DB)

	// ===================== AUTH / USER =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, d.DB)

	requireAuth := authMiddleware.AuthMiddleware(d.DB)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(app, d.DB, requireAuth)

	// ===================== JOURNAL =====================
	log.Println("[INFO] Mounting Journal routes...")
	journal := routeDetails.JournalDeps{
		DB:                  d.DB,
		Events:              d.Events,
		Clock:               d.Clock,
		Location:            d.Location,
		Questions:           d.Questions,
		Rotator:             d.Rotator,
		LegacyLikeDecrement: d.LegacyLikeDecrement,
	}
	qc := routeDetails.JournalRoutes(app, journal, requireAuth)

	log.Println("[INFO] Mounting Notification routes...")
	routeDetails.NotificationRoutes(app, d.DB, requireAuth)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + OnlyAdmin)...")
	admin := app.Group("/api/a", requireAuth, authMiddleware.OnlyAdmin())
	routeDetails.JournalAdminRoutes(admin, qc)
}
