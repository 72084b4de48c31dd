package route

import (
	"github.com/gofiber/fiber/v2"

	"moodlight_backend/internals/features/journal/questions/controller"
	authMiddleware "moodlight_backend/internals/middlewares/auth"
)

// QuestionRoutes mounts /question; mw should authenticate.
func QuestionRoutes(r fiber.Router, qc *controller.QuestionController, mw ...fiber.Handler) {
	g := r.Group("/question", mw...)
	g.Get("/", qc.FindQuestions)
	g.Get("/:id", qc.FindQuestionByID)

	admin := g.Group("", authMiddleware.OnlyAdmin())
	admin.Post("/", qc.CreateQuestions)
	admin.Put("/", qc.UpdateQuestion)
	admin.Delete("/:id", qc.DeleteQuestion)
}

// QuestionAdminRoutes mounts rotation endpoints on the /api/a group.
func QuestionAdminRoutes(admin fiber.Router, qc *controller.QuestionController) {
	admin.Post("/questions/rotate", qc.Rotate)
	admin.Get("/questions/rotations", qc.RotationLogs)
}
