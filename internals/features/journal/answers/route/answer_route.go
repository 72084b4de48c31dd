package route

import (
	"github.com/gofiber/fiber/v2"

	"moodlight_backend/internals/features/journal/answers/controller"
)

// AnswerRoutes mounts /answer; mw should authenticate. Static segments
// are registered before /:questionId.
func AnswerRoutes(r fiber.Router, ac *controller.AnswerController, mw ...fiber.Handler) {
	g := r.Group("/answer", mw...)

	g.Get("/count/:date", ac.GetCountOfAnswers)
	g.Get("/my/all", ac.FindAllMyAnswers)
	g.Get("/my/exist/:date", ac.ExistMyAnswer)
	g.Get("/my", ac.FindMyAnswers)
	g.Get("/:questionId", ac.FindAnswers)

	g.Put("/like/:isLike", ac.ToggleLike)
	g.Post("/", ac.CreateAnswer)
	g.Put("/", ac.UpdateAnswer)
	g.Delete("/:id", ac.DeleteAnswer)
}
