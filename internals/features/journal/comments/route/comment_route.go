package route

import (
	"github.com/gofiber/fiber/v2"

	"moodlight_backend/internals/features/journal/comments/controller"
)

func CommentRoutes(r fiber.Router, cc *controller.CommentController, mw ...fiber.Handler) {
	g := r.Group("/comment", mw...)
	g.Get("/count/:answerId", cc.CountComments)
	g.Get("/:answerId", cc.FindComments)
	g.Post("/", cc.CreateComment)
	g.Put("/", cc.UpdateComment)
	g.Delete("/:id", cc.DeleteComment)
}
