package details

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerController "moodlight_backend/internals/features/journal/answers/controller"
	answerRoute "moodlight_backend/internals/features/journal/answers/route"
	answerService "moodlight_backend/internals/features/journal/answers/service"
	commentController "moodlight_backend/internals/features/journal/comments/controller"
	commentRoute "moodlight_backend/internals/features/journal/comments/route"
	commentService "moodlight_backend/internals/features/journal/comments/service"
	questionController "moodlight_backend/internals/features/journal/questions/controller"
	questionRoute "moodlight_backend/internals/features/journal/questions/route"
	questionScheduler "moodlight_backend/internals/features/journal/questions/scheduler"
	questionService "moodlight_backend/internals/features/journal/questions/service"
	"moodlight_backend/internals/helpers/dbtime"
	"moodlight_backend/internals/infra/events"
	rateLimiter "moodlight_backend/internals/middlewares"
)

type JournalDeps struct {
	DB                  *gorm.DB
	Events              events.Publisher
	Clock               dbtime.Clock
	Location            *time.Location
	Questions           *questionService.QuestionService
	Rotator             *questionScheduler.Rotator
	LegacyLikeDecrement bool
}

// JournalRoutes mounts /question, /answer and /comment. The question
// controller is returned so the admin group can reuse it.
func JournalRoutes(app *fiber.App, d JournalDeps, requireAuth fiber.Handler) *questionController.QuestionController {
	limiter := rateLimiter.GlobalRateLimiter()

	qc := questionController.NewQuestionController(d.Questions, d.Rotator)
	questionRoute.QuestionRoutes(app, qc, limiter, requireAuth)

	ac := answerController.NewAnswerController(
		answerService.NewAnswerService(d.DB),
		answerService.NewLikeService(d.DB, d.Events, d.LegacyLikeDecrement),
		d.Clock,
		d.Location,
	)
	answerRoute.AnswerRoutes(app, ac, limiter, requireAuth)

	cc := commentController.NewCommentController(commentService.NewCommentService(d.DB, d.Events))
	commentRoute.CommentRoutes(app, cc, limiter, requireAuth)

	return qc
}

func JournalAdminRoutes(admin fiber.Router, qc *questionController.QuestionController) {
	questionRoute.QuestionAdminRoutes(admin, qc)
}
