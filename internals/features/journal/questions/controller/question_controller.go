package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/features/journal/questions/dto"
	"moodlight_backend/internals/features/journal/questions/repository"
	"moodlight_backend/internals/features/journal/questions/scheduler"
	"moodlight_backend/internals/features/journal/questions/service"
	helper "moodlight_backend/internals/helpers"
	"moodlight_backend/internals/helpers/dbtime"
)

type QuestionController struct {
	Service *service.QuestionService
	Rotator *scheduler.Rotator
}

func NewQuestionController(svc *service.QuestionService, rotator *scheduler.Rotator) *QuestionController {
	return &QuestionController{Service: svc, Rotator: rotator}
}

func parseID(c *fiber.Ctx, name string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func (qc *QuestionController) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrQuestionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, constants.MsgQuestionNotFound)
	case errors.Is(err, repository.ErrQuestionInUse):
		return helper.JsonError(c, fiber.StatusConflict, constants.MsgQuestionInUse)
	default:
		zap.L().Error("question request failed", zap.String("path", c.Path()), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgGenericError)
	}
}

// GET /question?date=today&mood=sad
func (qc *QuestionController) FindQuestions(c *fiber.Ctx) error {
	date := strings.TrimSpace(c.Query("date"))
	mood := constants.Mood(strings.ToLower(strings.TrimSpace(c.Query("mood"))))

	if mood != "" && !mood.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "mood must be one of "+constants.MoodOneOf)
	}
	if date != "" && !strings.EqualFold(date, "today") && !dbtime.ValidDate(date) {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD or today")
	}

	questions, err := qc.Service.FindQuestions(c.UserContext(), date, mood)
	if err != nil {
		return qc.writeError(c, err)
	}
	return helper.JsonOK(c, "ok", questions)
}

// GET /question/:id
func (qc *QuestionController) FindQuestionByID(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	q, err := qc.Service.FindQuestionByID(c.UserContext(), id)
	if err != nil {
		return qc.writeError(c, err)
	}
	return helper.JsonOK(c, "ok", q)
}

// POST /question accepts a single object or an array.
func (qc *QuestionController) CreateQuestions(c *fiber.Ctx) error {
	var req dto.CreateQuestionsRequest
	body := strings.TrimSpace(string(c.Body()))
	if strings.HasPrefix(body, "[") {
		if err := c.BodyParser(&req.Questions); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	} else {
		var one dto.CreateQuestionRequest
		if err := c.BodyParser(&one); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		req.Questions = []dto.CreateQuestionRequest{one}
	}

	for i := range req.Questions {
		req.Questions[i].Normalize()
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	created, err := qc.Service.CreateQuestions(c.UserContext(), req.Questions)
	if err != nil {
		return qc.writeError(c, err)
	}
	return helper.JsonCreated(c, "Questions created", created)
}

// PUT /question
func (qc *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	q, err := qc.Service.UpdateQuestion(c.UserContext(), req)
	if err != nil {
		return qc.writeError(c, err)
	}
	return helper.JsonUpdated(c, "Question updated", q)
}

// DELETE /question/:id
func (qc *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	if err := qc.Service.DeleteQuestion(c.UserContext(), id); err != nil {
		return qc.writeError(c, err)
	}
	return helper.JsonDeleted(c, "Question deleted", fiber.Map{"id": id})
}

// POST /api/a/questions/rotate
func (qc *QuestionController) Rotate(c *fiber.Ctx) error {
	res, err := qc.Rotator.RunNow(c.UserContext())
	if err != nil {
		return qc.writeError(c, err)
	}
	return helper.JsonOK(c, "Rotation completed", res)
}

// GET /api/a/questions/rotations?take=
func (qc *QuestionController) RotationLogs(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	logs, err := repository.LatestRotationLogs(c.UserContext(), qc.Service.DB, p.Take)
	if err != nil {
		return qc.writeError(c, err)
	}
	return helper.JsonOK(c, "ok", logs)
}
