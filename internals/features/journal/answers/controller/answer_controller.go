package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/features/journal/answers/dto"
	"moodlight_backend/internals/features/journal/answers/repository"
	"moodlight_backend/internals/features/journal/answers/service"
	questionRepo "moodlight_backend/internals/features/journal/questions/repository"
	helper "moodlight_backend/internals/helpers"
	"moodlight_backend/internals/helpers/dbtime"
)

const (
	defaultTake = 20
	maxTake     = 100
)

type AnswerController struct {
	Answers *service.AnswerService
	Likes   *service.LikeService
	Clock   dbtime.Clock
	Loc     *time.Location
}

func NewAnswerController(answers *service.AnswerService, likes *service.LikeService, clock dbtime.Clock, loc *time.Location) *AnswerController {
	if clock == nil {
		clock = dbtime.SystemClock{}
	}
	if loc == nil {
		loc = dbtime.LoadLocation("")
	}
	return &AnswerController{Answers: answers, Likes: likes, Clock: clock, Loc: loc}
}

func parseUintParam(c *fiber.Ctx, name string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func (ac *AnswerController) resolveDate(c *fiber.Ctx) (string, bool) {
	date := dbtime.ResolveDate(c.Params("date"), ac.Clock, ac.Loc)
	return date, dbtime.ValidDate(date)
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repository.ErrAnswerNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, constants.MsgAnswerNotFound)
	case errors.Is(err, service.ErrAnswerPrivate):
		return helper.JsonError(c, fiber.StatusForbidden, constants.MsgAnswerPrivate)
	case errors.Is(err, questionRepo.ErrQuestionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, constants.MsgQuestionNotFound)
	case errors.Is(err, service.ErrQuestionNotActivated):
		return helper.JsonError(c, fiber.StatusBadRequest, constants.MsgQuestionNotActivated)
	default:
		zap.L().Error("answer request failed", zap.String("path", c.Path()), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgGenericError)
	}
}

// GET /answer/count/:date
func (ac *AnswerController) GetCountOfAnswers(c *fiber.Ctx) error {
	date, ok := ac.resolveDate(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD or today")
	}
	counts, err := ac.Answers.GetCountOfAnswers(c.UserContext(), date)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonOK(c, "ok", counts)
}

// GET /answer/my?start=&take=
func (ac *AnswerController) FindMyAnswers(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, defaultTake, maxTake)

	rows, total, err := ac.Answers.FindMyAnswers(c.UserContext(), viewer, p.Skip, p.Take)
	if err != nil {
		return writeError(c, err)
	}
	pg := helper.BuildPagination(total, p.Skip, p.Take)
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /answer/my/all
func (ac *AnswerController) FindAllMyAnswers(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := ac.Answers.FindAllMyAnswers(c.UserContext(), viewer)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonList(c, "ok", rows, nil)
}

// GET /answer/my/exist/:date
func (ac *AnswerController) ExistMyAnswer(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	date, ok := ac.resolveDate(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD or today")
	}
	exist, err := ac.Answers.ExistMyAnswer(c.UserContext(), viewer, date)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ExistAnswerResponse{Exist: exist})
}

// GET /answer/:questionId?start=&take=
func (ac *AnswerController) FindAnswers(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	questionID, ok := parseUintParam(c, "questionId")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}
	p := helper.ResolvePaging(c, defaultTake, maxTake)

	rows, total, err := ac.Answers.FindAnswers(c.UserContext(), questionID, viewer, p.Skip, p.Take)
	if err != nil {
		return writeError(c, err)
	}
	pg := helper.BuildPagination(total, p.Skip, p.Take)
	return helper.JsonList(c, "ok", rows, &pg)
}

// PUT /answer/like/:isLike  body {"answerId": 1}
func (ac *AnswerController) ToggleLike(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	isLike, err := strconv.ParseBool(c.Params("isLike"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "isLike must be true or false")
	}

	var req dto.LikeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var result service.LikeResult
	if isLike {
		result, err = ac.Likes.AddLike(c.UserContext(), viewer, req.AnswerID)
	} else {
		result, err = ac.Likes.RemoveLike(c.UserContext(), viewer, req.AnswerID)
	}
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonUpdated(c, "ok", fiber.Map{
		"answerId": req.AnswerID,
		"result":   result,
	})
}

// POST /answer
func (ac *AnswerController) CreateAnswer(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	a, err := ac.Answers.CreateAnswer(c.UserContext(), viewer, req)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonCreated(c, "Answer created", a)
}

// PUT /answer
func (ac *AnswerController) UpdateAnswer(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	a, err := ac.Answers.UpdateAnswer(c.UserContext(), viewer, req)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonUpdated(c, "Answer updated", a)
}

// DELETE /answer/:id
func (ac *AnswerController) DeleteAnswer(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid answer id")
	}
	if err := ac.Answers.DeleteAnswer(c.UserContext(), viewer, id); err != nil {
		return writeError(c, err)
	}
	return helper.JsonDeleted(c, "Answer deleted", fiber.Map{"id": id})
}
