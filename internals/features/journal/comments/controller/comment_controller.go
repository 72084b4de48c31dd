package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"moodlight_backend/internals/constants"
	answerRepo "moodlight_backend/internals/features/journal/answers/repository"
	"moodlight_backend/internals/features/journal/comments/dto"
	"moodlight_backend/internals/features/journal/comments/repository"
	"moodlight_backend/internals/features/journal/comments/service"
	helper "moodlight_backend/internals/helpers"
)

type CommentController struct {
	Service *service.CommentService
}

func NewCommentController(svc *service.CommentService) *CommentController {
	return &CommentController{Service: svc}
}

func parseUintParam(c *fiber.Ctx, name string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, answerRepo.ErrAnswerNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, constants.MsgAnswerNotFound)
	case errors.Is(err, service.ErrAnswerPrivate):
		return helper.JsonError(c, fiber.StatusForbidden, constants.MsgAnswerPrivate)
	case errors.Is(err, service.ErrCommentNotAllowed):
		return helper.JsonError(c, fiber.StatusForbidden, constants.MsgCommentNotAllowed)
	case errors.Is(err, repository.ErrCommentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, constants.MsgCommentNotFound)
	default:
		zap.L().Error("comment request failed", zap.String("path", c.Path()), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgGenericError)
	}
}

// GET /comment/:answerId?start=&take=
func (cc *CommentController) FindComments(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	answerID, ok := parseUintParam(c, "answerId")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid answer id")
	}
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := cc.Service.FindComments(c.UserContext(), viewer, answerID, p.Skip, p.Take)
	if err != nil {
		return writeError(c, err)
	}
	pg := helper.BuildPagination(total, p.Skip, p.Take)
	return helper.JsonList(c, "ok", rows, &pg)
}

// GET /comment/count/:answerId
func (cc *CommentController) CountComments(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	answerID, ok := parseUintParam(c, "answerId")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid answer id")
	}

	n, err := cc.Service.CountComments(c.UserContext(), viewer, answerID)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.CountOfCommentResponse{AnswerID: answerID, Count: n})
}

// POST /comment
func (cc *CommentController) CreateComment(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := cc.Service.CreateComment(c.UserContext(), viewer, req)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonCreated(c, "Comment created", dto.FromModel(*m))
}

// PUT /comment
func (cc *CommentController) UpdateComment(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := cc.Service.UpdateComment(c.UserContext(), viewer, req)
	if err != nil {
		return writeError(c, err)
	}
	return helper.JsonUpdated(c, "Comment updated", dto.FromModel(*m))
}

// DELETE /comment/:id
func (cc *CommentController) DeleteComment(c *fiber.Ctx) error {
	viewer, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid comment id")
	}
	if err := cc.Service.DeleteComment(c.UserContext(), viewer, id); err != nil {
		return writeError(c, err)
	}
	return helper.JsonDeleted(c, "Comment deleted", fiber.Map{"id": id})
}
