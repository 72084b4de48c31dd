package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/features/notifications/dto"
	"moodlight_backend/internals/features/notifications/repository"
	helper "moodlight_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /notification?unread=true&start=&take=
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)
	unread := c.QueryBool("unread", false)

	rows, total, err := repository.ListByUser(c.UserContext(), ctrl.DB, userID, unread, p.Skip, p.Take)
	if err != nil {
		zap.L().Error("list notifications failed", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgGenericError)
	}
	pg := helper.BuildPagination(total, p.Skip, p.Take)
	return helper.JsonList(c, "ok", dto.ToNotificationResponseList(rows), &pg)
}

// 🟢 PUT /notification/:id/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	if err := repository.MarkRead(c.UserContext(), ctrl.DB, uint(id), userID, time.Now().UTC()); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification does not exist.")
		}
		zap.L().Error("mark notification read failed", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgGenericError)
	}
	return helper.JsonUpdated(c, "Notification marked as read", fiber.Map{"id": id})
}
