package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/features/users/user/dto"
	"moodlight_backend/internals/features/users/user/repository"
	helper "moodlight_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/user/exist?email=&nickname=
func (uc *UserController) Exist(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.Query("email")))
	nickname := strings.TrimSpace(c.Query("nickname"))
	if email == "" && nickname == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "email or nickname is required")
	}

	exist, err := repository.Exists(c.UserContext(), uc.DB, email, nickname)
	if err != nil {
		zap.L().Error("user exist lookup failed", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgGenericError)
	}
	return helper.JsonOK(c, "ok", dto.ExistResponse{Exist: exist})
}

// GET /api/user/:userId
func (uc *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	u, err := repository.FindByID(c.UserContext(), uc.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, constants.MsgUserNotExist)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgGenericError)
	}
	return helper.JsonOK(c, "ok", u.Public())
}

// PUT /api/user
func (uc *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := helper.ValidateStruct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	ctx := c.UserContext()
	if req.Nickname != nil {
		taken, err := repository.NicknameTakenByOther(ctx, uc.DB, *req.Nickname, userID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, constants.MsgGenericError)
		}
		if taken {
			return helper.JsonError(c, fiber.StatusConflict, constants.MsgNicknameAlreadyExists)
		}
	}

	if err := repository.Update(ctx, uc.DB, userID, updates); err != nil {
		zap.L().Error("user update failed", zap.Error(err), zap.String("user_id", userID.String()))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update user")
	}

	u, err := repository.FindByID(ctx, uc.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, constants.MsgUserNotExist)
	}
	return helper.JsonUpdated(c, "User updated", u)
}

// DELETE /api/user
func (uc *UserController) DeleteMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := repository.DeleteCascade(c.UserContext(), uc.DB, userID); err != nil {
		zap.L().Error("user delete failed", zap.Error(err), zap.String("user_id", userID.String()))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	zap.L().Info("user deleted", zap.String("user_id", userID.String()))
	return helper.JsonDeleted(c, "User deleted", nil)
}
