package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"moodlight_backend/internals/configs"
	"moodlight_backend/internals/constants"
	authHelper "moodlight_backend/internals/features/users/auth/helper"
	authRepo "moodlight_backend/internals/features/users/auth/repository"
	userModel "moodlight_backend/internals/features/users/user/model"
	helpers "moodlight_backend/internals/helpers"
)

type JoinRequest struct {
	Email    string `json:"email" validate:"required,email,min=3,max=320"`
	Password string `json:"password" validate:"required,min=6,max=24"`
	Nickname string `json:"nickname" validate:"required,min=3,max=13"`
	AdminKey string `json:"adminKey,omitempty"`
}

type LoginRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	FirebaseToken string `json:"firebaseToken" validate:"omitempty,max=200"`
}

/* ==========================
   JOIN
========================== */

func Join(db *gorm.DB, c *fiber.Ctx) error {
	var input JoinRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Email = authHelper.NormalizeEmail(input.Email)
	input.Nickname = strings.TrimSpace(input.Nickname)
	if err := helpers.ValidateStruct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	ctx := c.UserContext()
	if taken, err := authRepo.IsEmailTaken(ctx, db, input.Email); err != nil {
		zap.L().Error("join: email lookup failed", zap.Error(err))
		return helpers.JsonError(c, fiber.StatusInternalServerError, constants.MsgGenericError)
	} else if taken {
		return helpers.JsonError(c, fiber.StatusConflict, constants.MsgEmailAlreadyExists)
	}
	if taken, err := authRepo.IsNicknameTaken(ctx, db, input.Nickname); err != nil {
		zap.L().Error("join: nickname lookup failed", zap.Error(err))
		return helpers.JsonError(c, fiber.StatusInternalServerError, constants.MsgGenericError)
	} else if taken {
		return helpers.JsonError(c, fiber.StatusConflict, constants.MsgNicknameAlreadyExists)
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		Email:          input.Email,
		Nickname:       input.Nickname,
		Password:       passwordHash,
		IsAdmin:        configs.AdminKey != "" && input.AdminKey == configs.AdminKey,
		UsePushMessage: true,
		IsActive:       true,
	}
	if err := authRepo.CreateUser(ctx, db, &user); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusConflict, constants.MsgEmailAlreadyExists)
		}
		zap.L().Error("join: create user failed", zap.Error(err))
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	zap.L().Info("user joined", zap.String("user_id", user.ID.String()), zap.Bool("is_admin", user.IsAdmin))
	return helpers.JsonCreated(c, "Registration successful", user.Public())
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = authHelper.NormalizeEmail(input.Email)
	if err := helpers.ValidateStruct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	ctx := c.UserContext()
	user, err := authRepo.FindUserByEmail(ctx, db, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, constants.MsgGenericError)
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
	}

	if input.FirebaseToken != "" {
		if err := authRepo.UpdateFirebaseToken(ctx, db, user.ID, input.FirebaseToken); err != nil {
			zap.L().Warn("login: save firebase token failed", zap.Error(err), zap.String("user_id", user.ID.String()))
		}
	}

	accessToken, err := IssueAccessToken(*user)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"accessToken": accessToken,
	})
}

/* ==========================
   ME / LOGOUT
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}
	user, err := authRepo.FindUserByID(c.UserContext(), db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, constants.MsgUserNotExist)
	}
	return helpers.JsonOK(c, "ok", user)
}

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	token, _ := c.Locals("access_token").(string)
	if token == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, constants.MsgUnauthorized)
	}
	expiredAt, ok := c.Locals("token_exp").(time.Time)
	if !ok || expiredAt.IsZero() {
		expiredAt = nowUTC().Add(accessTTL())
	}

	if err := authRepo.BlacklistToken(c.UserContext(), db, token, expiredAt); err != nil {
		zap.L().Error("logout: blacklist token failed", zap.Error(err))
		return helpers.JsonError(c, fiber.StatusInternalServerError, constants.MsgGenericError)
	}
	return helpers.JsonOK(c, "Logout successful", nil)
}
