package service

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moodlight_backend/internals/constants"
	authHelper "moodlight_backend/internals/features/users/auth/helper"
	authRepo "moodlight_backend/internals/features/users/auth/repository"
	helpers "moodlight_backend/internals/helpers"
)

type ChangePasswordRequest struct {
	Password    string `json:"password" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=24"`
}

// ========================== CHANGE PASSWORD ==========================
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input ChangePasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := helpers.ValidateStruct(&input); err != nil {
		return helpers.ValidationError(c, err)
	}

	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.FromFiberError(c, err)
	}

	ctx := c.UserContext()
	user, err := authRepo.FindUserByID(ctx, db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, constants.MsgUserNotExist)
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}
	if err := authRepo.UpdateUserPassword(ctx, db, userID, newHash); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}
	return helpers.JsonUpdated(c, "Password changed successfully", nil)
}
