// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"moodlight_backend/internals/constants"
	authRepo "moodlight_backend/internals/features/users/auth/repository"
	authService "moodlight_backend/internals/features/users/auth/service"
)

// AuthMiddleware verifies the access token and stores user_id, email,
// is_admin, access_token and token_exp into Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Authorization header
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, constants.MsgUnauthorized)
		}

		// 2) Blacklist, once per request
		if c.Locals("token_checked") == nil {
			revoked, err := authRepo.IsTokenBlacklisted(c.UserContext(), db, tokenString)
			if err != nil {
				zap.L().Error("auth: blacklist lookup failed", zap.Error(err))
				return fiber.NewError(fiber.StatusInternalServerError, constants.MsgGenericError)
			}
			if revoked {
				return fiber.NewError(fiber.StatusUnauthorized, constants.MsgUnauthorized)
			}
			c.Locals("token_checked", true)
		}

		// 3) Signature + exp
		claims, err := authService.ParseAccessToken(tokenString)
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return fe
			}
			zap.L().Debug("auth: token rejected", zap.Error(err))
			return fiber.NewError(fiber.StatusUnauthorized, constants.MsgUnauthorized)
		}

		// 4) User must still exist and be active
		if err := ensureUserActive(c, db, claims); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, constants.MsgUserNotExist)
			}
			if errors.Is(err, errUserInactive) {
				return fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
			}
			zap.L().Error("auth: user lookup failed", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, constants.MsgGenericError)
		}

		storeClaimsToLocals(c, tokenString, claims)
		return c.Next()
	}
}
