// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "moodlight_backend/internals/features/users/auth/service"
)

var errUserInactive = errors.New("user inactive")

/* ======== Extractors ======== */

// extractBearerToken accepts "Bearer <token>" and the bare token.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		return "", errors.New("no token provided")
	}

	fields := strings.Fields(auth)
	tok := fields[0]
	if len(fields) >= 2 && strings.EqualFold(fields[0], "Bearer") {
		tok = fields[1]
	} else if len(fields) != 1 {
		return "", errors.New("invalid token format")
	}

	tok = strings.Trim(strings.TrimSpace(tok), "\"'")
	if tok == "" {
		return "", errors.New("empty token")
	}
	return tok, nil
}

func ensureUserActive(c *fiber.Ctx, db *gorm.DB, claims *authService.AccessClaims) error {
	var user struct {
		IsActive bool
		IsAdmin  bool
	}
	if err := db.WithContext(c.UserContext()).
		Table("users").
		Select("is_active", "is_admin").
		Where("id = ?", claims.UserID).
		Take(&user).Error; err != nil {
		return err
	}
	if !user.IsActive {
		return errUserInactive
	}
	// the stored flag wins over a stale claim
	claims.IsAdmin = user.IsAdmin
	return nil
}

/* ======== Store claims to Locals ======== */

func storeClaimsToLocals(c *fiber.Ctx, token string, claims *authService.AccessClaims) {
	c.Locals("user_id", claims.UserID.String())
	c.Locals("is_admin", claims.IsAdmin)
	c.Locals("access_token", token)
	if claims.Email != "" {
		c.Locals("email", claims.Email)
	}
	if !claims.ExpiresAt.IsZero() {
		c.Locals("token_exp", claims.ExpiresAt)
	}
}
