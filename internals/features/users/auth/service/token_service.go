// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"moodlight_backend/internals/configs"
	userModel "moodlight_backend/internals/features/users/user/model"
)

const accessTTLDefault = 24 * time.Hour

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

func accessTTL() time.Duration {
	if configs.JWTAccessTTL > 0 {
		return configs.JWTAccessTTL
	}
	return accessTTLDefault
}

func buildAccessClaims(u userModel.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":      "access",
		"id":       u.ID.String(),
		"email":    u.Email,
		"is_admin": u.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTTL()).Unix(),
	}
}

// IssueAccessToken signs an HS256 access token for u.
func IssueAccessToken(u userModel.UserModel) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(u, nowUTC())).
		SignedString([]byte(secret))
}

// AccessClaims is the parsed form the middleware stores into Locals.
type AccessClaims struct {
	UserID    uuid.UUID
	Email     string
	IsAdmin   bool
	ExpiresAt time.Time
}

// ParseAccessToken verifies signature and expiry.
func ParseAccessToken(token string) (*AccessClaims, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	}); err != nil {
		return nil, err
	}

	idStr, _ := claims["id"].(string)
	userID, err := uuid.Parse(strings.TrimSpace(idStr))
	if err != nil {
		return nil, errors.New("invalid or missing user id")
	}

	out := &AccessClaims{UserID: userID}
	out.Email, _ = claims["email"].(string)
	out.IsAdmin, _ = claims["is_admin"].(bool)
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return out, nil
}
