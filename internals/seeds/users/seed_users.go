package users

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authHelper "moodlight_backend/internals/features/users/auth/helper"
	"moodlight_backend/internals/features/users/user/model"
)

type UserSeed struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

// SeedUsersFromJSON creates users whose email is not taken yet.
func SeedUsersFromJSON(db *gorm.DB, filePath string) (int, error) {
	zap.L().Info("📥 reading user seeds", zap.String("file", filePath))

	file, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", filePath, err)
	}

	var inputs []UserSeed
	if err := sonic.Unmarshal(file, &inputs); err != nil {
		return 0, fmt.Errorf("decode %s: %w", filePath, err)
	}

	created := 0
	for _, data := range inputs {
		email := authHelper.NormalizeEmail(data.Email)

		var existing model.UserModel
		err := db.Where("email = ?", email).Take(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		hashed, err := authHelper.HashPassword(data.Password)
		if err != nil {
			return created, fmt.Errorf("hash password for %s: %w", email, err)
		}

		u := model.UserModel{
			Email:          email,
			Nickname:       strings.TrimSpace(data.Nickname),
			Password:       hashed,
			IsAdmin:        data.IsAdmin,
			UsePushMessage: true,
			IsActive:       true,
		}
		if err := db.Create(&u).Error; err != nil {
			return created, fmt.Errorf("insert user %s: %w", email, err)
		}
		created++
	}
	zap.L().Info("✅ users seeded", zap.Int("count", created))
	return created, nil
}
