// internals/features/users/auth/repository/auth_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "moodlight_backend/internals/features/users/auth/model"
	userModel "moodlight_backend/internals/features/users/user/model"
)

/* ====================== USER ====================== */

func FindUserByEmail(ctx context.Context, db *gorm.DB, email string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(ctx context.Context, db *gorm.DB, user *userModel.UserModel) error {
	return db.WithContext(ctx).Create(user).Error
}

func UpdateUserPassword(ctx context.Context, db *gorm.DB, userID uuid.UUID, newPassword string) error {
	return db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", newPassword).Error
}

func UpdateFirebaseToken(ctx context.Context, db *gorm.DB, userID uuid.UUID, token string) error {
	return db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("id = ?", userID).
		Update("firebase_token", token).Error
}

func IsEmailTaken(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	return exists(ctx, db, "email = ?", email)
}

func IsNicknameTaken(ctx context.Context, db *gorm.DB, nickname string) (bool, error) {
	if nickname == "" {
		return false, errors.New("nickname cannot be empty")
	}
	return exists(ctx, db, "nickname = ?", nickname)
}

func exists(ctx context.Context, db *gorm.DB, where string, args ...interface{}) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&userModel.UserModel{}).Where(where, args...).Limit(1).Count(&n).Error
	return n > 0, err
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(ctx context.Context, db *gorm.DB, token string, expiredAt time.Time) error {
	return db.WithContext(ctx).Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: expiredAt.UTC(),
	}).Error
}

func IsTokenBlacklisted(ctx context.Context, db *gorm.DB, token string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&authModel.TokenBlacklist{}).
		Where("token = ?", token).
		Count(&n).Error
	return n > 0, err
}

// CleanupExpiredBlacklist removes tokens that expired before cutoff.
func CleanupExpiredBlacklist(ctx context.Context, db *gorm.DB, cutoff time.Time) (int64, error) {
	res := db.WithContext(ctx).
		Where("expired_at < ?", cutoff.UTC()).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
