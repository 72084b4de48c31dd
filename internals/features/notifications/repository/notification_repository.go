package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moodlight_backend/internals/features/notifications/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// PushTarget is the subset of users the notifier needs.
type PushTarget struct {
	ID             uuid.UUID
	Nickname       string
	UsePushMessage bool
	FirebaseToken  *string
}

func FindPushTarget(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*PushTarget, error) {
	var t PushTarget
	err := db.WithContext(ctx).Table("users").
		Select("id", "nickname", "use_push_message", "firebase_token").
		Where("id = ? AND is_active = ?", userID, true).
		Take(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func FindNickname(ctx context.Context, db *gorm.DB, userID uuid.UUID) string {
	var nickname string
	db.WithContext(ctx).Table("users").Select("nickname").Where("id = ?", userID).Scan(&nickname)
	return nickname
}

func Create(ctx context.Context, db *gorm.DB, n *model.NotificationModel) error {
	return db.WithContext(ctx).Create(n).Error
}

func MarkPushed(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Model(&model.NotificationModel{}).Where("id = ?", id).Update("pushed", true).Error
}

func ListByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, unreadOnly bool, skip, take int) ([]model.NotificationModel, int64, error) {
	base := db.WithContext(ctx).Model(&model.NotificationModel{}).Where("user_id = ?", userID)
	if unreadOnly {
		base = base.Where("is_read = ?", false)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []model.NotificationModel
	err := base.Session(&gorm.Session{}).Order("id DESC").Offset(skip).Limit(take).Find(&out).Error
	return out, total, err
}

func MarkRead(ctx context.Context, db *gorm.DB, id uint, userID uuid.UUID, at time.Time) error {
	res := db.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
