package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moodlight_backend/internals/features/journal/comments/model"
)

var ErrCommentNotFound = errors.New("comment not found")

func FindByAnswer(ctx context.Context, db *gorm.DB, answerID uint, skip, take int) ([]model.CommentModel, int64, error) {
	base := db.WithContext(ctx).Model(&model.CommentModel{}).Where("answer_id = ?", answerID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []model.CommentModel
	err := base.Session(&gorm.Session{}).
		Preload("User", func(db *gorm.DB) *gorm.DB { return db.Select("id", "nickname") }).
		Order("id DESC").
		Offset(skip).Limit(take).
		Find(&out).Error
	return out, total, err
}

func CountByAnswer(ctx context.Context, db *gorm.DB, answerID uint) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.CommentModel{}).Where("answer_id = ?", answerID).Count(&n).Error
	return n, err
}

func Create(ctx context.Context, db *gorm.DB, m *model.CommentModel) error {
	return db.WithContext(ctx).Create(m).Error
}

func UpdateOwned(ctx context.Context, db *gorm.DB, id uint, userID uuid.UUID, contents string) error {
	res := db.WithContext(ctx).Model(&model.CommentModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("contents", contents)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func DeleteOwned(ctx context.Context, db *gorm.DB, id uint, userID uuid.UUID) error {
	res := db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.CommentModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.CommentModel, error) {
	var m model.CommentModel
	if err := db.WithContext(ctx).Take(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &m, nil
}
