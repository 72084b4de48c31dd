package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/features/journal/questions/model"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrQuestionInUse    = errors.New("question is referenced by answers")
)

/* ====================== READ ====================== */

// FindActivated returns activated questions of date, optionally narrowed to mood.
func FindActivated(ctx context.Context, db *gorm.DB, date string, mood constants.Mood) ([]model.QuestionModel, error) {
	q := db.WithContext(ctx).Where("activated = ? AND activated_date = ?", true, date)
	if mood != "" {
		q = q.Where("mood = ?", mood)
	}
	var out []model.QuestionModel
	err := q.Order("id ASC").Find(&out).Error
	return out, err
}

func FindAll(ctx context.Context, db *gorm.DB, mood constants.Mood) ([]model.QuestionModel, error) {
	q := db.WithContext(ctx)
	if mood != "" {
		q = q.Where("mood = ?", mood)
	}
	var out []model.QuestionModel
	err := q.Order("id DESC").Find(&out).Error
	return out, err
}

func FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.QuestionModel, error) {
	var q model.QuestionModel
	if err := db.WithContext(ctx).Take(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &q, nil
}

/* ====================== WRITE ====================== */

func CreateBatch(ctx context.Context, db *gorm.DB, questions []model.QuestionModel) error {
	return db.WithContext(ctx).Create(&questions).Error
}

func Update(ctx context.Context, db *gorm.DB, id uint, updates map[string]interface{}) error {
	res := db.WithContext(ctx).Model(&model.QuestionModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

// Delete refuses questions that answers still point at.
func Delete(ctx context.Context, db *gorm.DB, id uint) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Table("answers").Where("question_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return ErrQuestionInUse
		}
		res := tx.Delete(&model.QuestionModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrQuestionNotFound
		}
		return nil
	})
}

/* ====================== ROTATION (tx scoped) ====================== */

// FindStaleActiveIDs lists active questions of mood dated before today. This
// covers yesterday's question and any left over from missed runs.
func FindStaleActiveIDs(tx *gorm.DB, mood constants.Mood, today string) ([]uint, error) {
	var ids []uint
	err := tx.Model(&model.QuestionModel{}).
		Where("mood = ? AND activated = ?", mood, true).
		Where("activated_date IS NULL OR activated_date < ?", today).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

func HasActiveOn(tx *gorm.DB, mood constants.Mood, date string) (bool, error) {
	var n int64
	err := tx.Model(&model.QuestionModel{}).
		Where("mood = ? AND activated = ? AND activated_date = ?", mood, true, date).
		Limit(1).Count(&n).Error
	return n > 0, err
}

// PickActivationTarget prefers an inactive question scheduled for today and
// otherwise the newest inactive question not scheduled for a later day.
// ok is false when nothing is eligible.
func PickActivationTarget(tx *gorm.DB, mood constants.Mood, today string) (id uint, ok bool, err error) {
	var ids []uint
	if err = tx.Model(&model.QuestionModel{}).
		Where("mood = ? AND activated = ? AND activated_date = ?", mood, false, today).
		Order("id DESC").Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return 0, false, err
	}
	if len(ids) > 0 {
		return ids[0], true, nil
	}

	var fallback []uint
	if err = tx.Model(&model.QuestionModel{}).
		Where("mood = ? AND activated = ?", mood, false).
		Where("activated_date IS NULL OR activated_date <= ?", today).
		Order("id DESC").Limit(1).
		Pluck("id", &fallback).Error; err != nil {
		return 0, false, err
	}
	if len(fallback) > 0 {
		return fallback[0], true, nil
	}
	return 0, false, nil
}

func Deactivate(tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.Model(&model.QuestionModel{}).
		Where("id IN ?", ids).
		Update("activated", false).Error
}

func Activate(tx *gorm.DB, id uint, date string) error {
	return tx.Model(&model.QuestionModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"activated":      true,
			"activated_date": date,
		}).Error
}

func CreateRotationLog(ctx context.Context, db *gorm.DB, log *model.QuestionRotationLogModel) error {
	return db.WithContext(ctx).Create(log).Error
}

func LatestRotationLogs(ctx context.Context, db *gorm.DB, limit int) ([]model.QuestionRotationLogModel, error) {
	var out []model.QuestionRotationLogModel
	err := db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&out).Error
	return out, err
}
