package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"moodlight_backend/internals/features/journal/answers/model"
)

// The functions below run inside the caller's transaction.

type AnswerOwner struct {
	ID      uint
	UserID  uuid.UUID
	Private bool
}

func LockAnswer(tx *gorm.DB, answerID uint) (*AnswerOwner, error) {
	var a AnswerOwner
	q := tx.Model(&model.AnswerModel{}).Select("id", "user_id", "private").Where("id = ?", answerID)
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := q.Take(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnswerNotFound
		}
		return nil, err
	}
	return &a, nil
}

// InsertLike reports whether a new row was written; an existing like is left as is.
func InsertLike(tx *gorm.DB, userID uuid.UUID, answerID uint) (bool, error) {
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.AnswerLikeModel{UserID: userID, AnswerID: answerID})
	return res.RowsAffected > 0, res.Error
}

func DeleteLike(tx *gorm.DB, userID uuid.UUID, answerID uint) (bool, error) {
	res := tx.Where("user_id = ? AND answer_id = ?", userID, answerID).
		Delete(&model.AnswerLikeModel{})
	return res.RowsAffected > 0, res.Error
}

// AddToLikes moves the counter in SQL so concurrent writers never lose an update.
func AddToLikes(tx *gorm.DB, answerID uint, delta int) error {
	return tx.Model(&model.AnswerModel{}).
		Where("id = ?", answerID).
		UpdateColumn("likes", gorm.Expr("likes + ?", delta)).Error
}
