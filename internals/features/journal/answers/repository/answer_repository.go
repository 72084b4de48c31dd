// file: internals/features/journal/answers/repository/answer_repository.go
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/features/journal/answers/model"
)

var ErrAnswerNotFound = errors.New("answer not found")

func withAuthor(db *gorm.DB) *gorm.DB {
	return db.Select("id", "nickname")
}

/* ====================== READ ====================== */

func FindByID(ctx context.Context, db *gorm.DB, id uint) (*model.AnswerModel, error) {
	var a model.AnswerModel
	if err := db.WithContext(ctx).Take(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnswerNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByUser lists the user's answers newest first with their questions.
// take <= 0 returns everything.
func FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID, skip, take int) ([]model.AnswerModel, int64, error) {
	base := db.WithContext(ctx).Model(&model.AnswerModel{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := base.Session(&gorm.Session{}).
		Preload("Question").
		Preload("User", withAuthor).
		Order("id DESC")
	if take > 0 {
		q = q.Offset(skip).Limit(take)
	}

	var out []model.AnswerModel
	err := q.Find(&out).Error
	return out, total, err
}

// FindPublicByQuestion lists public answers of a question newest first.
func FindPublicByQuestion(ctx context.Context, db *gorm.DB, questionID uint, skip, take int) ([]model.AnswerModel, int64, error) {
	base := db.WithContext(ctx).Model(&model.AnswerModel{}).
		Where("question_id = ? AND private = ?", questionID, false)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []model.AnswerModel
	err := base.Session(&gorm.Session{}).
		Preload("User", withAuthor).
		Order("id DESC").
		Offset(skip).Limit(take).
		Find(&out).Error
	return out, total, err
}

func ExistsForDate(ctx context.Context, db *gorm.DB, userID uuid.UUID, activatedDate string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.AnswerModel{}).
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.user_id = ? AND questions.activated_date = ?", userID, activatedDate).
		Limit(1).Count(&n).Error
	return n > 0, err
}

type MoodCount struct {
	Mood  constants.Mood
	Count int64
}

// CountByMood counts answers of questions activated on date, grouped by mood.
// Moods without answers are absent.
func CountByMood(ctx context.Context, db *gorm.DB, date string) ([]MoodCount, error) {
	var rows []MoodCount
	err := db.WithContext(ctx).Model(&model.AnswerModel{}).
		Select("questions.mood AS mood, COUNT(answers.id) AS count").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("questions.activated_date = ?", date).
		Group("questions.mood").
		Scan(&rows).Error
	return rows, err
}

// IsLiked is a single existence lookup, called once per listed answer.
func IsLiked(ctx context.Context, db *gorm.DB, userID uuid.UUID, answerID uint) (bool, error) {
	var ids []uint
	err := db.WithContext(ctx).Model(&model.AnswerLikeModel{}).
		Where("user_id = ? AND answer_id = ?", userID, answerID).
		Limit(1).
		Pluck("id", &ids).Error
	return len(ids) > 0, err
}

// CountComments returns answer id -> number of comments for the given answers.
func CountComments(ctx context.Context, db *gorm.DB, answerIDs []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(answerIDs))
	if len(answerIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		AnswerID uint
		Count    int64
	}
	if err := db.WithContext(ctx).
		Table("comments").
		Select("answer_id, COUNT(*) AS count").
		Where("answer_id IN ?", answerIDs).
		Group("answer_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.AnswerID] = r.Count
	}
	return out, nil
}

func CountLikeRows(ctx context.Context, db *gorm.DB, answerID uint) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.AnswerLikeModel{}).Where("answer_id = ?", answerID).Count(&n).Error
	return n, err
}

/* ====================== WRITE ====================== */

func Create(ctx context.Context, db *gorm.DB, a *model.AnswerModel) error {
	return db.WithContext(ctx).Create(a).Error
}

// UpdateOwned updates only when the answer belongs to userID.
func UpdateOwned(ctx context.Context, db *gorm.DB, id uint, userID uuid.UUID, updates map[string]interface{}) error {
	res := db.WithContext(ctx).Model(&model.AnswerModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAnswerNotFound
	}
	return nil
}

// DeleteOwned removes the answer together with its likes and comments.
func DeleteOwned(ctx context.Context, db *gorm.DB, id uint, userID uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.AnswerModel{}).Where("id = ? AND user_id = ?", id, userID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return ErrAnswerNotFound
		}
		if err := tx.Where("answer_id = ?", id).Delete(&model.AnswerLikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM comments WHERE answer_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.AnswerModel{}, id).Error
	})
}
