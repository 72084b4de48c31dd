package dbtest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"moodlight_backend/internals/constants"
	answerModel "moodlight_backend/internals/features/journal/answers/model"
	questionModel "moodlight_backend/internals/features/journal/questions/model"
	userModel "moodlight_backend/internals/features/users/user/model"
)

// SeedUser inserts an active user; the password column holds a placeholder.
func SeedUser(t *testing.T, db *gorm.DB, nickname string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		Email:          nickname + "@example.com",
		Nickname:       nickname,
		Password:       "x",
		UsePushMessage: true,
		IsActive:       true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

// SeedQuestion inserts a question; an empty date leaves activated_date NULL.
func SeedQuestion(t *testing.T, db *gorm.DB, mood constants.Mood, activated bool, date string) questionModel.QuestionModel {
	t.Helper()
	q := questionModel.QuestionModel{
		Mood:      mood,
		Contents:  "how was " + string(mood) + "?",
		Activated: activated,
	}
	if date != "" {
		d := date
		q.ActivatedDate = &d
	}
	require.NoError(t, db.Create(&q).Error)
	return q
}

func SeedAnswer(t *testing.T, db *gorm.DB, userID uuid.UUID, questionID uint, private bool) answerModel.AnswerModel {
	t.Helper()
	a := answerModel.AnswerModel{
		Contents:     "answer",
		MoodLevel:    3,
		Private:      private,
		AllowComment: true,
		UserID:       userID,
		QuestionID:   questionID,
	}
	require.NoError(t, db.Create(&a).Error)
	return a
}

// Reload fetches a fresh copy of an answer.
func Reload(t *testing.T, db *gorm.DB, answerID uint) answerModel.AnswerModel {
	t.Helper()
	var a answerModel.AnswerModel
	require.NoError(t, db.Take(&a, answerID).Error)
	return a
}

func CountLikeRows(t *testing.T, db *gorm.DB, answerID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&answerModel.AnswerLikeModel{}).Where("answer_id = ?", answerID).Count(&n).Error)
	return n
}
