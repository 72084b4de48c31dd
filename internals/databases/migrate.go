package database

import (
	"gorm.io/gorm"

	answerModel "moodlight_backend/internals/features/journal/answers/model"
	commentModel "moodlight_backend/internals/features/journal/comments/model"
	questionModel "moodlight_backend/internals/features/journal/questions/model"
	notificationModel "moodlight_backend/internals/features/notifications/model"
	authModel "moodlight_backend/internals/features/users/auth/model"
	userModel "moodlight_backend/internals/features/users/user/model"
)

// Models lists every table owned by the service, parents first.
func Models() []interface{} {
	return []interface{}{
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&questionModel.QuestionModel{},
		&questionModel.QuestionRotationLogModel{},
		&answerModel.AnswerModel{},
		&answerModel.AnswerLikeModel{},
		&commentModel.CommentModel{},
		&notificationModel.NotificationModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
