package model

import (
	"time"

	"github.com/google/uuid"

	userModel "moodlight_backend/internals/features/users/user/model"
)

// AnswerLikeModel is one user's like of one answer. The unique index makes a
// concurrent double like collapse into a single row.
type AnswerLikeModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_answer_likes_user_answer,priority:1" json:"userId"`
	AnswerID  uint      `gorm:"not null;uniqueIndex:uq_answer_likes_user_answer,priority:2;index" json:"answerId"`
	CreatedAt time.Time `json:"createdAt"`

	Answer *AnswerModel         `gorm:"foreignKey:AnswerID;constraint:OnDelete:CASCADE" json:"-"`
	User   *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AnswerLikeModel) TableName() string {
	return "answer_likes"
}
