package model

import (
	"time"

	"github.com/google/uuid"

	answerModel "moodlight_backend/internals/features/journal/answers/model"
	userModel "moodlight_backend/internals/features/users/user/model"
)

type CommentModel struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Contents    string    `gorm:"size:150;not null" json:"contents"`
	AnswerID    uint      `gorm:"not null;index" json:"answerId"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	CreatedDate time.Time `gorm:"column:created_date;autoCreateTime" json:"createdDate"`
	UpdatedDate time.Time `gorm:"column:updated_date;autoUpdateTime" json:"-"`

	Answer *answerModel.AnswerModel `gorm:"foreignKey:AnswerID;constraint:OnDelete:CASCADE" json:"-"`
	User   *userModel.UserModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CommentModel) TableName() string {
	return "comments"
}
