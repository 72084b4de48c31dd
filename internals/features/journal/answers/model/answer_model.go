package model

import (
	"time"

	"github.com/google/uuid"

	questionModel "moodlight_backend/internals/features/journal/questions/model"
	userModel "moodlight_backend/internals/features/users/user/model"
)

// AnswerModel maps the answers table. Likes mirrors the number of
// answer_likes rows pointing at the answer.
type AnswerModel struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Contents     string    `gorm:"type:text;not null" json:"contents"`
	MoodLevel    int       `gorm:"not null" json:"moodLevel"`
	Private      bool      `gorm:"not null;index" json:"private"`
	AllowComment bool      `gorm:"not null" json:"allowComment"`
	Likes        int       `gorm:"not null;default:0" json:"likes"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	QuestionID   uint      `gorm:"not null;index" json:"questionId"`
	CreatedDate  time.Time `gorm:"column:created_date;autoCreateTime" json:"createdDate"`
	UpdatedDate  time.Time `gorm:"column:updated_date;autoUpdateTime" json:"-"`

	Question *questionModel.QuestionModel `gorm:"foreignKey:QuestionID;constraint:OnDelete:RESTRICT" json:"question,omitempty"`
	User     *userModel.UserModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (AnswerModel) TableName() string {
	return "answers"
}
