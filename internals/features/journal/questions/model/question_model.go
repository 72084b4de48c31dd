package model

import (
	"time"

	"gorm.io/datatypes"

	"moodlight_backend/internals/constants"
)

// QuestionModel maps the questions table. ActivatedDate is YYYY-MM-DD in the
// service timezone; nil means the question was never scheduled.
type QuestionModel struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Mood          constants.Mood `gorm:"type:varchar(10);not null;index:idx_questions_mood_activated,priority:1" json:"mood"`
	Contents      string         `gorm:"size:150;not null" json:"contents"`
	Activated     bool           `gorm:"not null;default:false;index:idx_questions_mood_activated,priority:2" json:"activated"`
	ActivatedDate *string        `gorm:"type:varchar(10);index" json:"activatedDate"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

// QuestionRotationLogModel records one rotation run.
type QuestionRotationLogModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	RunDate   string         `gorm:"type:varchar(10);not null;index" json:"runDate"`
	Source    string         `gorm:"type:varchar(16);not null" json:"source"`
	Details   datatypes.JSON `json:"details"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (QuestionRotationLogModel) TableName() string {
	return "question_rotation_logs"
}
