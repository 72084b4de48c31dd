package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeAnswerLiked     = "answer_liked"
	TypeAnswerCommented = "answer_commented"
)

// NotificationModel is one inbox entry for UserID caused by ActorID.
type NotificationModel struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_read,priority:1" json:"userId"`
	ActorID   uuid.UUID  `gorm:"type:uuid;not null" json:"actorId"`
	Type      string     `gorm:"type:varchar(32);not null" json:"type"`
	AnswerID  uint       `gorm:"not null;index" json:"answerId"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	Read      bool       `gorm:"column:is_read;not null;default:false;index:idx_notifications_user_read,priority:2" json:"read"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	Pushed    bool       `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
