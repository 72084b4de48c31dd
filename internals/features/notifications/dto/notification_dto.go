package dto

import (
	"time"

	"github.com/google/uuid"

	"moodlight_backend/internals/features/notifications/model"
)

type NotificationResponse struct {
	ID        uint       `json:"id"`
	Type      string     `json:"type"`
	ActorID   uuid.UUID  `json:"actorId"`
	AnswerID  uint       `json:"answerId"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func ToNotificationResponse(m model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		ID:        m.ID,
		Type:      m.Type,
		ActorID:   m.ActorID,
		AnswerID:  m.AnswerID,
		Message:   m.Message,
		Read:      m.Read,
		ReadAt:    m.ReadAt,
		CreatedAt: m.CreatedAt,
	}
}

func ToNotificationResponseList(in []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(in))
	for _, m := range in {
		out = append(out, ToNotificationResponse(m))
	}
	return out
}
