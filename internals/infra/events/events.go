package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubjectAnswerLiked     = "moodlight.answer.liked"
	SubjectAnswerCommented = "moodlight.answer.commented"
)

type AnswerLikedEvent struct {
	AnswerID     uint      `json:"answer_id"`
	AnswerUserID uuid.UUID `json:"answer_user_id"`
	LikedBy      uuid.UUID `json:"liked_by"`
	Timestamp    time.Time `json:"timestamp"`
}

type AnswerCommentedEvent struct {
	CommentID    uint      `json:"comment_id"`
	AnswerID     uint      `json:"answer_id"`
	AnswerUserID uuid.UUID `json:"answer_user_id"`
	CommentedBy  uuid.UUID `json:"commented_by"`
	Contents     string    `json:"contents"`
	Timestamp    time.Time `json:"timestamp"`
}
