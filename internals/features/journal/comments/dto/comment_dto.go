package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"moodlight_backend/internals/features/journal/comments/model"
)

type CreateCommentRequest struct {
	AnswerID uint   `json:"answerId" validate:"required"`
	Contents string `json:"contents" validate:"required,min=1,max=150"`
}

type UpdateCommentRequest struct {
	ID       uint   `json:"id" validate:"required"`
	Contents string `json:"contents" validate:"required,min=1,max=150"`
}

func (r *CreateCommentRequest) Normalize() { r.Contents = strings.TrimSpace(r.Contents) }
func (r *UpdateCommentRequest) Normalize() { r.Contents = strings.TrimSpace(r.Contents) }

type CommentResponse struct {
	ID          uint      `json:"id"`
	Contents    string    `json:"contents"`
	AnswerID    uint      `json:"answerId"`
	UserID      uuid.UUID `json:"userId"`
	Nickname    string    `json:"nickname,omitempty"`
	CreatedDate time.Time `json:"createdDate"`
}

func FromModel(m model.CommentModel) CommentResponse {
	out := CommentResponse{
		ID:          m.ID,
		Contents:    m.Contents,
		AnswerID:    m.AnswerID,
		UserID:      m.UserID,
		CreatedDate: m.CreatedDate,
	}
	if m.User != nil {
		out.Nickname = m.User.Nickname
	}
	return out
}

func FromModels(in []model.CommentModel) []CommentResponse {
	out := make([]CommentResponse, 0, len(in))
	for _, m := range in {
		out = append(out, FromModel(m))
	}
	return out
}

type CountOfCommentResponse struct {
	AnswerID uint  `json:"answerId"`
	Count    int64 `json:"count"`
}
