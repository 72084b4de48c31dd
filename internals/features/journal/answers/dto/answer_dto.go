package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/features/journal/answers/model"
	questionModel "moodlight_backend/internals/features/journal/questions/model"
)

type CreateAnswerRequest struct {
	QuestionID   uint   `json:"questionId" validate:"required"`
	Contents     string `json:"contents" validate:"required,min=1"`
	MoodLevel    int    `json:"moodLevel" validate:"min=0,max=10"`
	Private      bool   `json:"private"`
	AllowComment *bool  `json:"allowComment,omitempty"`
}

func (r *CreateAnswerRequest) Normalize() {
	r.Contents = strings.TrimSpace(r.Contents)
}

func (r CreateAnswerRequest) ToModel(userID uuid.UUID) model.AnswerModel {
	allow := true
	if r.AllowComment != nil {
		allow = *r.AllowComment
	}
	return model.AnswerModel{
		Contents:     r.Contents,
		MoodLevel:    r.MoodLevel,
		Private:      r.Private,
		AllowComment: allow,
		UserID:       userID,
		QuestionID:   r.QuestionID,
	}
}

type UpdateAnswerRequest struct {
	ID           uint    `json:"id" validate:"required"`
	Contents     *string `json:"contents,omitempty" validate:"omitempty,min=1"`
	MoodLevel    *int    `json:"moodLevel,omitempty" validate:"omitempty,min=0,max=10"`
	Private      *bool   `json:"private,omitempty"`
	AllowComment *bool   `json:"allowComment,omitempty"`
}

func (r *UpdateAnswerRequest) Normalize() {
	if r.Contents != nil {
		s := strings.TrimSpace(*r.Contents)
		r.Contents = &s
	}
}

func (r *UpdateAnswerRequest) ToUpdates() map[string]interface{} {
	out := map[string]interface{}{}
	if r.Contents != nil {
		out["contents"] = *r.Contents
	}
	if r.MoodLevel != nil {
		out["mood_level"] = *r.MoodLevel
	}
	if r.Private != nil {
		out["private"] = *r.Private
	}
	if r.AllowComment != nil {
		out["allow_comment"] = *r.AllowComment
	}
	return out
}

type LikeRequest struct {
	AnswerID uint `json:"answerId" validate:"required"`
}

// AnswerResponse is an answer annotated for the viewer.
type AnswerResponse struct {
	ID             uint                         `json:"id"`
	Contents       string                       `json:"contents"`
	MoodLevel      int                          `json:"moodLevel"`
	Private        bool                         `json:"private"`
	AllowComment   bool                         `json:"allowComment"`
	Likes          int                          `json:"likes"`
	UserID         uuid.UUID                    `json:"userId"`
	Nickname       string                       `json:"nickname,omitempty"`
	QuestionID     uint                         `json:"questionId"`
	CreatedDate    time.Time                    `json:"createdDate"`
	IsLike         bool                         `json:"isLike"`
	CountOfComment int64                        `json:"countOfComment"`
	Question       *questionModel.QuestionModel `json:"question,omitempty"`
}

func FromModel(m model.AnswerModel) AnswerResponse {
	out := AnswerResponse{
		ID:           m.ID,
		Contents:     m.Contents,
		MoodLevel:    m.MoodLevel,
		Private:      m.Private,
		AllowComment: m.AllowComment,
		Likes:        m.Likes,
		UserID:       m.UserID,
		QuestionID:   m.QuestionID,
		CreatedDate:  m.CreatedDate,
		Question:     m.Question,
	}
	if m.User != nil {
		out.Nickname = m.User.Nickname
	}
	return out
}

type CountOfAnswerResponse struct {
	Mood  constants.Mood `json:"mood"`
	Count int64          `json:"count"`
}

type ExistAnswerResponse struct {
	Exist bool `json:"exist"`
}
