package dto

import (
	"strings"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/features/journal/questions/model"
)

type CreateQuestionRequest struct {
	Contents      string `json:"contents" validate:"required,min=1,max=150"`
	Mood          string `json:"mood" validate:"required,oneof=sad angry happy"`
	ActivatedDate string `json:"activatedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CreateQuestionsRequest wraps the batch so the validator can dive into it.
type CreateQuestionsRequest struct {
	Questions []CreateQuestionRequest `validate:"required,min=1,dive"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.Contents = strings.TrimSpace(r.Contents)
	r.Mood = strings.ToLower(strings.TrimSpace(r.Mood))
	r.ActivatedDate = strings.TrimSpace(r.ActivatedDate)
}

func (r CreateQuestionRequest) ToModel() model.QuestionModel {
	m := model.QuestionModel{
		Contents: r.Contents,
		Mood:     constants.Mood(r.Mood),
	}
	if r.ActivatedDate != "" {
		d := r.ActivatedDate
		m.ActivatedDate = &d
	}
	return m
}

type UpdateQuestionRequest struct {
	ID            uint    `json:"id" validate:"required"`
	Contents      *string `json:"contents,omitempty" validate:"omitempty,min=1,max=150"`
	Mood          *string `json:"mood,omitempty" validate:"omitempty,oneof=sad angry happy"`
	ActivatedDate *string `json:"activatedDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateQuestionRequest) Normalize() {
	if r.Contents != nil {
		s := strings.TrimSpace(*r.Contents)
		r.Contents = &s
	}
	if r.Mood != nil {
		s := strings.ToLower(strings.TrimSpace(*r.Mood))
		r.Mood = &s
	}
	if r.ActivatedDate != nil {
		s := strings.TrimSpace(*r.ActivatedDate)
		r.ActivatedDate = &s
	}
}

func (r *UpdateQuestionRequest) ToUpdates() map[string]interface{} {
	out := map[string]interface{}{}
	if r.Contents != nil {
		out["contents"] = *r.Contents
	}
	if r.Mood != nil {
		out["mood"] = *r.Mood
	}
	if r.ActivatedDate != nil {
		out["activated_date"] = *r.ActivatedDate
	}
	return out
}

// MoodRotationResponse is one mood's outcome of a rotation run.
type MoodRotationResponse struct {
	Mood        constants.Mood `json:"mood"`
	Deactivated []uint         `json:"deactivated"`
	Activated   *uint          `json:"activated"`
	Skipped     string         `json:"skipped,omitempty"`
}
