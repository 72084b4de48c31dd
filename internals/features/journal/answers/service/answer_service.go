// file: internals/features/journal/answers/service/answer_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/features/journal/answers/dto"
	"moodlight_backend/internals/features/journal/answers/model"
	"moodlight_backend/internals/features/journal/answers/repository"
	questionRepo "moodlight_backend/internals/features/journal/questions/repository"
)

var ErrQuestionNotActivated = errors.New("question is not activated")

type AnswerService struct {
	DB *gorm.DB
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{DB: db}
}

// annotate adds isLike (one lookup per answer) and countOfComment (one grouped query).
func (s *AnswerService) annotate(ctx context.Context, viewer uuid.UUID, answers []model.AnswerModel) ([]dto.AnswerResponse, error) {
	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a.ID)
	}
	counts, err := repository.CountComments(ctx, s.DB, ids)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}

	out := make([]dto.AnswerResponse, 0, len(answers))
	for _, a := range answers {
		liked, err := repository.IsLiked(ctx, s.DB, viewer, a.ID)
		if err != nil {
			return nil, fmt.Errorf("like lookup: %w", err)
		}
		row := dto.FromModel(a)
		row.IsLike = liked
		row.CountOfComment = counts[a.ID]
		out = append(out, row)
	}
	return out, nil
}

// FindMyAnswers pages through the viewer's answers, newest first.
func (s *AnswerService) FindMyAnswers(ctx context.Context, viewer uuid.UUID, skip, take int) ([]dto.AnswerResponse, int64, error) {
	if take <= 0 {
		return []dto.AnswerResponse{}, 0, nil
	}
	answers, total, err := repository.FindByUser(ctx, s.DB, viewer, skip, take)
	if err != nil {
		return nil, 0, fmt.Errorf("find my answers: %w", err)
	}
	out, err := s.annotate(ctx, viewer, answers)
	return out, total, err
}

func (s *AnswerService) FindAllMyAnswers(ctx context.Context, viewer uuid.UUID) ([]dto.AnswerResponse, error) {
	answers, _, err := repository.FindByUser(ctx, s.DB, viewer, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("find all my answers: %w", err)
	}
	return s.annotate(ctx, viewer, answers)
}

func (s *AnswerService) ExistMyAnswer(ctx context.Context, viewer uuid.UUID, activatedDate string) (bool, error) {
	ok, err := repository.ExistsForDate(ctx, s.DB, viewer, activatedDate)
	if err != nil {
		return false, fmt.Errorf("exist my answer: %w", err)
	}
	return ok, nil
}

// FindAnswers returns one page of a question's public answers ordered by id DESC.
func (s *AnswerService) FindAnswers(ctx context.Context, questionID uint, viewer uuid.UUID, skip, take int) ([]dto.AnswerResponse, int64, error) {
	if take <= 0 {
		return []dto.AnswerResponse{}, 0, nil
	}
	answers, total, err := repository.FindPublicByQuestion(ctx, s.DB, questionID, skip, take)
	if err != nil {
		return nil, 0, fmt.Errorf("find answers: %w", err)
	}
	out, err := s.annotate(ctx, viewer, answers)
	return out, total, err
}

// GetCountOfAnswers yields one entry per mood in MoodList order, zero filled.
func (s *AnswerService) GetCountOfAnswers(ctx context.Context, date string) ([]dto.CountOfAnswerResponse, error) {
	rows, err := repository.CountByMood(ctx, s.DB, date)
	if err != nil {
		return nil, fmt.Errorf("count answers: %w", err)
	}
	byMood := make(map[constants.Mood]int64, len(rows))
	for _, r := range rows {
		byMood[r.Mood] = r.Count
	}

	out := make([]dto.CountOfAnswerResponse, 0, len(constants.MoodList))
	for _, m := range constants.MoodList {
		out = append(out, dto.CountOfAnswerResponse{Mood: m, Count: byMood[m]})
	}
	return out, nil
}

// CreateAnswer requires the question to exist and be activated.
func (s *AnswerService) CreateAnswer(ctx context.Context, viewer uuid.UUID, req dto.CreateAnswerRequest) (*model.AnswerModel, error) {
	q, err := questionRepo.FindByID(ctx, s.DB, req.QuestionID)
	if err != nil {
		if errors.Is(err, questionRepo.ErrQuestionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load question: %w", err)
	}
	if !q.Activated {
		return nil, ErrQuestionNotActivated
	}

	a := req.ToModel(viewer)
	if err := repository.Create(ctx, s.DB, &a); err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}
	a.Question = q
	return &a, nil
}

func (s *AnswerService) UpdateAnswer(ctx context.Context, viewer uuid.UUID, req dto.UpdateAnswerRequest) (*model.AnswerModel, error) {
	updates := req.ToUpdates()
	if len(updates) > 0 {
		if err := repository.UpdateOwned(ctx, s.DB, req.ID, viewer, updates); err != nil {
			if errors.Is(err, repository.ErrAnswerNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("update answer: %w", err)
		}
	}

	a, err := repository.FindByID(ctx, s.DB, req.ID)
	if err != nil {
		return nil, err
	}
	if a.UserID != viewer {
		return nil, repository.ErrAnswerNotFound
	}
	return a, nil
}

func (s *AnswerService) DeleteAnswer(ctx context.Context, viewer uuid.UUID, id uint) error {
	if err := repository.DeleteOwned(ctx, s.DB, id, viewer); err != nil {
		if errors.Is(err, repository.ErrAnswerNotFound) {
			return err
		}
		return fmt.Errorf("delete answer: %w", err)
	}
	return nil
}
