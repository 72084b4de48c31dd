// file: internals/features/journal/comments/service/comment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	answerModel "moodlight_backend/internals/features/journal/answers/model"
	answerRepo "moodlight_backend/internals/features/journal/answers/repository"
	"moodlight_backend/internals/features/journal/comments/dto"
	"moodlight_backend/internals/features/journal/comments/model"
	"moodlight_backend/internals/features/journal/comments/repository"
	"moodlight_backend/internals/infra/events"
)

var (
	ErrAnswerPrivate     = errors.New("answer is private")
	ErrCommentNotAllowed = errors.New("comments are not allowed on this answer")
)

type CommentService struct {
	DB     *gorm.DB
	Events events.Publisher
}

func NewCommentService(db *gorm.DB, pub events.Publisher) *CommentService {
	if pub == nil {
		pub = events.Noop{}
	}
	return &CommentService{DB: db, Events: pub}
}

// visibleAnswer loads the answer and hides private ones from everyone but the owner.
func (s *CommentService) visibleAnswer(ctx context.Context, viewer uuid.UUID, answerID uint) (*answerModel.AnswerModel, error) {
	a, err := answerRepo.FindByID(ctx, s.DB, answerID)
	if err != nil {
		return nil, err
	}
	if a.Private && a.UserID != viewer {
		return nil, ErrAnswerPrivate
	}
	return a, nil
}

func (s *CommentService) FindComments(ctx context.Context, viewer uuid.UUID, answerID uint, skip, take int) ([]dto.CommentResponse, int64, error) {
	if _, err := s.visibleAnswer(ctx, viewer, answerID); err != nil {
		return nil, 0, err
	}
	rows, total, err := repository.FindByAnswer(ctx, s.DB, answerID, skip, take)
	if err != nil {
		return nil, 0, fmt.Errorf("find comments: %w", err)
	}
	return dto.FromModels(rows), total, nil
}

func (s *CommentService) CountComments(ctx context.Context, viewer uuid.UUID, answerID uint) (int64, error) {
	if _, err := s.visibleAnswer(ctx, viewer, answerID); err != nil {
		return 0, err
	}
	n, err := repository.CountByAnswer(ctx, s.DB, answerID)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}

func (s *CommentService) CreateComment(ctx context.Context, viewer uuid.UUID, req dto.CreateCommentRequest) (*model.CommentModel, error) {
	a, err := s.visibleAnswer(ctx, viewer, req.AnswerID)
	if err != nil {
		return nil, err
	}
	if !a.AllowComment {
		return nil, ErrCommentNotAllowed
	}

	m := model.CommentModel{
		Contents: req.Contents,
		AnswerID: req.AnswerID,
		UserID:   viewer,
	}
	if err := repository.Create(ctx, s.DB, &m); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if a.UserID != viewer {
		ev := events.AnswerCommentedEvent{
			CommentID:    m.ID,
			AnswerID:     a.ID,
			AnswerUserID: a.UserID,
			CommentedBy:  viewer,
			Contents:     m.Contents,
			Timestamp:    time.Now().UTC(),
		}
		if err := s.Events.Publish(events.SubjectAnswerCommented, ev); err != nil {
			zap.L().Warn("publish answer.commented failed", zap.Uint("answer_id", a.ID), zap.Error(err))
		}
	}
	return &m, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, viewer uuid.UUID, req dto.UpdateCommentRequest) (*model.CommentModel, error) {
	if err := repository.UpdateOwned(ctx, s.DB, req.ID, viewer, req.Contents); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return repository.FindByID(ctx, s.DB, req.ID)
}

func (s *CommentService) DeleteComment(ctx context.Context, viewer uuid.UUID, id uint) error {
	if err := repository.DeleteOwned(ctx, s.DB, id, viewer); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return err
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
