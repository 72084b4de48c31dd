// file: internals/features/journal/answers/service/like_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"moodlight_backend/internals/features/journal/answers/repository"
	"moodlight_backend/internals/infra/events"
)

// LikeResult is what a like toggle actually did.
type LikeResult string

const (
	LikeAdded        LikeResult = "added"
	LikeAlreadyLiked LikeResult = "already_liked"
	LikeRemoved      LikeResult = "removed"
	LikeNotLiked     LikeResult = "not_liked"
)

var ErrAnswerPrivate = errors.New("answer is private")

type LikeService struct {
	DB     *gorm.DB
	Events events.Publisher

	// LegacyUnconditionalDecrement reproduces the old remove-like behaviour
	// that decremented likes even when no like row existed.
	LegacyUnconditionalDecrement bool
}

func NewLikeService(db *gorm.DB, pub events.Publisher, legacyDecrement bool) *LikeService {
	if pub == nil {
		pub = events.Noop{}
	}
	return &LikeService{DB: db, Events: pub, LegacyUnconditionalDecrement: legacyDecrement}
}

// AddLike inserts the like row and bumps likes in one transaction.
// A second like by the same user is a successful no-op.
func (s *LikeService) AddLike(ctx context.Context, userID uuid.UUID, answerID uint) (LikeResult, error) {
	var owner *repository.AnswerOwner
	result := LikeAlreadyLiked

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := repository.LockAnswer(tx, answerID)
		if err != nil {
			return err
		}
		if a.Private && a.UserID != userID {
			return ErrAnswerPrivate
		}
		owner = a

		inserted, err := repository.InsertLike(tx, userID, answerID)
		if err != nil {
			return err
		}
		if !inserted {
			return nil
		}
		if err := repository.AddToLikes(tx, answerID, 1); err != nil {
			return err
		}
		result = LikeAdded
		return nil
	})
	if err != nil {
		return "", wrapLikeErr("add like", err)
	}

	if result == LikeAdded && owner.UserID != userID {
		ev := events.AnswerLikedEvent{
			AnswerID:     answerID,
			AnswerUserID: owner.UserID,
			LikedBy:      userID,
			Timestamp:    time.Now().UTC(),
		}
		if err := s.Events.Publish(events.SubjectAnswerLiked, ev); err != nil {
			zap.L().Warn("publish answer.liked failed", zap.Uint("answer_id", answerID), zap.Error(err))
		}
	}
	return result, nil
}

// RemoveLike deletes the like row and decrements likes only if a row was removed.
func (s *LikeService) RemoveLike(ctx context.Context, userID uuid.UUID, answerID uint) (LikeResult, error) {
	result := LikeNotLiked

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := repository.LockAnswer(tx, answerID)
		if err != nil {
			return err
		}
		if a.Private && a.UserID != userID {
			return ErrAnswerPrivate
		}

		deleted, err := repository.DeleteLike(tx, userID, answerID)
		if err != nil {
			return err
		}
		if deleted {
			result = LikeRemoved
		}
		if deleted || s.LegacyUnconditionalDecrement {
			return repository.AddToLikes(tx, answerID, -1)
		}
		return nil
	})
	if err != nil {
		return "", wrapLikeErr("remove like", err)
	}
	return result, nil
}

func wrapLikeErr(op string, err error) error {
	if errors.Is(err, repository.ErrAnswerNotFound) || errors.Is(err, ErrAnswerPrivate) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
