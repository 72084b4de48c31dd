// file: internals/features/journal/questions/service/question_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/features/journal/questions/dto"
	"moodlight_backend/internals/features/journal/questions/model"
	"moodlight_backend/internals/features/journal/questions/repository"
	"moodlight_backend/internals/helpers/dbtime"
	"moodlight_backend/internals/infra/cache"
)

const (
	cacheKeyPrefix = "questions:"
	cacheTTL       = 6 * time.Hour
)

// CachePattern matches every key written by QuestionService.
const CachePattern = cacheKeyPrefix + "*"

type QuestionService struct {
	DB    *gorm.DB
	Cache cache.Cache
	Clock dbtime.Clock
	Loc   *time.Location
}

func NewQuestionService(db *gorm.DB, c cache.Cache, clock dbtime.Clock, loc *time.Location) *QuestionService {
	if c == nil {
		c = cache.Noop{}
	}
	if clock == nil {
		clock = dbtime.SystemClock{}
	}
	if loc == nil {
		loc = dbtime.LoadLocation("")
	}
	return &QuestionService{DB: db, Cache: c, Clock: clock, Loc: loc}
}

func cacheKey(date string, mood constants.Mood) string {
	if mood == "" {
		return fmt.Sprintf("%s%s:all", cacheKeyPrefix, date)
	}
	return fmt.Sprintf("%s%s:%s", cacheKeyPrefix, date, mood)
}

// FindQuestions returns activated questions of date ("today" allowed).
// Empty date and mood return every question. Results for today are cached.
func (s *QuestionService) FindQuestions(ctx context.Context, date string, mood constants.Mood) ([]model.QuestionModel, error) {
	if date == "" && mood == "" {
		return repository.FindAll(ctx, s.DB, "")
	}
	if date == "" {
		return repository.FindAll(ctx, s.DB, mood)
	}

	date = dbtime.ResolveDate(date, s.Clock, s.Loc)
	cacheable := date == dbtime.Today(s.Clock, s.Loc)
	key := cacheKey(date, mood)

	if cacheable {
		if raw, err := s.Cache.Get(ctx, key); err == nil {
			var cached []model.QuestionModel
			if err := sonic.UnmarshalString(raw, &cached); err == nil {
				return cached, nil
			}
		} else if !errors.Is(err, cache.ErrMiss) {
			zap.L().Warn("question cache get failed", zap.String("key", key), zap.Error(err))
		}
	}

	out, err := repository.FindActivated(ctx, s.DB, date, mood)
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}

	if cacheable {
		if raw, err := sonic.MarshalString(out); err == nil {
			if err := s.Cache.Set(ctx, key, raw, cacheTTL); err != nil {
				zap.L().Warn("question cache set failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return out, nil
}

func (s *QuestionService) FindQuestionByID(ctx context.Context, id uint) (*model.QuestionModel, error) {
	return repository.FindByID(ctx, s.DB, id)
}

// CreateQuestions inserts the batch in one statement.
func (s *QuestionService) CreateQuestions(ctx context.Context, reqs []dto.CreateQuestionRequest) ([]model.QuestionModel, error) {
	rows := make([]model.QuestionModel, 0, len(reqs))
	for _, r := range reqs {
		rows = append(rows, r.ToModel())
	}
	if err := repository.CreateBatch(ctx, s.DB, rows); err != nil {
		return nil, fmt.Errorf("create questions: %w", err)
	}
	s.Invalidate(ctx)
	return rows, nil
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, req dto.UpdateQuestionRequest) (*model.QuestionModel, error) {
	updates := req.ToUpdates()
	if len(updates) > 0 {
		if err := repository.Update(ctx, s.DB, req.ID, updates); err != nil {
			if errors.Is(err, repository.ErrQuestionNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("update question: %w", err)
		}
		s.Invalidate(ctx)
	}
	return repository.FindByID(ctx, s.DB, req.ID)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint) error {
	if err := repository.Delete(ctx, s.DB, id); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) || errors.Is(err, repository.ErrQuestionInUse) {
			return err
		}
		return fmt.Errorf("delete question: %w", err)
	}
	s.Invalidate(ctx)
	return nil
}

// Invalidate drops every cached question list.
func (s *QuestionService) Invalidate(ctx context.Context) {
	if err := s.Cache.DelPattern(ctx, CachePattern); err != nil {
		zap.L().Warn("question cache invalidate failed", zap.Error(err))
	}
}
