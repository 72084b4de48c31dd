// file: internals/features/journal/questions/scheduler/rotation_scheduler.go
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/features/journal/questions/dto"
	"moodlight_backend/internals/features/journal/questions/model"
	"moodlight_backend/internals/features/journal/questions/repository"
	"moodlight_backend/internals/helpers/dbtime"
)

const (
	SourceSchedule = "schedule"
	SourceManual   = "manual"
)

// Invalidator drops cached question lists after a rotation.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

type Options struct {
	Trigger     Trigger
	Clock       dbtime.Clock
	Location    *time.Location
	Delay       time.Duration
	Invalidator Invalidator
}

// RotationResult is the outcome of one run.
type RotationResult struct {
	RunDate string                     `json:"runDate"`
	Source  string                     `json:"source"`
	Moods   []dto.MoodRotationResponse `json:"moods"`
}

// Rotator swaps each mood's active question once per day.
type Rotator struct {
	db    *gorm.DB
	opts  Options
	runMu sync.Mutex

	ctx    context.Context
	cancel context.CancelFunc
}

func NewRotator(db *gorm.DB, opts Options) *Rotator {
	if opts.Clock == nil {
		opts.Clock = dbtime.SystemClock{}
	}
	if opts.Location == nil {
		opts.Location = dbtime.LoadLocation("")
	}
	return &Rotator{db: db, opts: opts}
}

// Start binds the rotator to its trigger. Each fire waits Delay, then rotates.
func (r *Rotator) Start(ctx context.Context) error {
	if r.opts.Trigger == nil {
		return fmt.Errorf("rotation trigger is not set")
	}
	r.ctx, r.cancel = context.WithCancel(ctx)

	if err := r.opts.Trigger.Start(r.onFire); err != nil {
		r.cancel()
		return err
	}
	zap.L().Info("⏱ question rotation scheduled",
		zap.String("timezone", r.opts.Location.String()),
		zap.Duration("delay", r.opts.Delay),
	)
	return nil
}

func (r *Rotator) Stop() {
	if r.opts.Trigger != nil {
		r.opts.Trigger.Stop()
	}
	if r.cancel != nil {
		r.cancel()
	}
}

func (r *Rotator) onFire() {
	ctx := r.ctx
	if r.opts.Delay > 0 {
		select {
		case <-time.After(r.opts.Delay):
		case <-ctx.Done():
			return
		}
	}

	res, err := r.run(ctx, SourceSchedule)
	if err != nil {
		zap.L().Error("question rotation failed", zap.Error(err))
		return
	}
	zap.L().Info("✅ question updated", zap.String("run_date", res.RunDate), zap.Any("moods", res.Moods))
}

// RunNow performs one rotation immediately.
func (r *Rotator) RunNow(ctx context.Context) (*RotationResult, error) {
	return r.run(ctx, SourceManual)
}

func (r *Rotator) run(ctx context.Context, source string) (*RotationResult, error) {
	r.runMu.Lock()
	defer r.runMu.Unlock()

	today := dbtime.Today(r.opts.Clock, r.opts.Location)
	results := make([]dto.MoodRotationResponse, len(constants.MoodList))

	g, gctx := errgroup.WithContext(ctx)
	for i, mood := range constants.MoodList {
		i, mood := i, mood
		g.Go(func() error {
			out, err := r.rotateMood(gctx, mood, today)
			if err != nil {
				return fmt.Errorf("rotate %s: %w", mood, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &RotationResult{RunDate: today, Source: source, Moods: results}
	r.writeLog(ctx, res)
	if r.opts.Invalidator != nil {
		r.opts.Invalidator.Invalidate(ctx)
	}
	return res, nil
}

// rotateMood runs both passes of one mood in a single transaction. The
// activation target is read before anything is deactivated.
func (r *Rotator) rotateMood(ctx context.Context, mood constants.Mood, today string) (dto.MoodRotationResponse, error) {
	out := dto.MoodRotationResponse{Mood: mood, Deactivated: []uint{}}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stale, err := repository.FindStaleActiveIDs(tx, mood, today)
		if err != nil {
			return err
		}

		alreadyActive, err := repository.HasActiveOn(tx, mood, today)
		if err != nil {
			return err
		}

		var (
			targetID uint
			found    bool
		)
		if !alreadyActive {
			targetID, found, err = repository.PickActivationTarget(tx, mood, today)
			if err != nil {
				return err
			}
		}

		if err := repository.Deactivate(tx, stale); err != nil {
			return err
		}
		out.Deactivated = stale

		switch {
		case alreadyActive:
			out.Skipped = "already_active"
		case !found:
			out.Skipped = "no_candidate"
		default:
			if err := repository.Activate(tx, targetID, today); err != nil {
				return err
			}
			id := targetID
			out.Activated = &id
		}
		return nil
	})
	return out, err
}

func (r *Rotator) writeLog(ctx context.Context, res *RotationResult) {
	details, err := sonic.Marshal(res.Moods)
	if err != nil {
		zap.L().Warn("rotation log encode failed", zap.Error(err))
		return
	}
	row := &model.QuestionRotationLogModel{
		RunDate: res.RunDate,
		Source:  res.Source,
		Details: datatypes.JSON(details),
	}
	if err := repository.CreateRotationLog(ctx, r.db, row); err != nil {
		zap.L().Warn("rotation log write failed", zap.Error(err))
	}
}
