package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	authRepo "moodlight_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler removes blacklist rows that expired more than
// ttlDays ago, once per interval, until ctx is done.
func StartBlacklistCleanupScheduler(ctx context.Context, db *gorm.DB, ttlDays int, interval time.Duration) {
	if ttlDays <= 0 {
		ttlDays = 7
	}
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			RunBlacklistCleanup(ctx, db, ttlDays, time.Now())

			select {
			case <-ctx.Done():
				zap.L().Info("[CLEANUP] stopped")
				return
			case <-ticker.C:
			}
		}
	}()
}

// RunBlacklistCleanup performs a single pass and returns the number of rows removed.
func RunBlacklistCleanup(ctx context.Context, db *gorm.DB, ttlDays int, now time.Time) int64 {
	cutoff := now.Add(-time.Duration(ttlDays) * 24 * time.Hour)

	n, err := authRepo.CleanupExpiredBlacklist(ctx, db, cutoff)
	if err != nil {
		zap.L().Error("[CLEANUP] token_blacklist cleanup failed", zap.Error(err))
		return 0
	}
	if n > 0 {
		zap.L().Info("[CLEANUP] expired tokens removed", zap.Int64("count", n))
	}
	return n
}
