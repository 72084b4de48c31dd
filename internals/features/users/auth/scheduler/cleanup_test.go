package scheduler_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodlight_backend/internals/databases/dbtest"
	authModel "moodlight_backend/internals/features/users/auth/model"
	"moodlight_backend/internals/features/users/auth/scheduler"
)

func TestRunBlacklistCleanup(t *testing.T) {
	db := dbtest.Open(t)
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	rows := []authModel.TokenBlacklist{
		{Token: "ancient", ExpiredAt: now.AddDate(0, 0, -30)},
		{Token: "last-week", ExpiredAt: now.AddDate(0, 0, -8)},
		{Token: "yesterday", ExpiredAt: now.AddDate(0, 0, -1)},
		{Token: "live", ExpiredAt: now.Add(time.Hour)},
	}
	require.NoError(t, db.Create(&rows).Error)

	removed := scheduler.RunBlacklistCleanup(context.Background(), db, 7, now)
	assert.EqualValues(t, 2, removed)

	var left []string
	require.NoError(t, db.Model(&authModel.TokenBlacklist{}).Order("token").Pluck("token", &left).Error)
	assert.Equal(t, []string{"live", "yesterday"}, left)

	assert.Zero(t, scheduler.RunBlacklistCleanup(context.Background(), db, 7, now))
}
