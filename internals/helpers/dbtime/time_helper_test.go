package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToday_UsesLocation(t *testing.T) {
	// 15:30 UTC is already the next day in UTC+9
	clock := ClockFunc(func() time.Time { return time.Date(2024, 3, 9, 15, 30, 0, 0, time.UTC) })
	plus9 := time.FixedZone("KST", 9*60*60)

	assert.Equal(t, "2024-03-10", Today(clock, plus9))
	assert.Equal(t, "2024-03-09", Yesterday(clock, plus9))
	assert.Equal(t, "2024-03-09", Today(clock, time.UTC))
}

func TestResolveDate(t *testing.T) {
	clock := ClockFunc(func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) })

	assert.Equal(t, "2024-01-01", ResolveDate("today", clock, time.UTC))
	assert.Equal(t, "2024-01-01", ResolveDate(" TODAY ", clock, time.UTC))
	assert.Equal(t, "2023-12-25", ResolveDate("2023-12-25", clock, time.UTC))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2024-02-29"))
	assert.False(t, ValidDate("2023-02-29"))
	assert.False(t, ValidDate("2024/02/01"))
	assert.False(t, ValidDate("today"))
	assert.False(t, ValidDate(""))
}

func TestLoadLocation_FallsBack(t *testing.T) {
	assert.NotNil(t, LoadLocation("Not/AZone"))
	assert.Equal(t, time.UTC, LoadLocation("UTC"))
}
