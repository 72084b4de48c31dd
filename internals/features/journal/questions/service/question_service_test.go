package service_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/databases/dbtest"
	"moodlight_backend/internals/features/journal/questions/dto"
	"moodlight_backend/internals/features/journal/questions/repository"
	"moodlight_backend/internals/features/journal/questions/service"
	"moodlight_backend/internals/helpers/dbtime"
	"moodlight_backend/internals/infra/cache"
)

type memCache struct {
	mu    sync.Mutex
	items map[string]string
	gets  int
}

func newMemCache() *memCache { return &memCache{items: map[string]string{}} }

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.items[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *memCache) DelPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.items {
		if strings.HasPrefix(k, prefix) {
			delete(c.items, k)
		}
	}
	return nil
}

func (c *memCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.items))
	for k := range c.items {
		out = append(out, k)
	}
	return out
}

func fixedClock() (dbtime.Clock, *time.Location) {
	loc := dbtime.LoadLocation("Asia/Seoul")
	now := time.Date(2024, 3, 10, 9, 0, 0, 0, loc)
	return dbtime.ClockFunc(func() time.Time { return now }), loc
}

func TestFindQuestions_ResolvesTodayAndFiltersMood(t *testing.T) {
	db := dbtest.Open(t)
	clock, loc := fixedClock()
	today := dbtime.Today(clock, loc)

	sad := dbtest.SeedQuestion(t, db, constants.MoodSad, true, today)
	happy := dbtest.SeedQuestion(t, db, constants.MoodHappy, true, today)
	dbtest.SeedQuestion(t, db, constants.MoodSad, false, "2024-03-09")
	dbtest.SeedQuestion(t, db, constants.MoodAngry, false, "")

	svc := service.NewQuestionService(db, nil, clock, loc)
	ctx := context.Background()

	all, err := svc.FindQuestions(ctx, "today", "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, sad.ID, all[0].ID)
	assert.Equal(t, happy.ID, all[1].ID)

	onlySad, err := svc.FindQuestions(ctx, today, constants.MoodSad)
	require.NoError(t, err)
	require.Len(t, onlySad, 1)
	assert.Equal(t, sad.ID, onlySad[0].ID)

	past, err := svc.FindQuestions(ctx, "2024-03-09", "")
	require.NoError(t, err)
	assert.Empty(t, past, "deactivated questions are not listed for their old date")

	everything, err := svc.FindQuestions(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, everything, 4)
}

func TestFindQuestions_CachesTodayOnly(t *testing.T) {
	db := dbtest.Open(t)
	clock, loc := fixedClock()
	today := dbtime.Today(clock, loc)
	mc := newMemCache()

	dbtest.SeedQuestion(t, db, constants.MoodAngry, true, today)
	svc := service.NewQuestionService(db, mc, clock, loc)
	ctx := context.Background()

	first, err := svc.FindQuestions(ctx, "today", "")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, []string{"questions:" + today + ":all"}, mc.keys())

	// a row written behind the service is not visible until invalidation
	dbtest.SeedQuestion(t, db, constants.MoodSad, true, today)
	cached, err := svc.FindQuestions(ctx, "today", "")
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	svc.Invalidate(ctx)
	assert.Empty(t, mc.keys())

	fresh, err := svc.FindQuestions(ctx, "today", "")
	require.NoError(t, err)
	assert.Len(t, fresh, 2)

	_, err = svc.FindQuestions(ctx, "2024-01-01", "")
	require.NoError(t, err)
	assert.Len(t, mc.keys(), 1, "other dates are not cached")
}

func TestCreateQuestions_BatchAndInvalidate(t *testing.T) {
	db := dbtest.Open(t)
	clock, loc := fixedClock()
	mc := newMemCache()
	svc := service.NewQuestionService(db, mc, clock, loc)
	ctx := context.Background()

	_, err := svc.FindQuestions(ctx, "today", "")
	require.NoError(t, err)
	require.Len(t, mc.keys(), 1)

	rows, err := svc.CreateQuestions(ctx, []dto.CreateQuestionRequest{
		{Contents: "what made you smile?", Mood: "happy"},
		{Contents: "what hurt today?", Mood: "sad", ActivatedDate: "2024-03-11"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.NotZero(t, rows[0].ID)
	assert.False(t, rows[0].Activated)
	assert.Nil(t, rows[0].ActivatedDate)
	require.NotNil(t, rows[1].ActivatedDate)
	assert.Equal(t, "2024-03-11", *rows[1].ActivatedDate)
	assert.Empty(t, mc.keys())
}

func TestUpdateQuestion(t *testing.T) {
	db := dbtest.Open(t)
	clock, loc := fixedClock()
	svc := service.NewQuestionService(db, nil, clock, loc)
	q := dbtest.SeedQuestion(t, db, constants.MoodSad, false, "")

	text := "rewritten"
	got, err := svc.UpdateQuestion(context.Background(), dto.UpdateQuestionRequest{ID: q.ID, Contents: &text})
	require.NoError(t, err)
	assert.Equal(t, "rewritten", got.Contents)
	assert.Equal(t, constants.MoodSad, got.Mood)

	_, err = svc.UpdateQuestion(context.Background(), dto.UpdateQuestionRequest{ID: 777, Contents: &text})
	assert.ErrorIs(t, err, repository.ErrQuestionNotFound)
}

func TestDeleteQuestion(t *testing.T) {
	db := dbtest.Open(t)
	clock, loc := fixedClock()
	svc := service.NewQuestionService(db, nil, clock, loc)
	ctx := context.Background()

	free := dbtest.SeedQuestion(t, db, constants.MoodHappy, false, "")
	used := dbtest.SeedQuestion(t, db, constants.MoodHappy, true, "2024-03-10")
	u := dbtest.SeedUser(t, db, "answerer")
	dbtest.SeedAnswer(t, db, u.ID, used.ID, false)

	require.NoError(t, svc.DeleteQuestion(ctx, free.ID))
	_, err := svc.FindQuestionByID(ctx, free.ID)
	assert.ErrorIs(t, err, repository.ErrQuestionNotFound)

	assert.ErrorIs(t, svc.DeleteQuestion(ctx, used.ID), repository.ErrQuestionInUse)
	assert.ErrorIs(t, svc.DeleteQuestion(ctx, free.ID), repository.ErrQuestionNotFound)
}
