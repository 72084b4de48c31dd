package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/databases/dbtest"
	"moodlight_backend/internals/features/journal/answers/dto"
	"moodlight_backend/internals/features/journal/answers/repository"
	"moodlight_backend/internals/features/journal/answers/service"
	commentModel "moodlight_backend/internals/features/journal/comments/model"
	questionRepo "moodlight_backend/internals/features/journal/questions/repository"
)

func seedComment(t *testing.T, db *gorm.DB, userID uuid.UUID, answerID uint) {
	t.Helper()
	require.NoError(t, db.Create(&commentModel.CommentModel{
		Contents: "nice",
		AnswerID: answerID,
		UserID:   userID,
	}).Error)
}

func ids(rows []dto.AnswerResponse) []uint {
	out := make([]uint, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestFindAnswers_PublicOnlyNewestFirst(t *testing.T) {
	db := dbtest.Open(t)
	alice := dbtest.SeedUser(t, db, "alice")
	bob := dbtest.SeedUser(t, db, "bob")
	q := dbtest.SeedQuestion(t, db, constants.MoodSad, true, "2024-03-10")

	first := dbtest.SeedAnswer(t, db, alice.ID, q.ID, false)
	hidden := dbtest.SeedAnswer(t, db, bob.ID, q.ID, true)
	second := dbtest.SeedAnswer(t, db, bob.ID, q.ID, false)
	third := dbtest.SeedAnswer(t, db, alice.ID, q.ID, false)

	svc := service.NewAnswerService(db)
	rows, total, err := svc.FindAnswers(context.Background(), q.ID, bob.ID, 0, 10)
	require.NoError(t, err)

	assert.EqualValues(t, 3, total)
	assert.Equal(t, []uint{third.ID, second.ID, first.ID}, ids(rows))
	assert.NotContains(t, ids(rows), hidden.ID, "private answers are hidden even from their author")
	assert.Equal(t, "alice", rows[0].Nickname)
}

func TestFindAnswers_Paginates(t *testing.T) {
	db := dbtest.Open(t)
	u := dbtest.SeedUser(t, db, "writer")
	q := dbtest.SeedQuestion(t, db, constants.MoodAngry, true, "2024-03-10")

	var created []uint
	for i := 0; i < 5; i++ {
		created = append(created, dbtest.SeedAnswer(t, db, u.ID, q.ID, false).ID)
	}

	svc := service.NewAnswerService(db)
	rows, total, err := svc.FindAnswers(context.Background(), q.ID, u.ID, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Equal(t, []uint{created[2], created[1]}, ids(rows))

	rows, _, err = svc.FindAnswers(context.Background(), q.ID, u.ID, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFindAnswers_AnnotatesLikeAndCommentCount(t *testing.T) {
	db := dbtest.Open(t)
	owner := dbtest.SeedUser(t, db, "owner")
	viewer := dbtest.SeedUser(t, db, "viewer")
	q := dbtest.SeedQuestion(t, db, constants.MoodHappy, true, "2024-03-10")

	liked := dbtest.SeedAnswer(t, db, owner.ID, q.ID, false)
	plain := dbtest.SeedAnswer(t, db, owner.ID, q.ID, false)

	_, err := service.NewLikeService(db, nil, false).AddLike(context.Background(), viewer.ID, liked.ID)
	require.NoError(t, err)
	seedComment(t, db, viewer.ID, liked.ID)
	seedComment(t, db, owner.ID, liked.ID)

	rows, _, err := service.NewAnswerService(db).FindAnswers(context.Background(), q.ID, viewer.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[uint]dto.AnswerResponse{}
	for _, r := range rows {
		byID[r.ID] = r
	}
	assert.True(t, byID[liked.ID].IsLike)
	assert.Equal(t, 1, byID[liked.ID].Likes)
	assert.EqualValues(t, 2, byID[liked.ID].CountOfComment)
	assert.False(t, byID[plain.ID].IsLike)
	assert.EqualValues(t, 0, byID[plain.ID].CountOfComment)
}

func TestFindMyAnswers_IncludesPrivateWithQuestion(t *testing.T) {
	db := dbtest.Open(t)
	me := dbtest.SeedUser(t, db, "me")
	other := dbtest.SeedUser(t, db, "other")
	q1 := dbtest.SeedQuestion(t, db, constants.MoodSad, false, "2024-03-09")
	q2 := dbtest.SeedQuestion(t, db, constants.MoodHappy, true, "2024-03-10")

	older := dbtest.SeedAnswer(t, db, me.ID, q1.ID, true)
	newer := dbtest.SeedAnswer(t, db, me.ID, q2.ID, false)
	dbtest.SeedAnswer(t, db, other.ID, q2.ID, false)

	svc := service.NewAnswerService(db)
	rows, total, err := svc.FindMyAnswers(context.Background(), me.ID, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, []uint{newer.ID, older.ID}, ids(rows))
	require.NotNil(t, rows[1].Question)
	assert.Equal(t, q1.ID, rows[1].Question.ID)

	all, err := svc.FindAllMyAnswers(context.Background(), me.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetCountOfAnswers_ZeroFilledInMoodOrder(t *testing.T) {
	db := dbtest.Open(t)
	u := dbtest.SeedUser(t, db, "counter")
	sad := dbtest.SeedQuestion(t, db, constants.MoodSad, true, "2024-03-10")
	happy := dbtest.SeedQuestion(t, db, constants.MoodHappy, true, "2024-03-10")
	oldHappy := dbtest.SeedQuestion(t, db, constants.MoodHappy, false, "2024-03-09")

	dbtest.SeedAnswer(t, db, u.ID, sad.ID, false)
	dbtest.SeedAnswer(t, db, u.ID, sad.ID, true)
	dbtest.SeedAnswer(t, db, u.ID, happy.ID, false)
	dbtest.SeedAnswer(t, db, u.ID, oldHappy.ID, false)

	got, err := service.NewAnswerService(db).GetCountOfAnswers(context.Background(), "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, []dto.CountOfAnswerResponse{
		{Mood: constants.MoodSad, Count: 2},
		{Mood: constants.MoodAngry, Count: 0},
		{Mood: constants.MoodHappy, Count: 1},
	}, got)
}

func TestCreateAnswer(t *testing.T) {
	db := dbtest.Open(t)
	u := dbtest.SeedUser(t, db, "author")
	active := dbtest.SeedQuestion(t, db, constants.MoodSad, true, "2024-03-10")
	inactive := dbtest.SeedQuestion(t, db, constants.MoodSad, false, "")
	svc := service.NewAnswerService(db)
	ctx := context.Background()

	t.Run("defaults allowComment to true", func(t *testing.T) {
		a, err := svc.CreateAnswer(ctx, u.ID, dto.CreateAnswerRequest{QuestionID: active.ID, Contents: "ok", MoodLevel: 4})
		require.NoError(t, err)
		assert.True(t, a.AllowComment)
		assert.Equal(t, 0, a.Likes)
		assert.Equal(t, u.ID, a.UserID)
	})

	t.Run("rejects inactive question", func(t *testing.T) {
		_, err := svc.CreateAnswer(ctx, u.ID, dto.CreateAnswerRequest{QuestionID: inactive.ID, Contents: "late"})
		assert.ErrorIs(t, err, service.ErrQuestionNotActivated)
	})

	t.Run("rejects unknown question", func(t *testing.T) {
		_, err := svc.CreateAnswer(ctx, u.ID, dto.CreateAnswerRequest{QuestionID: 4242, Contents: "??"})
		assert.ErrorIs(t, err, questionRepo.ErrQuestionNotFound)
	})
}

func TestUpdateAndDeleteAnswer_OwnerOnly(t *testing.T) {
	db := dbtest.Open(t)
	owner := dbtest.SeedUser(t, db, "owner")
	intruder := dbtest.SeedUser(t, db, "intruder")
	q := dbtest.SeedQuestion(t, db, constants.MoodAngry, true, "2024-03-10")
	a := dbtest.SeedAnswer(t, db, owner.ID, q.ID, false)
	svc := service.NewAnswerService(db)
	ctx := context.Background()

	text := "edited"
	private := true

	_, err := svc.UpdateAnswer(ctx, intruder.ID, dto.UpdateAnswerRequest{ID: a.ID, Contents: &text})
	assert.ErrorIs(t, err, repository.ErrAnswerNotFound)

	got, err := svc.UpdateAnswer(ctx, owner.ID, dto.UpdateAnswerRequest{ID: a.ID, Contents: &text, Private: &private})
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Contents)
	assert.True(t, got.Private)

	_, err = service.NewLikeService(db, nil, false).AddLike(ctx, owner.ID, a.ID)
	require.NoError(t, err)
	seedComment(t, db, owner.ID, a.ID)

	assert.ErrorIs(t, svc.DeleteAnswer(ctx, intruder.ID, a.ID), repository.ErrAnswerNotFound)
	require.NoError(t, svc.DeleteAnswer(ctx, owner.ID, a.ID))

	_, err = repository.FindByID(ctx, db, a.ID)
	assert.ErrorIs(t, err, repository.ErrAnswerNotFound)
	assert.EqualValues(t, 0, dbtest.CountLikeRows(t, db, a.ID))

	var comments int64
	require.NoError(t, db.Model(&commentModel.CommentModel{}).Where("answer_id = ?", a.ID).Count(&comments).Error)
	assert.Zero(t, comments)
}

func TestExistMyAnswer(t *testing.T) {
	db := dbtest.Open(t)
	me := dbtest.SeedUser(t, db, "me")
	q := dbtest.SeedQuestion(t, db, constants.MoodHappy, true, "2024-03-10")
	dbtest.SeedAnswer(t, db, me.ID, q.ID, true)
	svc := service.NewAnswerService(db)

	ok, err := svc.ExistMyAnswer(context.Background(), me.ID, "2024-03-10")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ExistMyAnswer(context.Background(), me.ID, "2024-03-11")
	require.NoError(t, err)
	assert.False(t, ok)
}
