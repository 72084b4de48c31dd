package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/databases/dbtest"
	answerModel "moodlight_backend/internals/features/journal/answers/model"
	answerService "moodlight_backend/internals/features/journal/answers/service"
	commentModel "moodlight_backend/internals/features/journal/comments/model"
	userModel "moodlight_backend/internals/features/users/user/model"
	"moodlight_backend/internals/features/users/user/repository"
)

func TestDeleteCascade_KeepsOtherCountersConsistent(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	leaving := dbtest.SeedUser(t, db, "leaving")
	staying := dbtest.SeedUser(t, db, "staying")
	q := dbtest.SeedQuestion(t, db, constants.MoodSad, true, "2024-03-10")

	theirs := dbtest.SeedAnswer(t, db, staying.ID, q.ID, false)
	mine := dbtest.SeedAnswer(t, db, leaving.ID, q.ID, false)

	likes := answerService.NewLikeService(db, nil, false)
	_, err := likes.AddLike(ctx, leaving.ID, theirs.ID)
	require.NoError(t, err)
	_, err = likes.AddLike(ctx, staying.ID, theirs.ID)
	require.NoError(t, err)
	_, err = likes.AddLike(ctx, staying.ID, mine.ID)
	require.NoError(t, err)
	require.NoError(t, db.Create(&commentModel.CommentModel{Contents: "hi", AnswerID: theirs.ID, UserID: leaving.ID}).Error)
	require.NoError(t, db.Create(&commentModel.CommentModel{Contents: "yo", AnswerID: mine.ID, UserID: staying.ID}).Error)

	require.NoError(t, repository.DeleteCascade(ctx, db, leaving.ID))

	got := dbtest.Reload(t, db, theirs.ID)
	assert.Equal(t, 1, got.Likes)
	assert.EqualValues(t, 1, dbtest.CountLikeRows(t, db, theirs.ID))

	var n int64
	require.NoError(t, db.Model(&answerModel.AnswerModel{}).Where("user_id = ?", leaving.ID).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&commentModel.CommentModel{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&answerModel.AnswerLikeModel{}).Where("answer_id = ?", mine.ID).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&userModel.UserModel{}).Where("id = ?", leaving.ID).Count(&n).Error)
	assert.Zero(t, n)
}

func TestExistsAndNicknameTakenByOther(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	u := dbtest.SeedUser(t, db, "mina")

	ok, err := repository.Exists(ctx, db, "mina@example.com", "")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repository.Exists(ctx, db, "", "nobody")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repository.Exists(ctx, db, "", "")
	require.NoError(t, err)
	assert.False(t, ok)

	taken, err := repository.NicknameTakenByOther(ctx, db, "mina", u.ID)
	require.NoError(t, err)
	assert.False(t, taken, "own nickname is not a conflict")

	other := dbtest.SeedUser(t, db, "jun")
	taken, err = repository.NicknameTakenByOther(ctx, db, "mina", other.ID)
	require.NoError(t, err)
	assert.True(t, taken)
}
