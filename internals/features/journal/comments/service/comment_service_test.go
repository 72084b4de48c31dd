package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodlight_backend/internals/constants"
	"moodlight_backend/internals/databases/dbtest"
	answerModel "moodlight_backend/internals/features/journal/answers/model"
	answerRepo "moodlight_backend/internals/features/journal/answers/repository"
	"moodlight_backend/internals/features/journal/comments/dto"
	"moodlight_backend/internals/features/journal/comments/repository"
	"moodlight_backend/internals/features/journal/comments/service"
	"moodlight_backend/internals/infra/events"
)

type fakePublisher struct {
	mu       sync.Mutex
	subjects []string
}

func (p *fakePublisher) Publish(subject string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return nil
}

func TestCreateComment(t *testing.T) {
	db := dbtest.Open(t)
	owner := dbtest.SeedUser(t, db, "owner")
	guest := dbtest.SeedUser(t, db, "guest")
	q := dbtest.SeedQuestion(t, db, constants.MoodSad, true, "2024-03-10")
	open := dbtest.SeedAnswer(t, db, owner.ID, q.ID, false)
	hidden := dbtest.SeedAnswer(t, db, owner.ID, q.ID, true)
	closed := dbtest.SeedAnswer(t, db, owner.ID, q.ID, false)
	require.NoError(t, db.Model(&answerModel.AnswerModel{}).Where("id = ?", closed.ID).Update("allow_comment", false).Error)

	pub := &fakePublisher{}
	svc := service.NewCommentService(db, pub)
	ctx := context.Background()

	c, err := svc.CreateComment(ctx, guest.ID, dto.CreateCommentRequest{AnswerID: open.ID, Contents: "you got this"})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, []string{events.SubjectAnswerCommented}, pub.subjects)

	_, err = svc.CreateComment(ctx, owner.ID, dto.CreateCommentRequest{AnswerID: open.ID, Contents: "thanks"})
	require.NoError(t, err)
	assert.Len(t, pub.subjects, 1, "commenting on your own answer is not announced")

	_, err = svc.CreateComment(ctx, guest.ID, dto.CreateCommentRequest{AnswerID: hidden.ID, Contents: "peek"})
	assert.ErrorIs(t, err, service.ErrAnswerPrivate)

	_, err = svc.CreateComment(ctx, owner.ID, dto.CreateCommentRequest{AnswerID: hidden.ID, Contents: "note to self"})
	assert.NoError(t, err)

	_, err = svc.CreateComment(ctx, guest.ID, dto.CreateCommentRequest{AnswerID: closed.ID, Contents: "hi"})
	assert.ErrorIs(t, err, service.ErrCommentNotAllowed)

	_, err = svc.CreateComment(ctx, guest.ID, dto.CreateCommentRequest{AnswerID: 404, Contents: "hi"})
	assert.ErrorIs(t, err, answerRepo.ErrAnswerNotFound)
}

func TestFindAndCountComments(t *testing.T) {
	db := dbtest.Open(t)
	owner := dbtest.SeedUser(t, db, "owner")
	guest := dbtest.SeedUser(t, db, "guest")
	q := dbtest.SeedQuestion(t, db, constants.MoodHappy, true, "2024-03-10")
	a := dbtest.SeedAnswer(t, db, owner.ID, q.ID, false)
	svc := service.NewCommentService(db, nil)
	ctx := context.Background()

	var ids []uint
	for _, text := range []string{"one", "two", "three"} {
		c, err := svc.CreateComment(ctx, guest.ID, dto.CreateCommentRequest{AnswerID: a.ID, Contents: text})
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	rows, total, err := svc.FindComments(ctx, owner.ID, a.ID, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 2)
	assert.Equal(t, ids[2], rows[0].ID)
	assert.Equal(t, "guest", rows[0].Nickname)

	n, err := svc.CountComments(ctx, guest.ID, a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestUpdateAndDeleteComment_OwnerOnly(t *testing.T) {
	db := dbtest.Open(t)
	author := dbtest.SeedUser(t, db, "author")
	other := dbtest.SeedUser(t, db, "other")
	q := dbtest.SeedQuestion(t, db, constants.MoodAngry, true, "2024-03-10")
	a := dbtest.SeedAnswer(t, db, other.ID, q.ID, false)
	svc := service.NewCommentService(db, nil)
	ctx := context.Background()

	c, err := svc.CreateComment(ctx, author.ID, dto.CreateCommentRequest{AnswerID: a.ID, Contents: "first"})
	require.NoError(t, err)

	_, err = svc.UpdateComment(ctx, other.ID, dto.UpdateCommentRequest{ID: c.ID, Contents: "hijack"})
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)

	got, err := svc.UpdateComment(ctx, author.ID, dto.UpdateCommentRequest{ID: c.ID, Contents: "second"})
	require.NoError(t, err)
	assert.Equal(t, "second", got.Contents)

	assert.ErrorIs(t, svc.DeleteComment(ctx, other.ID, c.ID), repository.ErrCommentNotFound)
	require.NoError(t, svc.DeleteComment(ctx, author.ID, c.ID))
	_, err = repository.FindByID(ctx, db, c.ID)
	assert.ErrorIs(t, err, repository.ErrCommentNotFound)
}
