// file: internals/features/notifications/service/notifier.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"moodlight_backend/internals/features/notifications/model"
	"moodlight_backend/internals/features/notifications/repository"
	"moodlight_backend/internals/infra/events"
)

// PushSender delivers a push message to a device token.
type PushSender interface {
	Send(ctx context.Context, token, title, body string) error
}

// LogSender only logs the push it would deliver.
type LogSender struct{}

func (LogSender) Send(_ context.Context, token, title, body string) error {
	zap.L().Info("📨 push",
		zap.String("token_suffix", tokenSuffix(token)),
		zap.String("title", title),
		zap.String("body", body),
	)
	return nil
}

func tokenSuffix(token string) string {
	if len(token) <= 6 {
		return token
	}
	return token[len(token)-6:]
}

type Notifier struct {
	DB     *gorm.DB
	Sender PushSender
}

func NewNotifier(db *gorm.DB, sender PushSender) *Notifier {
	if sender == nil {
		sender = LogSender{}
	}
	return &Notifier{DB: db, Sender: sender}
}

func (n *Notifier) HandleAnswerLiked(ctx context.Context, ev events.AnswerLikedEvent) error {
	actor := repository.FindNickname(ctx, n.DB, ev.LikedBy)
	msg := fmt.Sprintf("%s liked your answer.", displayName(actor))
	return n.notify(ctx, ev.AnswerUserID, ev.LikedBy, model.TypeAnswerLiked, ev.AnswerID, msg)
}

func (n *Notifier) HandleAnswerCommented(ctx context.Context, ev events.AnswerCommentedEvent) error {
	actor := repository.FindNickname(ctx, n.DB, ev.CommentedBy)
	msg := fmt.Sprintf("%s commented: %s", displayName(actor), ev.Contents)
	return n.notify(ctx, ev.AnswerUserID, ev.CommentedBy, model.TypeAnswerCommented, ev.AnswerID, msg)
}

func displayName(nickname string) string {
	if nickname == "" {
		return "Someone"
	}
	return nickname
}

// notify stores the inbox entry, then pushes if the owner opted in and has a token.
func (n *Notifier) notify(ctx context.Context, owner, actor uuid.UUID, typ string, answerID uint, msg string) error {
	if owner == actor {
		return nil
	}

	target, err := repository.FindPushTarget(ctx, n.DB, owner)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("load push target: %w", err)
	}

	row := model.NotificationModel{
		UserID:   owner,
		ActorID:  actor,
		Type:     typ,
		AnswerID: answerID,
		Message:  msg,
	}
	if err := repository.Create(ctx, n.DB, &row); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}

	if !target.UsePushMessage || target.FirebaseToken == nil || *target.FirebaseToken == "" {
		return nil
	}
	if err := n.Sender.Send(ctx, *target.FirebaseToken, "moodlight", msg); err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	return repository.MarkPushed(ctx, n.DB, row.ID)
}
