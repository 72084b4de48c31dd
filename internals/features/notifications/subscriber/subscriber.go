package subscriber

import (
	"context"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"moodlight_backend/internals/features/notifications/service"
	"moodlight_backend/internals/infra/events"
)

const queueGroup = "moodlight-notifications"

// Subscribe wires the notifier to the bus; each event is handled by one instance.
func Subscribe(bus *events.NatsBus, n *service.Notifier) ([]*nats.Subscription, error) {
	handlers := map[string]func(context.Context, []byte) error{
		events.SubjectAnswerLiked: func(ctx context.Context, data []byte) error {
			var ev events.AnswerLikedEvent
			if err := events.Decode(data, &ev); err != nil {
				return err
			}
			return n.HandleAnswerLiked(ctx, ev)
		},
		events.SubjectAnswerCommented: func(ctx context.Context, data []byte) error {
			var ev events.AnswerCommentedEvent
			if err := events.Decode(data, &ev); err != nil {
				return err
			}
			return n.HandleAnswerCommented(ctx, ev)
		},
	}

	subs := make([]*nats.Subscription, 0, len(handlers))
	for subject, handle := range handlers {
		subject, handle := subject, handle
		sub, err := bus.QueueSubscribe(subject, queueGroup, func(data []byte) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := handle(ctx, data); err != nil {
				zap.L().Warn("notification handler failed", zap.String("subject", subject), zap.Error(err))
			}
		})
		if err != nil {
			for _, s := range subs {
				_ = s.Unsubscribe()
			}
			return nil, err
		}
		subs = append(subs, sub)
	}
	zap.L().Info("✅ notification subscribers ready", zap.Int("count", len(subs)))
	return subs, nil
}
