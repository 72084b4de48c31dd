package events

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Publisher emits domain events. Publishing is best effort.
type Publisher interface {
	Publish(subject string, event any) error
}

type Config struct {
	URL           string
	MaxReconnects int
	ReconnectWait time.Duration
	Name          string
}

type NatsBus struct {
	conn *nats.Conn
}

func Connect(cfg Config) (*NatsBus, error) {
	if cfg.MaxReconnects == 0 {
		cfg.MaxReconnects = 10
	}
	if cfg.ReconnectWait == 0 {
		cfg.ReconnectWait = 2 * time.Second
	}

	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				zap.L().Warn("NATS disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			zap.L().Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, err
	}
	return &NatsBus{conn: conn}, nil
}

func (b *NatsBus) Publish(subject string, event any) error {
	data, err := sonic.Marshal(event)
	if err != nil {
		return err
	}
	return b.conn.Publish(subject, data)
}

// QueueSubscribe delivers each message to one member of queue.
func (b *NatsBus) QueueSubscribe(subject, queue string, handler func(data []byte)) (*nats.Subscription, error) {
	return b.conn.QueueSubscribe(subject, queue, func(msg *nats.Msg) {
		handler(msg.Data)
	})
}

func (b *NatsBus) Close() {
	if b.conn != nil {
		_ = b.conn.Drain()
	}
}

// Decode unmarshals an event payload.
func Decode(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}

// Noop is used when NATS_URL is not configured.
type Noop struct{}

func (Noop) Publish(string, any) error { return nil }
