package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const (
	metaActor = "actor"
	metaTopic = "topic"
)

// Bus implements Publisher and Subscriber on watermill's GoChannel.
type Bus struct {
	pub    message.Publisher
	sub    message.Subscriber
	logger *slog.Logger
}

// NewBus creates an in-memory bus. Each subscriber gets its own buffer of
// the given size; publishing never blocks on a slow subscriber beyond it.
func NewBus(logger *slog.Logger, buffer int64) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	ch := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: buffer},
		watermill.NewStdLogger(false, false),
	)
	return &Bus{pub: ch, sub: ch, logger: logger}
}

func toWatermill(msg Message) *message.Message {
	wm := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wm.Metadata.Set(k, v)
	}
	wm.Metadata.Set(metaActor, msg.Actor)
	wm.Metadata.Set(metaTopic, msg.Topic)
	return wm
}

func fromWatermill(wm *message.Message) Message {
	meta := make(map[string]string, len(wm.Metadata))
	for k, v := range wm.Metadata {
		if k != metaActor && k != metaTopic {
			meta[k] = v
		}
	}
	return Message{
		Topic:    wm.Metadata.Get(metaTopic),
		Actor:    wm.Metadata.Get(metaActor),
		Payload:  wm.Payload,
		Metadata: meta,
	}
}

func (b *Bus) Publish(_ context.Context, msg Message) error {
	return b.pub.Publish(msg.Topic, toWatermill(msg))
}

func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wm := range messages {
			if err := handler(ctx, fromWatermill(wm)); err != nil {
				b.logger.Error("handle bus message", "topic", topic, "msg_id", wm.UUID, "error", err)
				wm.Nack()
				continue
			}
			wm.Ack()
		}
		b.logger.Debug("subscription ended", "topic", topic)
	}()
	return nil
}

// Close stops every subscription.
func (b *Bus) Close() error {
	return b.sub.Close()
}
