// Package pubsub is the in-process event bus of the console.
package pubsub

import (
	"context"
)

// Message is one event on the bus.
type Message struct {
	Topic string
	// Actor is the session id of the admin whose action produced the event.
	Actor    string
	Payload  []byte
	Metadata map[string]string
}

// Handler processes a received message.
type Handler func(ctx context.Context, msg Message) error

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber delivers messages of a topic to a handler until ctx is done.
// Subscribe returns once the subscription is active.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
