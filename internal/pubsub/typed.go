package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
)

// Event binds a topic to its payload type.
type Event[T any] struct {
	name string
}

// NewEvent declares a typed topic.
func NewEvent[T any](name string) Event[T] {
	return Event[T]{name: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string { return e.name }

// Publish encodes payload as JSON and sends it on the event's topic.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], actor string, payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", event.name, err)
	}
	return p.Publish(ctx, Message{Topic: event.name, Actor: actor, Payload: data})
}

// Subscribe decodes every message of the event's topic before calling fn.
// Undecodable messages are rejected.
func Subscribe[T any](ctx context.Context, s Subscriber, event Event[T], fn func(ctx context.Context, actor string, payload T) error) error {
	return s.Subscribe(ctx, event.name, func(ctx context.Context, msg Message) error {
		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return fmt.Errorf("decode %s: %w", event.name, err)
		}
		return fn(ctx, msg.Actor, payload)
	})
}
