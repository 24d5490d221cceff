package pubsub

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct {
	Text string `json:"text"`
}

func TestTypedRoundTripOverBus(t *testing.T) {
	bus := NewBus(nil, 8)
	defer bus.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event := NewEvent[ping]("admin.ping")
	var (
		mu     sync.Mutex
		actors []string
		texts  []string
	)
	require.NoError(t, Subscribe(ctx, bus, event, func(_ context.Context, actor string, p ping) error {
		mu.Lock()
		defer mu.Unlock()
		actors = append(actors, actor)
		texts = append(texts, p.Text)
		return nil
	}))

	require.NoError(t, Publish(ctx, bus, event, "sid-1", ping{Text: "hello"}))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(texts) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"sid-1"}, actors)
	assert.Equal(t, []string{"hello"}, texts)
}

func TestMetadataSurvivesBridge(t *testing.T) {
	msg := fromWatermill(toWatermill(Message{
		Topic:    "t",
		Actor:    "a",
		Payload:  []byte("x"),
		Metadata: map[string]string{"view": "users"},
	}))
	assert.Equal(t, "t", msg.Topic)
	assert.Equal(t, "a", msg.Actor)
	assert.Equal(t, map[string]string{"view": "users"}, msg.Metadata)
}
