package notify

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/nfrund/hireboard/internal/pubsub"
)

// Notices is the bus topic every toast is published on.
var Notices = pubsub.NewEvent[Notice]("admin.notices")

// Publisher forwards notices to the bus. Publish failures are logged and
// otherwise ignored; the toast still reaches the acting admin.
type Publisher struct {
	bus    pubsub.Publisher
	logger *slog.Logger
}

func NewPublisher(bus pubsub.Publisher, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{bus: bus, logger: logger}
}

func (p *Publisher) Notify(ctx context.Context, n Notice) {
	if err := pubsub.Publish(ctx, p.bus, Notices, "", n); err != nil {
		p.logger.WarnContext(ctx, "publish notice", "error", err)
	}
}

// Feed keeps the most recent notices for the dashboard activity panel.
type Feed struct {
	size int

	mu      sync.RWMutex
	notices []Notice
}

// NewFeed creates a Feed holding at most size notices.
func NewFeed(size int) *Feed {
	if size < 1 {
		size = 1
	}
	return &Feed{size: size}
}

// Run subscribes the feed to the bus until ctx is done.
func (f *Feed) Run(ctx context.Context, bus pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, bus, Notices, func(_ context.Context, _ string, n Notice) error {
		f.add(n)
		return nil
	})
}

func (f *Feed) add(n Notice) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, n)
	if over := len(f.notices) - f.size; over > 0 {
		f.notices = slices.Delete(f.notices, 0, over)
	}
}

// Recent returns the kept notices, newest first.
func (f *Feed) Recent() []Notice {
	f.mu.RLock()
	out := slices.Clone(f.notices)
	f.mu.RUnlock()
	slices.Reverse(out)
	return out
}
