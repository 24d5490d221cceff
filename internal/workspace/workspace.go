// Package workspace tracks the open views of every signed-in admin and tears
// them down when the session ends or goes idle.
package workspace

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nfrund/hireboard/internal/viewstate"
)

// DefaultIdle is how long a workspace survives without a request.
const DefaultIdle = 30 * time.Minute

type closer interface {
	Close()
}

// Workspace holds the views of one admin session.
type Workspace struct {
	mu       sync.Mutex
	views    map[string]closer
	lastSeen time.Time
	closed   bool
}

func (w *Workspace) touch(now time.Time) {
	w.mu.Lock()
	w.lastSeen = now
	w.mu.Unlock()
}

func (w *Workspace) idleSince(cutoff time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSeen.Before(cutoff)
}

func (w *Workspace) teardown() int {
	w.mu.Lock()
	views := w.views
	w.views = nil
	w.closed = true
	w.mu.Unlock()
	for _, v := range views {
		v.Close()
	}
	return len(views)
}

// View returns the view registered under name, creating it with build on
// first use. A view of a different row type under the same name is replaced.
func View[R any](w *Workspace, name string, build func() *viewstate.View[R]) *viewstate.View[R] {
	w.mu.Lock()
	defer w.mu.Unlock()
	if v, ok := w.views[name].(*viewstate.View[R]); ok && !v.Closed() {
		return v
	}
	v := build()
	if w.closed {
		// The session ended while the request was running; hand out a view
		// that is already torn down so its results are dropped.
		v.Close()
		return v
	}
	if w.views == nil {
		w.views = make(map[string]closer)
	}
	if old, ok := w.views[name]; ok {
		old.Close()
	}
	w.views[name] = v
	return v
}

// Option configures a Registry.
type Option func(*Registry)

// WithIdle sets how long an unused workspace is kept.
func WithIdle(d time.Duration) Option {
	return func(r *Registry) { r.idle = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// Registry maps session ids to workspaces.
type Registry struct {
	mu     sync.Mutex
	spaces map[string]*Workspace
	idle   time.Duration
	now    func() time.Time
	logger *slog.Logger
}

func NewRegistry(logger *slog.Logger, opts ...Option) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		spaces: make(map[string]*Workspace),
		idle:   DefaultIdle,
		now:    time.Now,
		logger: logger.With("component", "workspace"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the workspace of sid, creating it if needed, and marks it used.
func (r *Registry) Get(sid string) *Workspace {
	r.mu.Lock()
	w, ok := r.spaces[sid]
	if !ok {
		w = &Workspace{}
		r.spaces[sid] = w
	}
	r.mu.Unlock()
	w.touch(r.now())
	return w
}

// Len returns the number of live workspaces.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.spaces)
}

// Teardown closes every view of sid and forgets the workspace.
func (r *Registry) Teardown(sid string) {
	r.mu.Lock()
	w, ok := r.spaces[sid]
	delete(r.spaces, sid)
	r.mu.Unlock()
	if !ok {
		return
	}
	n := w.teardown()
	r.logger.Debug("workspace torn down", "views", n)
}

// Sweep tears down workspaces idle for longer than the configured period.
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.idle)
	var stale []string
	r.mu.Lock()
	for sid, w := range r.spaces {
		if w.idleSince(cutoff) {
			stale = append(stale, sid)
		}
	}
	r.mu.Unlock()
	for _, sid := range stale {
		r.Teardown(sid)
	}
	if len(stale) > 0 {
		r.logger.Info("evicted idle workspaces", "count", len(stale))
	}
	return len(stale)
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close tears down every workspace.
func (r *Registry) Close() {
	r.mu.Lock()
	sids := make([]string, 0, len(r.spaces))
	for sid := range r.spaces {
		sids = append(sids, sid)
	}
	r.mu.Unlock()
	for _, sid := range sids {
		r.Teardown(sid)
	}
}
