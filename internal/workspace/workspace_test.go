package workspace

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/hireboard/internal/listing"
	"github.com/nfrund/hireboard/internal/viewstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct{ ID string }

func build() *viewstate.View[row] {
	return viewstate.New(viewstate.Options[row]{
		Name: "users",
		ID:   func(r row) string { return r.ID },
		Source: func(context.Context, listing.Query) (listing.Page[row], error) {
			return listing.Page[row]{Rows: []row{{ID: "a"}}, Total: 1, Exact: true}, nil
		},
	})
}

func TestViewIsReusedWithinWorkspace(t *testing.T) {
	r := NewRegistry(nil)
	w := r.Get("sid")

	v1 := View(w, "users", build)
	v2 := View(r.Get("sid"), "users", build)
	assert.Same(t, v1, v2)

	other := View(r.Get("other"), "users", build)
	assert.NotSame(t, v1, other)
	assert.Equal(t, 2, r.Len())
}

func TestTeardownClosesViews(t *testing.T) {
	r := NewRegistry(nil)
	w := r.Get("sid")
	v := View(w, "users", build)
	require.NoError(t, v.Load(context.Background()))

	r.Teardown("sid")

	assert.True(t, v.Closed())
	assert.Empty(t, v.Snapshot().Rows)
	assert.Equal(t, 0, r.Len())

	// A request still holding the old workspace gets a dead view.
	late := View(w, "users", build)
	assert.True(t, late.Closed())
}

func TestSweepEvictsIdleWorkspaces(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(nil, WithIdle(time.Minute), WithClock(func() time.Time { return now }))

	stale := View(r.Get("stale"), "users", build)
	now = now.Add(50 * time.Second)
	fresh := View(r.Get("fresh"), "users", build)
	now = now.Add(20 * time.Second)

	assert.Equal(t, 1, r.Sweep())
	assert.True(t, stale.Closed())
	assert.False(t, fresh.Closed())
	assert.Equal(t, 1, r.Len())
}
