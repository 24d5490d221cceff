package mutation

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/nfrund/hireboard/internal/domain"
	"github.com/nfrund/hireboard/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	notices []notify.Notice
}

func (r *recorder) Notify(_ context.Context, n notify.Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
}

func TestInFlight(t *testing.T) {
	var s InFlight
	assert.True(t, s.Acquire("a"))
	assert.False(t, s.Acquire("a"))
	assert.True(t, s.Acquire("b"))
	assert.True(t, s.Busy("a"))
	s.Release("a")
	assert.False(t, s.Busy("a"))
	assert.True(t, s.Acquire("a"))
}

func TestDispatchSuccess(t *testing.T) {
	rec := &recorder{}
	d := NewDispatcher(rec)

	n, err := d.Dispatch(context.Background(), Request{
		ID: "u1", View: "users",
		Call:    func(context.Context) error { return nil },
		Success: "User status updated successfully!",
	})

	require.NoError(t, err)
	assert.Equal(t, notify.Success, n.Level)
	assert.Equal(t, "User status updated successfully!", n.Text)
	assert.Len(t, rec.notices, 1)
	assert.False(t, d.Busy("u1"))
}

func TestDispatchFailureUsesServerMessage(t *testing.T) {
	rec := &recorder{}
	d := NewDispatcher(rec)

	n, err := d.Dispatch(context.Background(), Request{
		ID:      "u1",
		Call:    func(context.Context) error { return &domain.APIError{Status: 400, Message: "User not found"} },
		Failure: "Failed to update user status",
	})
	require.Error(t, err)
	assert.Equal(t, notify.Error, n.Level)
	assert.Equal(t, "User not found", n.Text)

	n, _ = d.Dispatch(context.Background(), Request{
		ID:      "u1",
		Call:    func(context.Context) error { return errors.New("connection reset") },
		Failure: "Failed to update user status",
	})
	assert.Equal(t, "Failed to update user status", n.Text)
	assert.Len(t, rec.notices, 2)
}

func TestDispatchAuthFailureIsSilent(t *testing.T) {
	rec := &recorder{}
	d := NewDispatcher(rec)

	_, err := d.Dispatch(context.Background(), Request{
		ID:   "u1",
		Call: func(context.Context) error { return domain.ErrUnauthorized },
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, rec.notices)
}

func TestDispatchAtMostOneInFlightPerID(t *testing.T) {
	d := NewDispatcher(nil)
	release := make(chan struct{})
	started := make(chan struct{})
	var calls int32

	done := make(chan error)
	go func() {
		_, err := d.Dispatch(context.Background(), Request{ID: "x", Call: func(context.Context) error {
			atomic.AddInt32(&calls, 1)
			close(started)
			<-release
			return nil
		}})
		done <- err
	}()
	<-started

	_, err := d.Dispatch(context.Background(), Request{ID: "x", Call: func(context.Context) error {
		atomic.AddInt32(&calls, 1)
		return nil
	}})
	assert.ErrorIs(t, err, ErrBusy)

	// A different row is independent.
	_, err = d.Dispatch(context.Background(), Request{ID: "y", Call: func(context.Context) error { return nil }})
	assert.NoError(t, err)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}
