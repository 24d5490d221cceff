// Package mutation serializes state-changing API calls per record and turns
// their outcome into notices.
package mutation

import (
	"context"
	"errors"
	"sync"

	"github.com/nfrund/hireboard/internal/domain"
	"github.com/nfrund/hireboard/internal/notify"
)

// ErrBusy is returned when a mutation for the same id is still in flight.
var ErrBusy = errors.New("a change for this record is already in progress")

// InFlight is the set of record ids with an unresolved mutation.
type InFlight struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// Acquire marks id busy. It reports false if id already was.
func (s *InFlight) Acquire(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids == nil {
		s.ids = make(map[string]struct{})
	}
	if _, busy := s.ids[id]; busy {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Release clears the busy mark of id.
func (s *InFlight) Release(id string) {
	s.mu.Lock()
	delete(s.ids, id)
	s.mu.Unlock()
}

// Busy reports whether id has a mutation in flight.
func (s *InFlight) Busy(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, busy := s.ids[id]
	return busy
}

// Request describes one write.
type Request struct {
	// ID is the record the write targets. Writes that create a record use
	// a synthetic id such as "new" so that double submits are still caught.
	ID   string
	View string
	Call func(ctx context.Context) error
	// Success is the notice text on success.
	Success string
	// Failure is used when the API gives no message of its own.
	Failure string
}

// Dispatcher runs Requests with at most one in flight per id.
type Dispatcher struct {
	inflight InFlight
	notifier notify.Notifier
}

// NewDispatcher creates a Dispatcher emitting notices to n.
func NewDispatcher(n notify.Notifier) *Dispatcher {
	if n == nil {
		n = notify.Discard
	}
	return &Dispatcher{notifier: n}
}

// Busy reports whether id has a mutation in flight.
func (d *Dispatcher) Busy(id string) bool { return d.inflight.Busy(id) }

// Dispatch runs req.Call unless req.ID is already busy, in which case no
// call is made and ErrBusy is returned. Authorization failures are returned
// without a notice; the session guard reports those.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (notify.Notice, error) {
	if !d.inflight.Acquire(req.ID) {
		n := notify.Warned(req.View, "An update for this record is already in progress.")
		return n, ErrBusy
	}
	defer d.inflight.Release(req.ID)

	if err := req.Call(ctx); err != nil {
		if domain.IsAuth(err) {
			return notify.Notice{}, err
		}
		n := notify.Failed(req.View, domain.Message(err, req.Failure))
		d.notifier.Notify(ctx, n)
		return n, err
	}

	n := notify.Succeeded(req.View, req.Success)
	d.notifier.Notify(ctx, n)
	return n, nil
}
