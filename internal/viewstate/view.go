// Package viewstate holds the per-admin state of one list screen: the last
// loaded rows, pagination, sort, in-flight mutations and the open detail.
package viewstate

import (
	"context"
	"errors"
	"sync"

	"github.com/nfrund/hireboard/internal/listing"
	"github.com/nfrund/hireboard/internal/mutation"
	"github.com/nfrund/hireboard/internal/notify"
	"github.com/nfrund/hireboard/internal/table"
)

// Status is the load state of a view.
type Status int

const (
	Idle Status = iota
	Loading
	Ready
	Failed
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "error"
	default:
		return "idle"
	}
}

// ErrStale is returned when a result arrived after the view was closed or
// superseded by a newer load. The result has been dropped.
var ErrStale = errors.New("view result discarded")

// ErrClosed is returned by operations on a torn-down view.
var ErrClosed = errors.New("view closed")

// Source fetches one page (or, for client-paged views, everything).
type Source[R any] func(ctx context.Context, q listing.Query) (listing.Page[R], error)

// Options configures a View.
type Options[R any] struct {
	// Name identifies the screen in notices.
	Name    string
	Columns []table.Column[R]
	ID      func(R) string
	Source  Source[R]
	// PageSize defaults to 10.
	PageSize int
	// ServerPaged views ask the API for one page at a time. Otherwise the
	// whole collection is loaded once and paginated in memory.
	ServerPaged bool
	Notifier    notify.Notifier
}

// Change is what a successful mutation does to the loaded rows.
type Change[R any] struct {
	// Patch edits the row in place.
	Patch func(*R)
	// Remove drops the row.
	Remove bool
	// Reload re-fetches the current page instead of patching.
	Reload bool
}

// Snapshot is a consistent copy of the view for rendering.
type Snapshot[R any] struct {
	Status Status
	Err    error
	// Rows are the visible rows, sorted.
	Rows  []R
	State table.State
	// Selected is the id of the row whose detail is open, if any.
	Selected string
}

// View is safe for concurrent use.
type View[R any] struct {
	opts       Options[R]
	dispatcher *mutation.Dispatcher

	life   context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	status   Status
	err      error
	rows     []R
	pager    table.Pager
	sort     table.Sort
	selected string
	gen      uint64
}

// New creates an idle view. Nothing is fetched until Load.
func New[R any](opts Options[R]) *View[R] {
	if opts.PageSize < 1 {
		opts.PageSize = 10
	}
	life, cancel := context.WithCancel(context.Background())
	return &View[R]{
		opts:       opts,
		dispatcher: mutation.NewDispatcher(opts.Notifier),
		life:       life,
		cancel:     cancel,
		pager:      table.Pager{Page: 1, PageSize: opts.PageSize},
	}
}

// scope ties ctx to the lifetime of the view.
func (v *View[R]) scope(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(v.life, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// Closed reports whether Close was called.
func (v *View[R]) Closed() bool { return v.life.Err() != nil }

// Close tears the view down. Pending loads and mutations are cancelled and
// their results discarded.
func (v *View[R]) Close() {
	v.cancel()
	v.mu.Lock()
	v.rows = nil
	v.selected = ""
	v.gen++
	v.mu.Unlock()
}

// Load fetches the current page. Rows from an earlier load stay visible
// while it runs. A failed load keeps them too and records the error. When a
// server-paged collection shrank below the current page, the view falls
// back to page 1 and fetches it.
func (v *View[R]) Load(ctx context.Context) error {
	refetch, err := v.fetch(ctx)
	if err != nil || !refetch {
		return err
	}
	_, err = v.fetch(ctx)
	return err
}

// fetch runs one Source call and reports whether the page it asked for no
// longer exists.
func (v *View[R]) fetch(ctx context.Context) (bool, error) {
	if v.Closed() {
		return false, ErrClosed
	}
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.status = Loading
	var q listing.Query
	if v.opts.ServerPaged {
		q = listing.Query{Page: max(v.pager.Page, 1), Limit: v.pager.PageSize}
	}
	v.mu.Unlock()

	ctx, done := v.scope(ctx)
	defer done()
	page, err := v.opts.Source(ctx, q)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen || v.Closed() {
		return false, ErrStale
	}
	if err != nil {
		v.status = Failed
		v.err = err
		return false, err
	}
	v.status = Ready
	v.err = nil
	v.rows = page.Rows
	v.pager.TotalItems = page.Total
	if v.selected != "" {
		if _, ok := v.find(v.selected); !ok {
			v.selected = ""
		}
	}
	reconciled := v.pager.Reconcile()
	if !v.opts.ServerPaged {
		v.pager = reconciled
		return false, nil
	}
	if reconciled.Page != v.pager.Page {
		v.pager = reconciled
		return true, nil
	}
	return false, nil
}

// GoTo moves to page and makes sure it is loaded, with a single fetch.
// A ready view clamps page to the known range and only server-paged views
// fetch, and only when the page changed. A view without a good result
// loads first; its totals are unknown, so the page is reconciled after.
func (v *View[R]) GoTo(ctx context.Context, page int) error {
	v.mu.Lock()
	if v.status != Ready {
		if v.opts.ServerPaged {
			v.pager.Page = max(page, 1)
		}
		v.mu.Unlock()
		if err := v.Load(ctx); err != nil {
			return err
		}
		if !v.opts.ServerPaged {
			v.mu.Lock()
			v.pager.Page = v.pager.Clamp(page)
			v.mu.Unlock()
		}
		return nil
	}
	next := v.pager.Clamp(page)
	changed := next != v.pager.Page
	v.pager.Page = next
	fetch := v.opts.ServerPaged && changed
	v.mu.Unlock()
	if fetch {
		return v.Load(ctx)
	}
	return nil
}

// ToggleSort applies one click on the header of column key.
func (v *View[R]) ToggleSort(key string) table.Sort {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.sortable(key) {
		return v.sort
	}
	v.sort = v.sort.Toggle(key)
	return v.sort
}

// SetSort replaces the sort state. Unknown columns reset it.
func (v *View[R]) SetSort(s table.Sort) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if s.Dir == table.Unsorted || !v.sortable(s.Key) {
		s = table.Sort{}
	}
	v.sort = s
}

func (v *View[R]) sortable(key string) bool {
	for _, c := range v.opts.Columns {
		if c.Key == key {
			return c.Sortable()
		}
	}
	return false
}

// Snapshot returns the visible page.
func (v *View[R]) Snapshot() Snapshot[R] {
	v.mu.Lock()
	defer v.mu.Unlock()
	var visible []R
	if v.opts.ServerPaged {
		visible = table.SortRows(v.rows, v.opts.Columns, v.sort)
	} else {
		visible = table.Slice(table.SortRows(v.rows, v.opts.Columns, v.sort), v.pager)
	}
	return Snapshot[R]{
		Status:   v.status,
		Err:      v.err,
		Rows:     visible,
		State:    table.State{Pager: v.pager, Sort: v.sort},
		Selected: v.selected,
	}
}

// Row looks up a loaded row by id.
func (v *View[R]) Row(id string) (R, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	i, ok := v.find(id)
	if !ok {
		var zero R
		return zero, false
	}
	return v.rows[i], true
}

// Index is the zero-based position of row id in the current ordering of
// the whole collection, or -1.
func (v *View[R]) Index(id string) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	sorted := table.SortRows(v.rows, v.opts.Columns, v.sort)
	for i, r := range sorted {
		if v.opts.ID(r) == id {
			if v.opts.ServerPaged {
				return v.pager.Offset() + i
			}
			return i
		}
	}
	return -1
}

func (v *View[R]) find(id string) (int, bool) {
	for i, r := range v.rows {
		if v.opts.ID(r) == id {
			return i, true
		}
	}
	return 0, false
}

// Select opens the detail of row id. Unknown ids are ignored.
func (v *View[R]) Select(id string) (R, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	i, ok := v.find(id)
	if !ok {
		var zero R
		return zero, false
	}
	v.selected = id
	return v.rows[i], true
}

// CloseDetail clears the selection.
func (v *View[R]) CloseDetail() {
	v.mu.Lock()
	v.selected = ""
	v.mu.Unlock()
}

// Busy reports whether row id has a mutation in flight.
func (v *View[R]) Busy(id string) bool { return v.dispatcher.Busy(id) }

// Mutation describes one write against a row of the view.
type Mutation[R any] struct {
	// ID keys the in-flight guard.
	ID string
	// Row is the row the change applies to. Defaults to ID.
	Row     string
	Success string
	Failure string
	Call    func(ctx context.Context) (Change[R], error)
}

// Mutate runs m through the dispatcher. On success the change is applied to
// the loaded rows; on failure they are left untouched.
func (v *View[R]) Mutate(ctx context.Context, m Mutation[R]) (notify.Notice, error) {
	if v.Closed() {
		return notify.Notice{}, ErrClosed
	}
	ctx, done := v.scope(ctx)
	defer done()

	var change Change[R]
	n, err := v.dispatcher.Dispatch(ctx, mutation.Request{
		ID:      m.ID,
		View:    v.opts.Name,
		Success: m.Success,
		Failure: m.Failure,
		Call: func(ctx context.Context) error {
			var err error
			change, err = m.Call(ctx)
			return err
		},
	})
	if err != nil {
		return n, err
	}
	if v.Closed() {
		return n, ErrStale
	}
	if change.Reload {
		return n, v.reload(ctx)
	}
	row := m.Row
	if row == "" {
		row = m.ID
	}
	if v.apply(row, change) {
		return n, v.reload(ctx)
	}
	return n, nil
}

// reload refreshes the rows after a successful write. A failure here is not
// the write's failure, so it is recorded on the view only.
func (v *View[R]) reload(ctx context.Context) error {
	if err := v.Load(ctx); err != nil && !errors.Is(err, ErrStale) {
		return err
	}
	return nil
}

// apply reports whether a server-paged view must fetch again because the
// current page disappeared.
func (v *View[R]) apply(id string, change Change[R]) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	i, ok := v.find(id)
	if !ok {
		return false
	}
	switch {
	case change.Remove:
		v.rows = append(v.rows[:i:i], v.rows[i+1:]...)
		if v.selected == id {
			v.selected = ""
		}
		v.pager.TotalItems = max(v.pager.TotalItems-1, 0)
		if v.opts.ServerPaged {
			before := v.pager.Page
			v.pager = v.pager.Reconcile()
			return before != v.pager.Page || len(v.rows) == 0 && v.pager.TotalItems > 0
		}
		v.pager.TotalItems = len(v.rows)
		v.pager = v.pager.Reconcile()
	case change.Patch != nil:
		change.Patch(&v.rows[i])
	}
	return false
}
