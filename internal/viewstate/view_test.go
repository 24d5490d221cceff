package viewstate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/nfrund/hireboard/internal/domain"
	"github.com/nfrund/hireboard/internal/listing"
	"github.com/nfrund/hireboard/internal/mutation"
	"github.com/nfrund/hireboard/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type provider struct {
	ID       string
	Name     string
	Verified bool
}

func providers(n int) []provider {
	out := make([]provider, n)
	for i := range out {
		out[i] = provider{ID: fmt.Sprintf("p%02d", i+1), Name: fmt.Sprintf("Provider %02d", n-i)}
	}
	return out
}

func staticSource(rows []provider) Source[provider] {
	return func(context.Context, listing.Query) (listing.Page[provider], error) {
		return listing.Page[provider]{Rows: rows, Total: len(rows), Exact: true}, nil
	}
}

func newView(src Source[provider]) *View[provider] {
	return New(Options[provider]{
		Name: "service-providers",
		Columns: []table.Column[provider]{
			{Key: "serial", Header: "S.No"},
			{Key: "name", Header: "Name", Compare: table.ByText(func(p provider) string { return p.Name })},
		},
		ID:       func(p provider) string { return p.ID },
		Source:   src,
		PageSize: 10,
	})
}

func ids(ps []provider) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func TestLoadTransitions(t *testing.T) {
	v := newView(staticSource(providers(23)))
	assert.Equal(t, Idle, v.Snapshot().Status)

	require.NoError(t, v.Load(context.Background()))
	snap := v.Snapshot()
	assert.Equal(t, Ready, snap.Status)
	assert.Len(t, snap.Rows, 10)
	assert.Equal(t, 3, snap.State.Pager.TotalPages())
}

func TestLoadFailureRecordsError(t *testing.T) {
	calls := 0
	v := newView(func(context.Context, listing.Query) (listing.Page[provider], error) {
		calls++
		if calls == 1 {
			return listing.Page[provider]{Rows: providers(3), Total: 3, Exact: true}, nil
		}
		return listing.Page[provider]{}, &domain.APIError{Status: 500, Message: "boom"}
	})
	require.NoError(t, v.Load(context.Background()))
	require.Error(t, v.Load(context.Background()))

	snap := v.Snapshot()
	assert.Equal(t, Failed, snap.Status)
	assert.Len(t, snap.Rows, 3)
	assert.EqualError(t, snap.Err, "boom")
}

func TestGoToClampsAndSlices(t *testing.T) {
	v := newView(staticSource(providers(23)))
	require.NoError(t, v.Load(context.Background()))

	require.NoError(t, v.GoTo(context.Background(), 3))
	snap := v.Snapshot()
	assert.Len(t, snap.Rows, 3)
	assert.Equal(t, []string{"p21", "p22", "p23"}, ids(snap.Rows))

	require.NoError(t, v.GoTo(context.Background(), 4))
	assert.Equal(t, 3, v.Snapshot().State.Pager.Page)
}

func TestSortToggleIsCyclic(t *testing.T) {
	v := newView(staticSource(providers(5)))
	require.NoError(t, v.Load(context.Background()))
	original := ids(v.Snapshot().Rows)

	v.ToggleSort("name")
	assert.Equal(t, "p05", v.Snapshot().Rows[0].ID)
	v.ToggleSort("name")
	assert.Equal(t, "p01", v.Snapshot().Rows[0].ID)
	v.ToggleSort("name")
	assert.Equal(t, original, ids(v.Snapshot().Rows))

	// Non-sortable columns are ignored.
	assert.Equal(t, table.Sort{}, v.ToggleSort("serial"))
}

func TestMutatePatchesOnSuccess(t *testing.T) {
	v := newView(staticSource(providers(3)))
	require.NoError(t, v.Load(context.Background()))

	n, err := v.Mutate(context.Background(), Mutation[provider]{
		ID:      "p02",
		Success: "Provider verified",
		Call: func(context.Context) (Change[provider], error) {
			return Change[provider]{Patch: func(p *provider) { p.Verified = true }}, nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Provider verified", n.Text)
	row, ok := v.Row("p02")
	require.True(t, ok)
	assert.True(t, row.Verified)
}

func TestMutateFailureLeavesRowsUnchanged(t *testing.T) {
	v := newView(staticSource(providers(3)))
	require.NoError(t, v.Load(context.Background()))

	_, err := v.Mutate(context.Background(), Mutation[provider]{
		ID:      "p02",
		Failure: "Failed to update verification",
		Call: func(context.Context) (Change[provider], error) {
			return Change[provider]{Patch: func(p *provider) { p.Verified = true }}, errors.New("nope")
		},
	})
	require.Error(t, err)
	row, _ := v.Row("p02")
	assert.False(t, row.Verified)
}

func TestMutateAtMostOneInFlight(t *testing.T) {
	v := newView(staticSource(providers(3)))
	require.NoError(t, v.Load(context.Background()))

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = v.Mutate(context.Background(), Mutation[provider]{ID: "p01", Call: func(context.Context) (Change[provider], error) {
			atomic.AddInt32(&calls, 1)
			close(started)
			<-release
			return Change[provider]{Patch: func(p *provider) { p.Verified = !p.Verified }}, nil
		}})
	}()
	<-started

	assert.True(t, v.Busy("p01"))
	_, err := v.Mutate(context.Background(), Mutation[provider]{ID: "p01", Call: func(context.Context) (Change[provider], error) {
		atomic.AddInt32(&calls, 1)
		return Change[provider]{}, nil
	}})
	assert.ErrorIs(t, err, mutation.ErrBusy)

	close(release)
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	row, _ := v.Row("p01")
	assert.True(t, row.Verified)
	assert.False(t, v.Busy("p01"))
}

func TestRemoveResetsToFirstPage(t *testing.T) {
	v := newView(staticSource(providers(11)))
	require.NoError(t, v.Load(context.Background()))
	require.NoError(t, v.GoTo(context.Background(), 2))
	require.Equal(t, 2, v.Snapshot().State.Pager.Page)

	_, err := v.Mutate(context.Background(), Mutation[provider]{ID: "p11", Call: func(context.Context) (Change[provider], error) {
		return Change[provider]{Remove: true}, nil
	}})
	require.NoError(t, err)

	snap := v.Snapshot()
	assert.Equal(t, 1, snap.State.Pager.Page)
	assert.Equal(t, 10, snap.State.Pager.TotalItems)
	assert.Len(t, snap.Rows, 10)
}

func TestCloseDiscardsLateLoad(t *testing.T) {
	started := make(chan struct{})
	v := newView(func(ctx context.Context, _ listing.Query) (listing.Page[provider], error) {
		close(started)
		<-ctx.Done()
		return listing.Page[provider]{Rows: providers(2), Total: 2, Exact: true}, nil
	})

	errc := make(chan error, 1)
	go func() { errc <- v.Load(context.Background()) }()
	<-started
	v.Close()

	assert.ErrorIs(t, <-errc, ErrStale)
	assert.Empty(t, v.Snapshot().Rows)
	assert.ErrorIs(t, v.Load(context.Background()), ErrClosed)
}

func TestServerPagedLoadAsksForPage(t *testing.T) {
	var got []listing.Query
	v := New(Options[provider]{
		Name:        "categories",
		ID:          func(p provider) string { return p.ID },
		ServerPaged: true,
		PageSize:    10,
		Source: func(_ context.Context, q listing.Query) (listing.Page[provider], error) {
			got = append(got, q)
			return listing.Page[provider]{Rows: providers(10), Total: 25, Exact: true}, nil
		},
	})

	require.NoError(t, v.Load(context.Background()))
	require.NoError(t, v.GoTo(context.Background(), 3))
	require.NoError(t, v.GoTo(context.Background(), 3))

	assert.Equal(t, []listing.Query{{Page: 1, Limit: 10}, {Page: 3, Limit: 10}}, got)
	assert.Equal(t, 3, v.Snapshot().State.Pager.TotalPages())
}

func TestSelectAndCloseDetail(t *testing.T) {
	v := newView(staticSource(providers(3)))
	require.NoError(t, v.Load(context.Background()))

	_, ok := v.Select("missing")
	assert.False(t, ok)
	row, ok := v.Select("p03")
	require.True(t, ok)
	assert.Equal(t, "p03", row.ID)
	assert.Equal(t, "p03", v.Snapshot().Selected)

	v.CloseDetail()
	assert.Empty(t, v.Snapshot().Selected)
}

func TestGoToLoadsOnlyWhenNotReady(t *testing.T) {
	var calls atomic.Int32
	fail := true
	v := newView(func(context.Context, listing.Query) (listing.Page[provider], error) {
		calls.Add(1)
		if fail {
			return listing.Page[provider]{}, errors.New("offline")
		}
		return listing.Page[provider]{Rows: providers(2), Total: 2, Exact: true}, nil
	})

	assert.Error(t, v.GoTo(context.Background(), 1))
	assert.Equal(t, int32(1), calls.Load())
	fail = false
	require.NoError(t, v.GoTo(context.Background(), 1))
	require.NoError(t, v.GoTo(context.Background(), 1))
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, Ready, v.Snapshot().Status)
}

// shrinking serves a server-paged collection of total items.
type shrinking struct {
	mu    sync.Mutex
	total int
	asked []int
}

func (s *shrinking) source(_ context.Context, q listing.Query) (listing.Page[provider], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asked = append(s.asked, q.Page)
	all := providers(s.total)
	start := min((q.Page-1)*q.Limit, len(all))
	end := min(start+q.Limit, len(all))
	return listing.Page[provider]{Rows: all[start:end], Total: s.total, Exact: true}, nil
}

func serverPaged(src Source[provider]) *View[provider] {
	return New(Options[provider]{
		Name:        "categories",
		ID:          func(p provider) string { return p.ID },
		ServerPaged: true,
		PageSize:    10,
		Source:      src,
	})
}

func TestServerPagedReloadFallsBackWhenPageIsGone(t *testing.T) {
	s := &shrinking{total: 25}
	v := serverPaged(s.source)
	require.NoError(t, v.Load(context.Background()))
	require.NoError(t, v.GoTo(context.Background(), 3))

	s.mu.Lock()
	s.total = 15
	s.mu.Unlock()
	require.NoError(t, v.Load(context.Background()))

	snap := v.Snapshot()
	assert.Equal(t, []int{1, 3, 3, 1}, s.asked)
	assert.Equal(t, 1, snap.State.Pager.Page)
	assert.Equal(t, 2, snap.State.Pager.TotalPages())
	assert.Len(t, snap.Rows, 10)
}

func TestGoToOnFailedViewFetchesOnce(t *testing.T) {
	s := &shrinking{total: 25}
	fail := true
	v := serverPaged(func(ctx context.Context, q listing.Query) (listing.Page[provider], error) {
		if fail {
			return listing.Page[provider]{}, errors.New("offline")
		}
		return s.source(ctx, q)
	})
	require.Error(t, v.Load(context.Background()))
	require.Equal(t, Failed, v.Snapshot().Status)

	fail = false
	require.NoError(t, v.GoTo(context.Background(), 2))

	assert.Equal(t, []int{2}, s.asked)
	assert.Equal(t, 2, v.Snapshot().State.Pager.Page)
	assert.Equal(t, Ready, v.Snapshot().Status)
}

func TestMutationPatchesTargetRow(t *testing.T) {
	v := newView(staticSource(providers(3)))
	require.NoError(t, v.Load(context.Background()))

	_, err := v.Mutate(context.Background(), Mutation[provider]{
		ID:  "review-7",
		Row: "p02",
		Call: func(context.Context) (Change[provider], error) {
			return Change[provider]{Patch: func(p *provider) { p.Verified = true }}, nil
		},
	})
	require.NoError(t, err)

	row, _ := v.Row("p02")
	assert.True(t, row.Verified)
	assert.False(t, v.Busy("review-7"))
}
