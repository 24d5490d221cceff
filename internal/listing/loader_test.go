package listing

import (
	"context"
	"net/url"
	"testing"

	"github.com/nfrund/hireboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type fakeGetter struct {
	body  string
	err   error
	calls int
	query url.Values
}

func (f *fakeGetter) Get(ctx context.Context, path string, q url.Values) (gjson.Result, error) {
	f.calls++
	f.query = q
	if f.err != nil {
		return gjson.Result{}, f.err
	}
	return gjson.Parse(f.body), nil
}

type nameRow struct {
	ID   string
	Name string
}

func nameLoader(g Getter) Loader[nameRow] {
	return Loader[nameRow]{
		Client:   g,
		Endpoint: "api/things",
		Key:      "data",
		Map: func(item gjson.Result) nameRow {
			return nameRow{ID: Str(item, "_id", ""), Name: Str(item, "name", NA)}
		},
	}
}

func TestLoadMapsRows(t *testing.T) {
	g := &fakeGetter{body: `{"data":[{"_id":"1","name":"Plumbing"},{"_id":"2"}]}`}

	page, err := nameLoader(g).Load(context.Background(), Query{})

	require.NoError(t, err)
	assert.Equal(t, 1, g.calls)
	assert.Nil(t, g.query)
	assert.Equal(t, []nameRow{{"1", "Plumbing"}, {"2", NA}}, page.Rows)
	assert.Equal(t, 2, page.Total)
	assert.True(t, page.Exact)
}

func TestLoadBadShape(t *testing.T) {
	for name, body := range map[string]string{
		"missing key":  `{"message":"ok"}`,
		"object value": `{"data":{"_id":"1"}}`,
		"null value":   `{"data":null}`,
		"not json":     ``,
	} {
		t.Run(name, func(t *testing.T) {
			page, err := nameLoader(&fakeGetter{body: body}).Load(context.Background(), Query{})
			assert.ErrorIs(t, err, domain.ErrBadShape)
			assert.Empty(t, page.Rows)
		})
	}
}

func TestLoadPropagatesAuthErrors(t *testing.T) {
	_, err := nameLoader(&fakeGetter{err: domain.ErrUnauthorized}).Load(context.Background(), Query{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoadPagedUsesExplicitTotal(t *testing.T) {
	g := &fakeGetter{body: `{"data":[{"_id":"1"}],"total":23}`}

	page, err := nameLoader(g).Load(context.Background(), Query{Page: 3, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, "3", g.query.Get("page"))
	assert.Equal(t, "10", g.query.Get("limit"))
	assert.Equal(t, 23, page.Total)
	assert.True(t, page.Exact)
}

func TestLoadPagedWithoutTotalIsInexact(t *testing.T) {
	g := &fakeGetter{body: `{"data":[{"_id":"1"},{"_id":"2"}]}`}

	page, err := nameLoader(g).Load(context.Background(), Query{Page: 2, Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 12, page.Total)
	assert.False(t, page.Exact)
}

func TestObject(t *testing.T) {
	obj, err := Object(context.Background(), &fakeGetter{body: `{"data":{"totalUsers":4}}`}, "api/count", "data")
	require.NoError(t, err)
	assert.Equal(t, int64(4), obj.Get("totalUsers").Int())

	_, err = Object(context.Background(), &fakeGetter{body: `{"data":[]}`}, "api/count", "data")
	assert.ErrorIs(t, err, domain.ErrBadShape)
}
