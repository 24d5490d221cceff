// Package listing loads collections from the marketplace API and flattens
// each item into a display row.
package listing

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nfrund/hireboard/internal/domain"
	"github.com/tidwall/gjson"
)

// Getter is the part of the API client a Loader needs.
type Getter interface {
	Get(ctx context.Context, path string, query url.Values) (gjson.Result, error)
}

// Query selects a server-side page. The zero Query loads the whole collection.
type Query struct {
	Page  int
	Limit int
}

func (q Query) paged() bool { return q.Page > 0 && q.Limit > 0 }

func (q Query) values() url.Values {
	if !q.paged() {
		return nil
	}
	return url.Values{
		"page":  {strconv.Itoa(q.Page)},
		"limit": {strconv.Itoa(q.Limit)},
	}
}

// Page is the result of one load.
type Page[R any] struct {
	Rows []R
	// Total is the number of items in the whole collection.
	Total int
	// Exact is false when a paged response carried no total; Total then only
	// counts the items known so far and no further page is assumed.
	Exact bool
}

// Loader fetches the array at Key from Endpoint and maps every item to a row.
type Loader[R any] struct {
	Client   Getter
	Endpoint string
	// Key is the gjson path of the array, for example "users" or "data".
	Key string
	// TotalKey is the gjson path of the item count. Defaults to "total".
	TotalKey string
	Map      func(item gjson.Result) R
}

// Load issues exactly one GET. Responses without an array at Key fail with
// domain.ErrBadShape and yield no rows.
func (l Loader[R]) Load(ctx context.Context, q Query) (Page[R], error) {
	body, err := l.Client.Get(ctx, l.Endpoint, q.values())
	if err != nil {
		return Page[R]{}, fmt.Errorf("load %s: %w", l.Endpoint, err)
	}

	items := body.Get(l.Key)
	if !items.IsArray() {
		return Page[R]{}, fmt.Errorf("load %s: %w: expected an array under %q", l.Endpoint, domain.ErrBadShape, l.Key)
	}

	rows := make([]R, 0, len(items.Array()))
	items.ForEach(func(_, item gjson.Result) bool {
		rows = append(rows, l.Map(item))
		return true
	})

	page := Page[R]{Rows: rows, Total: len(rows), Exact: true}
	if !q.paged() {
		return page, nil
	}

	totalKey := l.TotalKey
	if totalKey == "" {
		totalKey = "total"
	}
	if total := body.Get(totalKey); total.Type == gjson.Number && total.Int() >= 0 {
		page.Total = int(total.Int())
		return page, nil
	}
	page.Total = (q.Page-1)*q.Limit + len(rows)
	page.Exact = false
	return page, nil
}

// Object fetches a single JSON object at key from endpoint. An empty key
// selects the whole body.
func Object(ctx context.Context, client Getter, endpoint, key string) (gjson.Result, error) {
	body, err := client.Get(ctx, endpoint, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("load %s: %w", endpoint, err)
	}
	obj := body
	if key != "" {
		obj = body.Get(key)
	}
	if !obj.IsObject() {
		return gjson.Result{}, fmt.Errorf("load %s: %w: expected an object under %q", endpoint, domain.ErrBadShape, key)
	}
	return obj, nil
}
