package table

import (
	"cmp"
	"strings"

	g "maragu.dev/gomponents"
)

// Column describes one table column. A column is sortable when Compare is set.
type Column[R any] struct {
	Key    string
	Header string
	// Cell renders the value of row r; index is the row's position in the
	// whole collection, starting at 0.
	Cell    func(r R, index int) g.Node
	Compare func(a, b R) int
}

// Sortable reports whether clicking the header changes the sort.
func (c Column[R]) Sortable() bool { return c.Compare != nil }

// ByText orders rows by a case-insensitive string key.
func ByText[R any](key func(R) string) func(a, b R) int {
	return func(a, b R) int {
		return strings.Compare(strings.ToLower(key(a)), strings.ToLower(key(b)))
	}
}

// ByNumber orders rows by a numeric key.
func ByNumber[R any, N cmp.Ordered](key func(R) N) func(a, b R) int {
	return func(a, b R) int { return cmp.Compare(key(a), key(b)) }
}

// ByBool orders false before true.
func ByBool[R any](key func(R) bool) func(a, b R) int {
	return func(a, b R) int {
		x, y := key(a), key(b)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	}
}

// TextCell renders a plain text column.
func TextCell[R any](value func(R) string) func(R, int) g.Node {
	return func(r R, _ int) g.Node { return g.Text(value(r)) }
}

// SerialCell renders the 1-based position of the row in the collection.
func SerialCell[R any]() func(R, int) g.Node {
	return func(_ R, index int) g.Node { return g.Textf("%d", index+1) }
}
