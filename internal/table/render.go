package table

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Spec is the static description of a rendered table.
type Spec[R any] struct {
	// ID is the DOM id of the table container; htmx swaps it on page and
	// sort changes.
	ID      string
	Columns []Column[R]
	// RowID returns the DOM id suffix of a row so single rows can be swapped.
	RowID func(R) string
	// URL is the fragment endpoint that re-renders the container.
	URL   string
	Empty string
}

// State is what the presenter needs besides the rows.
type State struct {
	Pager Pager
	Sort  Sort
}

// Link builds the fragment URL for a page and sort.
func (s Spec[R]) Link(page int, sort Sort) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if p := sort.Param(); p != "" {
		q.Set("sort", p)
	}
	return s.URL + "?" + q.Encode()
}

// RowDOMID is the element id of a row.
func (s Spec[R]) RowDOMID(r R) string {
	return s.ID + "-row-" + s.RowID(r)
}

// Render draws the container with headers, the visible rows, and the pager.
// rows must already be the visible page.
func Render[R any](spec Spec[R], rows []R, st State) g.Node {
	offset := st.Pager.Offset()
	return h.Div(
		h.ID(spec.ID),
		h.Class("table-card"),
		h.Table(
			h.Class("data-table"),
			h.THead(h.Tr(g.Map(spec.Columns, func(c Column[R]) g.Node {
				return header(spec, c, st)
			}))),
			h.TBody(
				g.If(len(rows) == 0, h.Tr(h.Td(
					g.Attr("colspan", strconv.Itoa(len(spec.Columns))),
					h.Class("empty"),
					g.Text(emptyText(spec.Empty)),
				))),
				g.Group(rowNodes(spec, rows, offset)),
			),
		),
		pagination(spec, st),
	)
}

// RenderRow draws a single row, used when a mutation swaps one row in place.
func RenderRow[R any](spec Spec[R], r R, index int) g.Node {
	return h.Tr(
		h.ID(spec.RowDOMID(r)),
		g.Map(spec.Columns, func(c Column[R]) g.Node {
			return h.Td(c.Cell(r, index))
		}),
	)
}

func rowNodes[R any](spec Spec[R], rows []R, offset int) []g.Node {
	nodes := make([]g.Node, 0, len(rows))
	for i, r := range rows {
		nodes = append(nodes, RenderRow(spec, r, offset+i))
	}
	return nodes
}

func header[R any](spec Spec[R], c Column[R], st State) g.Node {
	if !c.Sortable() {
		return h.Th(g.Text(c.Header))
	}
	indicator := ""
	if st.Sort.Key == c.Key {
		switch st.Sort.Dir {
		case Ascending:
			indicator = " ▲"
		case Descending:
			indicator = " ▼"
		}
	}
	return h.Th(
		h.Class("sortable"),
		g.Attr("aria-sort", ariaSort(c.Key, st.Sort)),
		hx.Get(spec.Link(st.Pager.Page, st.Sort.Toggle(c.Key))),
		hx.Target("#"+spec.ID),
		hx.Swap("outerHTML"),
		g.Text(c.Header+indicator),
	)
}

func ariaSort(key string, s Sort) string {
	if s.Key != key {
		return "none"
	}
	switch s.Dir {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "none"
	}
}

func pagination[R any](spec Spec[R], st State) g.Node {
	p := st.Pager
	total := p.TotalPages()
	pageButton := func(label string, page int, enabled, current bool) g.Node {
		return h.Button(
			h.Type("button"),
			g.If(current, h.Class("current")),
			g.If(!enabled || current, h.Disabled()),
			g.If(enabled && !current, g.Group{
				hx.Get(spec.Link(page, st.Sort)),
				hx.Target("#" + spec.ID),
				hx.Swap("outerHTML"),
			}),
			g.Text(label),
		)
	}

	numbers := make([]g.Node, 0, total)
	for i := 1; i <= total; i++ {
		numbers = append(numbers, pageButton(strconv.Itoa(i), i, true, i == p.Page))
	}

	return h.Nav(
		h.Class("pagination"),
		h.Span(g.Textf("Page %d of %d", p.Page, total)),
		pageButton("Previous", p.Page-1, p.HasPrev(), false),
		g.Group(numbers),
		pageButton("Next", p.Page+1, p.HasNext(), false),
	)
}

func emptyText(s string) string {
	if s == "" {
		return "No records found."
	}
	return s
}
