package components

import (
	"strconv"

	"github.com/nfrund/hireboard/internal/listing"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Toggle is a switch button posting to url and swapping the row it sits in.
// A busy toggle is disabled until its mutation resolves.
type Toggle struct {
	URL      string
	RowID    string
	On       bool
	Busy     bool
	OnLabel  string
	OffLabel string
	Confirm  string
}

func (t Toggle) Node() g.Node {
	label := t.OffLabel
	if t.On {
		label = t.OnLabel
	}
	state := "off"
	if t.On {
		state = "on"
	}
	return h.Button(
		h.Type("button"),
		h.Class("toggle toggle-"+state),
		g.Attr("aria-pressed", strconv.FormatBool(t.On)),
		g.If(t.Busy, h.Disabled()),
		hx.Post(t.URL),
		g.Attr("hx-vals", `{"value":"`+strconv.FormatBool(!t.On)+`"}`),
		hx.Target("#"+t.RowID),
		hx.Swap("outerHTML"),
		g.Attr("hx-disabled-elt", "this"),
		g.If(t.Confirm != "", hx.Confirm(t.Confirm)),
		g.Text(label),
	)
}

// Badge renders a status pill.
func Badge(text string) g.Node {
	return h.Span(h.Class("badge badge-"+slug(text)), g.Text(text))
}

func slug(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			out = append(out, ch)
		case ch >= 'A' && ch <= 'Z':
			out = append(out, ch+'a'-'A')
		default:
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}
	return string(out)
}

// Avatar renders a thumbnail, or the fallback text when src is N/A.
func Avatar(src, alt string) g.Node {
	if src == "" || src == listing.NA {
		return g.Text(listing.NA)
	}
	return h.Img(h.Class("avatar"), h.Src(src), h.Alt(alt), g.Attr("loading", "lazy"))
}

// DetailButton opens a row's detail in the modal slot.
func DetailButton(url string) g.Node {
	return h.Button(
		h.Type("button"),
		h.Class("link"),
		hx.Get(url),
		hx.Target(ModalTarget),
		hx.Swap("outerHTML"),
		g.Text("View"),
	)
}

// ErrorPanel replaces a list whose load failed. The retry button reloads the
// fragment at retryURL.
func ErrorPanel(id, message, retryURL string) g.Node {
	return h.Div(
		h.ID(id),
		h.Class("error-panel"),
		g.Attr("role", "alert"),
		h.P(g.Text(message)),
		g.If(retryURL != "", h.Button(
			h.Type("button"),
			hx.Get(retryURL),
			hx.Target("#"+id),
			hx.Swap("outerHTML"),
			g.Text("Retry"),
		)),
	)
}
