// Package layouts holds the page shells every console screen renders into.
package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nfrund/hireboard/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// NavItem is one sidebar link.
type NavItem struct {
	Label string
	Href  string
}

// Nav is the console menu in display order.
var Nav = []NavItem{
	{"Dashboard", "/admin/dashboard"},
	{"Users", "/admin/users"},
	{"Service Providers", "/admin/service-providers"},
	{"Work Categories", "/admin/categories"},
	{"Platform Fees", "/admin/platform-fees"},
	{"Direct Hiring", "/admin/direct-orders"},
	{"Emergency Hiring", "/admin/emergency-orders"},
	{"About Us", "/admin/content/about"},
	{"Terms & Conditions", "/admin/content/terms"},
	{"Privacy Policy", "/admin/content/privacy"},
}

// Page describes one console page.
type Page struct {
	Title   string
	Active  string
	Email   string
	Flashes view.FlashData
}

// Base wraps body in the signed-in console shell.
func Base(p Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(p.Title,
			h.Div(h.Class("shell"),
				sidebar(p),
				h.Main(h.Class("content"),
					h.H1(g.Text(p.Title)),
					flashes(p.Flashes),
					view.Node(ctx, body),
				),
			),
		).Render(w)
	})
}

// Bare is the shell for signed-out pages.
func Bare(title string, fl view.FlashData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return document(title,
			h.Main(h.Class("bare"),
				flashes(fl),
				view.Node(ctx, body),
			),
		).Render(w)
	})
}

func document(title string, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:    CalculateTitle(title),
		Language: "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/css/app.css")),
			h.Script(h.Src(htmxSrc), h.Defer()),
		},
		Body: []g.Node{
			g.Group(body),
			h.Div(h.ID("toasts"), h.Class("toasts"), g.Attr("aria-live", "polite")),
			h.Div(h.ID("modal")),
		},
	})
}

func sidebar(p Page) g.Node {
	return h.Aside(h.Class("sidebar"),
		h.Div(h.Class("brand"), g.Text("Hireboard")),
		h.Nav(
			h.Ul(g.Map(Nav, func(item NavItem) g.Node {
				return h.Li(h.A(
					h.Href(item.Href),
					c.Classes{"active": item.Href == p.Active},
					g.Text(item.Label),
				))
			})),
		),
		h.Div(h.Class("account"),
			g.If(p.Email != "", h.Span(g.Text(p.Email))),
			h.Form(
				h.Method("post"), h.Action("/signout"),
				hx.Boost("false"),
				h.Button(h.Type("submit"), h.Class("link"), g.Text("Sign out")),
			),
		),
	)
}

func flashes(f view.FlashData) g.Node {
	if f.Empty() {
		return nil
	}
	return h.Div(h.Class("flashes"),
		g.Map(f.Success, func(m string) g.Node { return h.P(h.Class("flash flash-success"), g.Text(m)) }),
		g.Map(f.Error, func(m string) g.Node { return h.P(h.Class("flash flash-error"), g.Text(m)) }),
	)
}
