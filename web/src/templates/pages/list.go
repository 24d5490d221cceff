// Package pages renders the console screens.
package pages

import (
	"github.com/nfrund/hireboard/internal/table"
	"github.com/nfrund/hireboard/internal/viewstate"
	"github.com/nfrund/hireboard/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Table renders the visible page of snap, or an error panel with a retry
// button when the last load failed.
func Table[R any](spec table.Spec[R], snap viewstate.Snapshot[R]) g.Node {
	if snap.Status == viewstate.Failed {
		st := snap.State
		return components.ErrorPanel(spec.ID, components.ErrorText(snap.Err), spec.Link(st.Pager.Page, st.Sort))
	}
	return table.Render(spec, snap.Rows, snap.State)
}

// Section wraps a table in a swappable container so forms can replace it
// without touching the rest of the page.
func Section(id string, body ...g.Node) g.Node {
	return h.Section(h.ID(id), g.Group(body))
}

// SectionOOB replaces the section id out of band.
func SectionOOB(id string, body ...g.Node) g.Node {
	return h.Section(h.ID(id), hx.SwapOOB("true"), g.Group(body))
}
