// Package components holds the small building blocks shared by the console
// pages: toasts, the detail modal, toggles, and form fields.
package components

import (
	"github.com/nfrund/hireboard/internal/notify"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Toast appends n to the page's toast stack out of band, so it can ride
// along with any fragment response.
func Toast(n notify.Notice) g.Node {
	if n.Text == "" {
		return nil
	}
	return h.Div(
		hx.SwapOOB("beforeend:#toasts"),
		h.Div(
			h.Class("toast toast-"+string(n.Level)),
			g.Attr("role", "status"),
			g.Text(n.Text),
		),
	)
}
