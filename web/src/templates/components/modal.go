package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ModalTarget is the selector of the page's modal slot.
const ModalTarget = "#modal"

// Modal renders an open dialog into the modal slot. closeURL receives a
// DELETE when the dialog is dismissed.
func Modal(title, closeURL string, body ...g.Node) g.Node {
	closeAttrs := g.Group{
		hx.Delete(closeURL),
		hx.Target(ModalTarget),
		hx.Swap("outerHTML"),
	}
	return h.Div(
		h.ID("modal"),
		h.Div(h.Class("modal-backdrop"), closeAttrs),
		h.Div(
			h.Class("modal"),
			g.Attr("role", "dialog"),
			g.Attr("aria-modal", "true"),
			h.Header(
				h.H2(g.Text(title)),
				h.Button(h.Type("button"), h.Class("close"), g.Attr("aria-label", "Close"), closeAttrs, g.Text("×")),
			),
			h.Div(h.Class("modal-body"), g.Group(body)),
		),
	)
}

// ClosedModal is the empty modal slot.
func ClosedModal() g.Node {
	return h.Div(h.ID("modal"))
}

// CloseModal empties the modal slot out of band.
func CloseModal() g.Node {
	return h.Div(h.ID("modal"), hx.SwapOOB("true"))
}

// Field is one label/value line of a detail view.
type Field struct {
	Label string
	Value string
}

// Fields renders a definition list.
func Fields(fields ...Field) g.Node {
	return h.Dl(h.Class("fields"),
		g.Map(fields, func(f Field) g.Node {
			return g.Group{h.Dt(g.Text(f.Label)), h.Dd(g.Text(f.Value))}
		}),
	)
}

// Gallery renders image thumbnails.
func Gallery(alt string, srcs []string) g.Node {
	if len(srcs) == 0 {
		return nil
	}
	return h.Div(h.Class("gallery"),
		g.Map(srcs, func(src string) g.Node {
			return h.Img(h.Src(src), h.Alt(alt), g.Attr("loading", "lazy"))
		}),
	)
}

// YesNo renders a boolean for detail views.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
