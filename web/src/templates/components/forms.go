package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// TextField is a labelled input.
func TextField(label, name, kind, value string, required bool) g.Node {
	return h.Label(h.Class("field"),
		h.Span(g.Text(label)),
		h.Input(h.Type(kind), h.Name(name), h.Value(value), g.If(required, h.Required())),
	)
}

// FileField is a labelled image picker.
func FileField(label, name string, required bool) g.Node {
	return h.Label(h.Class("field"),
		h.Span(g.Text(label)),
		h.Input(h.Type("file"), h.Name(name), g.Attr("accept", "image/*"), g.If(required, h.Required())),
	)
}

// Select is a labelled dropdown.
func Select(label, name, selected string, options []string) g.Node {
	return h.Label(h.Class("field"),
		h.Span(g.Text(label)),
		h.Select(h.Name(name), h.Required(),
			h.Option(h.Value(""), g.Text("Select…")),
			g.Map(options, func(o string) g.Node {
				return h.Option(h.Value(o), g.If(o == selected, h.Selected()), g.Text(o))
			}),
		),
	)
}

// Submit is a form's primary button. htmx disables it while the request
// is pending.
func Submit(label string) g.Node {
	return h.Button(h.Type("submit"), h.Class("primary"), g.Text(label))
}
