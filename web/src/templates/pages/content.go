package pages

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ContentEditorID is the swappable editor block.
const ContentEditorID = "content-editor"

var previewPolicy = bluemonday.UGCPolicy()

// ContentPath is the route of an editable page.
func ContentPath(p resources.ContentPage) string { return "/admin/content/" + p.Slug }

// ContentEditor edits the stored HTML of a page and previews it sanitised.
// When loadErr is set the stored content could not be fetched.
func ContentEditor(p resources.ContentPage, content string, loadErr error) g.Node {
	if loadErr != nil {
		return components.ErrorPanel(ContentEditorID, components.ErrorText(loadErr), ContentPath(p)+"/editor")
	}
	return h.Div(h.ID(ContentEditorID), h.Class("editor"),
		h.Form(h.Class("stacked-form"),
			hx.Post(ContentPath(p)),
			hx.Target("#"+ContentEditorID),
			hx.Swap("outerHTML"),
			g.Attr("hx-disabled-elt", "find button"),
			h.Label(h.Class("field"),
				h.Span(g.Text(p.Title+" (HTML)")),
				h.Textarea(h.Name("content"), g.Attr("rows", "18"), h.Required(), g.Text(content)),
			),
			components.Submit("Save "+p.Title),
		),
		h.Section(h.Class("card preview"),
			h.H2(g.Text("Preview")),
			h.Div(h.Class("rich-text"), g.Raw(Sanitize(content))),
		),
	)
}

// Sanitize strips scripts and unsafe attributes from stored page HTML.
func Sanitize(html string) string {
	return previewPolicy.Sanitize(html)
}
