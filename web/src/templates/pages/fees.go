package pages

import (
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/internal/table"
	"github.com/nfrund/hireboard/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

const (
	FeesPath    = "/admin/platform-fees"
	FeesSection = "fees-list"
)

func FeeTable() table.Spec[resources.Fee] {
	kind := func(f resources.Fee) string { return f.Type }
	return table.Spec[resources.Fee]{
		ID:    "fees-table",
		RowID: kind,
		URL:   FeesPath + "/table",
		Empty: "No platform fees configured.",
		Columns: []table.Column[resources.Fee]{
			{Key: "sno", Header: "S.No", Cell: table.SerialCell[resources.Fee]()},
			{Key: "type", Header: "Hiring Type", Cell: table.TextCell(kind), Compare: table.ByText(kind)},
			{
				Key:     "fee",
				Header:  "Fee",
				Cell:    table.TextCell(func(f resources.Fee) string { return components.Money(f.Fee) }),
				Compare: table.ByNumber(func(f resources.Fee) float64 { return f.Fee }),
			},
		},
	}
}

// FeeForm creates or replaces the fee of one hiring type.
func FeeForm() g.Node {
	return h.Form(h.Class("inline-form"),
		hx.Post(FeesPath),
		hx.Target("#"+FeesSection),
		hx.Swap("innerHTML"),
		g.Attr("hx-disabled-elt", "find button"),
		components.Select("Hiring Type", "type", "", resources.HiringTypes),
		h.Label(h.Class("field"),
			h.Span(g.Text("Fee (₹)")),
			h.Input(h.Type("number"), h.Name("fee"), g.Attr("min", "0"), g.Attr("step", "0.01"), h.Required()),
		),
		components.Submit("Save Fee"),
	)
}
