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
	CategoriesPath    = "/admin/categories"
	CategoriesSection = "categories-list"
	SubcategoryList   = "subcategories"
)

// CategoryTable describes the work category table.
func CategoryTable() table.Spec[resources.Category] {
	name := func(c resources.Category) string { return c.Name }
	return table.Spec[resources.Category]{
		ID:    "categories-table",
		RowID: func(c resources.Category) string { return c.ID },
		URL:   CategoriesPath + "/table",
		Empty: "No work categories found.",
		Columns: []table.Column[resources.Category]{
			{Key: "sno", Header: "S.No", Cell: table.SerialCell[resources.Category]()},
			{Key: "image", Header: "Image", Cell: func(c resources.Category, _ int) g.Node {
				return components.Avatar(c.Image, c.Name)
			}},
			{Key: "name", Header: "Name", Cell: table.TextCell(name), Compare: table.ByText(name)},
			{
				Key:     "subcategories",
				Header:  "Subcategories",
				Cell:    func(c resources.Category, _ int) g.Node { return g.Textf("%d", c.Subcategories) },
				Compare: table.ByNumber(func(c resources.Category) int { return c.Subcategories }),
			},
			{Key: "actions", Header: "Actions", Cell: categoryActions},
		},
	}
}

func categoryActions(c resources.Category, _ int) g.Node {
	return h.Div(h.Class("actions"),
		h.Button(h.Type("button"), h.Class("link"),
			hx.Get(CategoriesPath+"/"+c.ID),
			hx.Target(components.ModalTarget),
			hx.Swap("outerHTML"),
			g.Text("Edit"),
		),
		h.Button(h.Type("button"), h.Class("link danger"),
			hx.Delete(CategoriesPath+"/"+c.ID),
			hx.Target("#"+CategoriesSection),
			hx.Swap("innerHTML"),
			hx.Confirm("Delete "+c.Name+" and its subcategories?"),
			g.Text("Delete"),
		),
	)
}

// CategoryForm creates a new category.
func CategoryForm() g.Node {
	return h.Form(h.Class("inline-form"),
		hx.Post(CategoriesPath),
		hx.Target("#"+CategoriesSection),
		hx.Swap("innerHTML"),
		g.Attr("hx-encoding", "multipart/form-data"),
		g.Attr("hx-disabled-elt", "find button"),
		g.Attr("hx-on::after-request", "if(event.detail.successful) this.reset()"),
		components.TextField("Name", "name", "text", "", true),
		components.FileField("Image", "image", true),
		components.Submit("Add Category"),
	)
}

// CategoryEditor is the edit modal: the category form and its subcategories.
func CategoryEditor(c resources.Category, subs []resources.Subcategory, subsErr error) g.Node {
	return components.Modal("Edit "+c.Name, CategoriesPath+"/detail",
		h.Form(h.Class("stacked-form"),
			hx.Post(CategoriesPath+"/"+c.ID),
			hx.Target("#"+CategoriesSection),
			hx.Swap("innerHTML"),
			g.Attr("hx-encoding", "multipart/form-data"),
			g.Attr("hx-disabled-elt", "find button"),
			components.TextField("Name", "name", "text", c.Name, true),
			components.FileField("Replace image", "image", false),
			components.Submit("Save"),
		),
		h.H3(g.Text("Subcategories")),
		Subcategories(c.ID, subs, subsErr),
	)
}

// Subcategories is the swappable subcategory block of the edit modal.
func Subcategories(categoryID string, subs []resources.Subcategory, err error) g.Node {
	base := CategoriesPath + "/" + categoryID + "/subcategories"
	target := g.Group{hx.Target("#" + SubcategoryList), hx.Swap("outerHTML")}
	return h.Div(h.ID(SubcategoryList),
		g.If(err != nil, h.P(h.Class("error-text"), g.Text(components.ErrorText(err)))),
		g.If(err == nil && len(subs) == 0, h.P(h.Class("muted"), g.Text("No subcategories yet."))),
		h.Ul(h.Class("subcategories"), g.Map(subs, func(s resources.Subcategory) g.Node {
			return h.Li(
				components.Avatar(s.Image, s.Name),
				h.Form(h.Class("inline-form"),
					hx.Post(base+"/"+s.ID),
					target,
					g.Attr("hx-encoding", "multipart/form-data"),
					g.Attr("hx-disabled-elt", "find button"),
					h.Input(h.Type("text"), h.Name("name"), h.Value(s.Name), h.Required()),
					h.Input(h.Type("file"), h.Name("image"), g.Attr("accept", "image/*")),
					h.Button(h.Type("submit"), g.Text("Update")),
					h.Button(h.Type("button"), h.Class("danger"),
						hx.Delete(base+"/"+s.ID),
						target,
						hx.Confirm("Delete "+s.Name+"?"),
						g.Text("Delete"),
					),
				),
			)
		})),
		h.Form(h.Class("inline-form"),
			hx.Post(base),
			target,
			g.Attr("hx-encoding", "multipart/form-data"),
			g.Attr("hx-disabled-elt", "find button"),
			components.TextField("New subcategory", "name", "text", "", true),
			components.FileField("Image", "image", false),
			components.Submit("Add"),
		),
	)
}
