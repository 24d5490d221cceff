package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hireboard/internal/apiclient"
	"github.com/nfrund/hireboard/internal/listing"
	"github.com/nfrund/hireboard/internal/notify"
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/internal/table"
	"github.com/nfrund/hireboard/internal/uploads"
	"github.com/nfrund/hireboard/internal/viewstate"
	"github.com/nfrund/hireboard/web/src/templates/components"
	"github.com/nfrund/hireboard/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

const categoriesTitle = "Work Categories"

var errImageRequired = errors.New("image is required")

// CategoryHandler manages work categories and their subcategories. The
// category list is paginated by the API.
type CategoryHandler struct {
	*Console
	stager *uploads.Stager
}

func NewCategoryHandler(con *Console, stager *uploads.Stager) *CategoryHandler {
	return &CategoryHandler{Console: con, stager: stager}
}

func (h *CategoryHandler) view(c echo.Context) (*viewstate.View[resources.Category], table.Spec[resources.Category]) {
	spec := pages.CategoryTable()
	v := listView(h.Console, c, "categories", viewstate.Options[resources.Category]{
		Name:    categoriesTitle,
		Columns: spec.Columns,
		ID:      func(cat resources.Category) string { return cat.ID },
		Source: func(ctx context.Context, q listing.Query) (listing.Page[resources.Category], error) {
			return resources.CategoryPage(ctx, h.API, q)
		},
		ServerPaged: true,
	})
	return v, spec
}

func (h *CategoryHandler) List(c echo.Context) error {
	v, spec := h.view(c)
	if err := mount(c, v); err != nil {
		return err
	}
	return page(c, categoriesTitle, pages.CategoriesPath,
		pages.CategoryForm(),
		pages.Section(pages.CategoriesSection, pages.Table(spec, v.Snapshot())),
	)
}

func (h *CategoryHandler) Table(c echo.Context) error {
	v, spec := h.view(c)
	return serveTable(c, v, spec)
}

// section answers a category form with the refreshed table.
func section(c echo.Context, v *viewstate.View[resources.Category], spec table.Spec[resources.Category], extra ...g.Node) error {
	return fragment(c, append([]g.Node{pages.Table(spec, v.Snapshot())}, extra...)...)
}

func (h *CategoryHandler) rejected(text string) g.Node {
	return components.Toast(notify.Failed(categoriesTitle, text))
}

// image stages the form's image and opens it for forwarding. Without a file
// and with required unset it returns a nil upload.
func (h *CategoryHandler) image(c echo.Context, required bool) (*apiclient.Upload, func(), error) {
	noop := func() {}
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		if required {
			return nil, noop, errImageRequired
		}
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}
	ctx := c.Request().Context()
	st, err := h.stager.Stage(ctx, fh)
	if err != nil {
		return nil, noop, err
	}
	up, release, err := h.stager.Forward(ctx, st, "image")
	if err != nil {
		return nil, noop, err
	}
	return &up, release, nil
}

func (h *CategoryHandler) uploadMessage(err error) string {
	switch {
	case errors.Is(err, errImageRequired):
		return "Image is required."
	case errors.Is(err, uploads.ErrNotImage):
		return "Please choose an image file."
	case errors.Is(err, uploads.ErrTooLarge):
		return "Images must be at most " + h.stager.Limit() + "."
	default:
		return "Could not read the uploaded image."
	}
}

// Create adds a category and re-lists the current page.
func (h *CategoryHandler) Create(c echo.Context) error {
	v, spec := h.view(c)
	var req NameRequest
	if err := bind(c, &req); err != nil {
		return section(c, v, spec, h.rejected(invalid(err)))
	}
	img, release, err := h.image(c, true)
	if err != nil {
		return section(c, v, spec, h.rejected(h.uploadMessage(err)))
	}
	defer release()

	n, err := v.Mutate(c.Request().Context(), viewstate.Mutation[resources.Category]{
		ID:      "new-category",
		Success: "Category created successfully!",
		Failure: "Failed to create category",
		Call: func(ctx context.Context) (viewstate.Change[resources.Category], error) {
			if err := resources.CreateCategory(ctx, h.API, req.Name, *img); err != nil {
				return viewstate.Change[resources.Category]{}, err
			}
			return viewstate.Change[resources.Category]{Reload: true}, nil
		},
	})
	if settle(err) != nil {
		return err
	}
	return section(c, v, spec, components.Toast(refreshed(n, err)))
}

// Editor opens the edit modal with the category's subcategories.
func (h *CategoryHandler) Editor(c echo.Context) error {
	v, _ := h.view(c)
	id := c.Param("id")
	cat, ok := v.Select(id)
	if !ok {
		return gone(c, categoriesTitle)
	}
	subs, err := resources.Subcategories(c.Request().Context(), h.API, id)
	if settle(err) != nil {
		return err
	}
	return fragment(c, pages.CategoryEditor(cat, subs, err))
}

func (h *CategoryHandler) CloseEditor(c echo.Context) error {
	v, _ := h.view(c)
	v.CloseDetail()
	return fragment(c, components.ClosedModal())
}

// Update renames a category and optionally replaces its image.
func (h *CategoryHandler) Update(c echo.Context) error {
	v, spec := h.view(c)
	id := c.Param("id")
	if _, ok := v.Row(id); !ok {
		return gone(c, categoriesTitle)
	}
	var req NameRequest
	if err := bind(c, &req); err != nil {
		return section(c, v, spec, h.rejected(invalid(err)))
	}
	img, release, err := h.image(c, false)
	if err != nil {
		return section(c, v, spec, h.rejected(h.uploadMessage(err)))
	}
	defer release()

	n, err := v.Mutate(c.Request().Context(), viewstate.Mutation[resources.Category]{
		ID:      id,
		Success: "Category updated successfully!",
		Failure: "Failed to update category",
		Call: func(ctx context.Context) (viewstate.Change[resources.Category], error) {
			if err := resources.UpdateCategory(ctx, h.API, id, req.Name, img); err != nil {
				return viewstate.Change[resources.Category]{}, err
			}
			return viewstate.Change[resources.Category]{Reload: true}, nil
		},
	})
	if settle(err) != nil {
		return err
	}
	if n.Level != notify.Success {
		return section(c, v, spec, components.Toast(n))
	}
	v.CloseDetail()
	return section(c, v, spec, components.Toast(refreshed(n, err)), components.CloseModal())
}

// Delete removes a category.
func (h *CategoryHandler) Delete(c echo.Context) error {
	v, spec := h.view(c)
	id := c.Param("id")
	if _, ok := v.Row(id); !ok {
		return gone(c, categoriesTitle)
	}
	n, err := v.Mutate(c.Request().Context(), viewstate.Mutation[resources.Category]{
		ID:      id,
		Success: "Category deleted successfully!",
		Failure: "Failed to delete category",
		Call: func(ctx context.Context) (viewstate.Change[resources.Category], error) {
			if err := resources.DeleteCategory(ctx, h.API, id); err != nil {
				return viewstate.Change[resources.Category]{}, err
			}
			return viewstate.Change[resources.Category]{Remove: true}, nil
		},
	})
	if settle(err) != nil {
		return err
	}
	return section(c, v, spec, components.Toast(refreshed(n, err)))
}

// CreateSubcategory adds a subcategory from the edit modal.
func (h *CategoryHandler) CreateSubcategory(c echo.Context) error {
	category := c.Param("id")
	return h.subcategory(c, "new-subcategory:"+category, true,
		"Subcategory created successfully!", "Failed to create subcategory",
		func(ctx context.Context, name string, img *apiclient.Upload) error {
			return resources.CreateSubcategory(ctx, h.API, category, name, img)
		})
}

func (h *CategoryHandler) UpdateSubcategory(c echo.Context) error {
	sid := c.Param("sid")
	return h.subcategory(c, sid, true,
		"Subcategory updated successfully!", "Failed to update subcategory",
		func(ctx context.Context, name string, img *apiclient.Upload) error {
			return resources.UpdateSubcategory(ctx, h.API, sid, name, img)
		})
}

func (h *CategoryHandler) DeleteSubcategory(c echo.Context) error {
	sid := c.Param("sid")
	return h.subcategory(c, sid, false,
		"Subcategory deleted successfully!", "Failed to delete subcategory",
		func(ctx context.Context, _ string, _ *apiclient.Upload) error {
			return resources.DeleteSubcategory(ctx, h.API, sid)
		})
}

// subcategory runs one subcategory write, re-lists the subcategories and
// patches the category's count. On failure nothing is swapped and only the
// notice is shown.
func (h *CategoryHandler) subcategory(
	c echo.Context,
	id string,
	withForm bool,
	success, failure string,
	op func(ctx context.Context, name string, img *apiclient.Upload) error,
) error {
	v, spec := h.view(c)
	category := c.Param("id")
	if _, ok := v.Row(category); !ok {
		return gone(c, categoriesTitle)
	}

	var (
		req     NameRequest
		img     *apiclient.Upload
		release = func() {}
	)
	if withForm {
		if err := bind(c, &req); err != nil {
			c.Response().Header().Set("HX-Reswap", "none")
			return fragment(c, h.rejected(invalid(err)))
		}
		var err error
		if img, release, err = h.image(c, false); err != nil {
			c.Response().Header().Set("HX-Reswap", "none")
			return fragment(c, h.rejected(h.uploadMessage(err)))
		}
	}
	defer release()

	var (
		subs    []resources.Subcategory
		listErr error
	)
	n, err := v.Mutate(c.Request().Context(), viewstate.Mutation[resources.Category]{
		ID:      id,
		Row:     category,
		Success: success,
		Failure: failure,
		Call: func(ctx context.Context) (viewstate.Change[resources.Category], error) {
			if err := op(ctx, req.Name, img); err != nil {
				return viewstate.Change[resources.Category]{}, err
			}
			subs, listErr = resources.Subcategories(ctx, h.API, category)
			if listErr != nil {
				return viewstate.Change[resources.Category]{}, nil
			}
			count := len(subs)
			return viewstate.Change[resources.Category]{Patch: func(cat *resources.Category) { cat.Subcategories = count }}, nil
		},
	})
	if settle(err) != nil {
		return err
	}
	if settle(listErr) != nil {
		return listErr
	}
	if err != nil {
		c.Response().Header().Set("HX-Reswap", "none")
		return fragment(c, components.Toast(n))
	}
	return fragment(c,
		pages.Subcategories(category, subs, listErr),
		pages.SectionOOB(pages.CategoriesSection, pages.Table(spec, v.Snapshot())),
		components.Toast(n),
	)
}
