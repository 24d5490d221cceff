package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/internal/table"
	"github.com/nfrund/hireboard/internal/viewstate"
	"github.com/nfrund/hireboard/web/src/templates/components"
	"github.com/nfrund/hireboard/web/src/templates/pages"
)

// AccountHandler serves the users and service provider screens.
type AccountHandler struct {
	*Console
	kind pages.AccountKind
	load func(resources.API) viewstate.Source[resources.Account]
}

// NewUsersHandler serves /admin/users.
func NewUsersHandler(con *Console) *AccountHandler {
	return &AccountHandler{Console: con, kind: pages.Users, load: func(api resources.API) viewstate.Source[resources.Account] {
		return loader(resources.Users(api))
	}}
}

// NewProvidersHandler serves /admin/service-providers.
func NewProvidersHandler(con *Console) *AccountHandler {
	return &AccountHandler{Console: con, kind: pages.Providers, load: func(api resources.API) viewstate.Source[resources.Account] {
		return loader(resources.Providers(api))
	}}
}

func (h *AccountHandler) view(c echo.Context) (*viewstate.View[resources.Account], table.Spec[resources.Account]) {
	v := listView(h.Console, c, h.kind.Slug, viewstate.Options[resources.Account]{
		Name:    h.kind.Title,
		Columns: pages.AccountTable(h.kind, nil).Columns,
		ID:      func(a resources.Account) string { return a.ID },
		Source:  h.load(h.API),
	})
	return v, pages.AccountTable(h.kind, v.Busy)
}

// List renders the screen with a fresh load.
func (h *AccountHandler) List(c echo.Context) error {
	v, spec := h.view(c)
	if err := mount(c, v); err != nil {
		return err
	}
	return page(c, h.kind.Title, h.kind.Path(), pages.Table(spec, v.Snapshot()))
}

// Table re-renders the table for a page or sort change.
func (h *AccountHandler) Table(c echo.Context) error {
	v, spec := h.view(c)
	return serveTable(c, v, spec)
}

// Detail opens the modal of one account.
func (h *AccountHandler) Detail(c echo.Context) error {
	v, _ := h.view(c)
	a, ok := v.Select(c.Param("id"))
	if !ok {
		return gone(c, h.kind.Title)
	}
	return fragment(c, pages.AccountDetail(h.kind, a))
}

// CloseDetail closes the modal.
func (h *AccountHandler) CloseDetail(c echo.Context) error {
	v, _ := h.view(c)
	v.CloseDetail()
	return fragment(c, components.ClosedModal())
}

// SetActive blocks or unblocks an account.
func (h *AccountHandler) SetActive(c echo.Context) error {
	return h.toggle(c, func(ctx context.Context, id string, on bool) error {
		return resources.SetActive(ctx, h.API, id, on)
	}, func(a *resources.Account, on bool) { a.Active = on },
		"User status updated successfully!", "Failed to update user status")
}

// SetVerified marks a provider verified or not.
func (h *AccountHandler) SetVerified(c echo.Context) error {
	return h.toggle(c, func(ctx context.Context, id string, on bool) error {
		return resources.SetVerified(ctx, h.API, id, on)
	}, func(a *resources.Account, on bool) { a.Verified = on },
		"User verification status updated successfully!", "Failed to update user verification status")
}

func (h *AccountHandler) toggle(
	c echo.Context,
	call func(ctx context.Context, id string, on bool) error,
	patch func(a *resources.Account, on bool),
	success, failure string,
) error {
	v, spec := h.view(c)
	id := c.Param("id")
	if _, ok := v.Row(id); !ok {
		return gone(c, h.kind.Title)
	}
	var req ToggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid toggle value")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, invalid(err))
	}
	on, _ := strconv.ParseBool(req.Value)

	n, err := v.Mutate(c.Request().Context(), viewstate.Mutation[resources.Account]{
		ID:      id,
		Success: success,
		Failure: failure,
		Call: func(ctx context.Context) (viewstate.Change[resources.Account], error) {
			if err := call(ctx, id, on); err != nil {
				return viewstate.Change[resources.Account]{}, err
			}
			return viewstate.Change[resources.Account]{Patch: func(a *resources.Account) { patch(a, on) }}, nil
		},
	})
	if settle(err) != nil {
		return err
	}
	row, ok := v.Row(id)
	if !ok {
		return gone(c, h.kind.Title)
	}
	return fragment(c, table.RenderRow(spec, row, v.Index(id)), components.Toast(n))
}

// Slug is the route segment of the screen.
func (h *AccountHandler) Slug() string { return h.kind.Slug }
