package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hireboard/internal/domain"
	"github.com/nfrund/hireboard/internal/listing"
	"github.com/nfrund/hireboard/internal/middleware"
	"github.com/nfrund/hireboard/internal/notify"
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/internal/table"
	"github.com/nfrund/hireboard/internal/view"
	"github.com/nfrund/hireboard/internal/viewstate"
	"github.com/nfrund/hireboard/internal/workspace"
	"github.com/nfrund/hireboard/web/src/templates/components"
	"github.com/nfrund/hireboard/web/src/templates/layouts"
	"github.com/nfrund/hireboard/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

// Console carries what every console handler needs.
type Console struct {
	API      resources.API
	Spaces   *workspace.Registry
	Notifier notify.Notifier
	PageSize int
}

// workspace returns the signed-in admin's workspace. The Guard guarantees a
// credential on every console route.
func (con *Console) workspace(c echo.Context) *workspace.Workspace {
	cred, _ := middleware.CredentialFrom(c)
	return con.Spaces.Get(cred.SID)
}

// listView returns the admin's view called name, creating it on first use.
func listView[R any](con *Console, c echo.Context, name string, opts viewstate.Options[R]) *viewstate.View[R] {
	if opts.PageSize == 0 {
		opts.PageSize = con.PageSize
	}
	if opts.Notifier == nil {
		opts.Notifier = con.Notifier
	}
	return workspace.View(con.workspace(c), name, func() *viewstate.View[R] {
		return viewstate.New(opts)
	})
}

// loader adapts a listing.Loader to a view source.
func loader[R any](l listing.Loader[R]) viewstate.Source[R] {
	return l.Load
}

// page renders body inside the console layout.
func page(c echo.Context, title, active string, body ...g.Node) error {
	cred, _ := middleware.CredentialFrom(c)
	p := layouts.Page{
		Title:   title,
		Active:  active,
		Email:   cred.Email,
		Flashes: view.GetFlashData(c),
	}
	return c.Render(http.StatusOK, "", layouts.Base(p, view.Templ(g.Group(body))))
}

// fragment renders an htmx partial.
func fragment(c echo.Context, nodes ...g.Node) error {
	return c.Render(http.StatusOK, "", g.Group(nodes))
}

// settle separates the errors the Guard must see from those that are shown
// inline. A nil result means render the current state.
func settle(err error) error {
	if domain.IsAuth(err) {
		return err
	}
	return nil
}

// mount loads a list afresh for a full page visit.
func mount[R any](c echo.Context, v *viewstate.View[R]) error {
	v.CloseDetail()
	return settle(v.Load(c.Request().Context()))
}

// tableQuery is the state a pager or header link asks for.
type tableQuery struct {
	Page int    `query:"page"`
	Sort string `query:"sort"`
}

// serveTable answers a pager or header click with the re-rendered table.
func serveTable[R any](c echo.Context, v *viewstate.View[R], spec table.Spec[R]) error {
	q := tableQuery{Page: v.Snapshot().State.Pager.Page}
	if err := echo.QueryParamsBinder(c).Int("page", &q.Page).String("sort", &q.Sort).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	ctx := c.Request().Context()
	v.SetSort(table.ParseSort(q.Sort))
	if err := v.GoTo(ctx, q.Page); settle(err) != nil {
		return err
	}
	return fragment(c, pages.Table(spec, v.Snapshot()))
}

// refreshed downgrades the notice of a write that went through when the
// reload after it failed, so the toast does not contradict the error panel.
func refreshed(n notify.Notice, reloadErr error) notify.Notice {
	if reloadErr == nil || n.Level != notify.Success {
		return n
	}
	return notify.Warned(n.View, n.Text+" The list could not be refreshed.")
}

// gone answers a request for a row that is not loaded any more.
func gone(c echo.Context, viewName string) error {
	c.Response().Header().Set("HX-Reswap", "none")
	return fragment(c, components.Toast(notify.Warned(viewName, "This record is no longer loaded. Refresh the page.")))
}
