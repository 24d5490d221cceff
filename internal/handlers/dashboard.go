package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/hireboard/internal/notify"
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/web/src/templates/pages"
)

// DashboardHandler shows the marketplace totals.
type DashboardHandler struct {
	*Console
	feed *notify.Feed
}

func NewDashboardHandler(con *Console, feed *notify.Feed) *DashboardHandler {
	return &DashboardHandler{Console: con, feed: feed}
}

// DashboardGet loads the counters on every visit.
func (h *DashboardHandler) DashboardGet(c echo.Context) error {
	counts, err := resources.DashboardCounts(c.Request().Context(), h.API)
	if settle(err) != nil {
		return err
	}
	return page(c, "Dashboard", HomePath, pages.Dashboard(counts, err, h.feed.Recent()))
}
