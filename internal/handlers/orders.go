package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/internal/table"
	"github.com/nfrund/hireboard/internal/viewstate"
	"github.com/nfrund/hireboard/web/src/templates/components"
	"github.com/nfrund/hireboard/web/src/templates/pages"
)

const (
	directTitle    = "Direct Hiring"
	emergencyTitle = "Emergency Hiring"
)

// OrderHandler serves the read-only order screens.
type OrderHandler struct {
	*Console
}

func NewOrderHandler(con *Console) *OrderHandler {
	return &OrderHandler{Console: con}
}

func (h *OrderHandler) direct(c echo.Context) (*viewstate.View[resources.DirectOrder], table.Spec[resources.DirectOrder]) {
	spec := pages.DirectOrderTable()
	v := listView(h.Console, c, "direct-orders", viewstate.Options[resources.DirectOrder]{
		Name:    directTitle,
		Columns: spec.Columns,
		ID:      func(o resources.DirectOrder) string { return o.ID },
		Source:  loader(resources.DirectOrders(h.API)),
	})
	return v, spec
}

func (h *OrderHandler) emergency(c echo.Context) (*viewstate.View[resources.EmergencyOrder], table.Spec[resources.EmergencyOrder]) {
	spec := pages.EmergencyOrderTable()
	v := listView(h.Console, c, "emergency-orders", viewstate.Options[resources.EmergencyOrder]{
		Name:    emergencyTitle,
		Columns: spec.Columns,
		ID:      func(o resources.EmergencyOrder) string { return o.ID },
		Source:  loader(resources.EmergencyOrders(h.API)),
	})
	return v, spec
}

func (h *OrderHandler) DirectList(c echo.Context) error {
	v, spec := h.direct(c)
	if err := mount(c, v); err != nil {
		return err
	}
	return page(c, directTitle, pages.DirectOrdersPath, pages.Table(spec, v.Snapshot()))
}

func (h *OrderHandler) DirectTable(c echo.Context) error {
	v, spec := h.direct(c)
	return serveTable(c, v, spec)
}

// DirectSummary opens the modal of a loaded order.
func (h *OrderHandler) DirectSummary(c echo.Context) error {
	v, _ := h.direct(c)
	o, ok := v.Select(c.Param("id"))
	if !ok {
		return gone(c, directTitle)
	}
	return fragment(c, pages.DirectOrderModal(o))
}

func (h *OrderHandler) DirectClose(c echo.Context) error {
	v, _ := h.direct(c)
	v.CloseDetail()
	return fragment(c, components.ClosedModal())
}

// DirectDetail is the full order page with the assigned worker.
func (h *OrderHandler) DirectDetail(c echo.Context) error {
	d, err := resources.DirectOrderDetail(c.Request().Context(), h.API, c.Param("id"))
	if settle(err) != nil {
		return err
	}
	if err != nil {
		return page(c, "Order", pages.DirectOrdersPath,
			components.ErrorPanel("order-detail", components.ErrorText(err), ""))
	}
	return page(c, "Order "+d.OrderID, pages.DirectOrdersPath, pages.DirectOrderPage(d))
}

func (h *OrderHandler) EmergencyList(c echo.Context) error {
	v, spec := h.emergency(c)
	if err := mount(c, v); err != nil {
		return err
	}
	return page(c, emergencyTitle, pages.EmergencyOrdersPath, pages.Table(spec, v.Snapshot()))
}

func (h *OrderHandler) EmergencyTable(c echo.Context) error {
	v, spec := h.emergency(c)
	return serveTable(c, v, spec)
}

func (h *OrderHandler) EmergencyDetail(c echo.Context) error {
	v, _ := h.emergency(c)
	o, ok := v.Select(c.Param("id"))
	if !ok {
		return gone(c, emergencyTitle)
	}
	return fragment(c, pages.EmergencyOrderModal(o))
}

func (h *OrderHandler) EmergencyClose(c echo.Context) error {
	v, _ := h.emergency(c)
	v.CloseDetail()
	return fragment(c, components.ClosedModal())
}
