package handlers

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hireboard/internal/notify"
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/internal/table"
	"github.com/nfrund/hireboard/internal/viewstate"
	"github.com/nfrund/hireboard/web/src/templates/components"
	"github.com/nfrund/hireboard/web/src/templates/pages"
	g "maragu.dev/gomponents"
)

const feesTitle = "Platform Fees"

// FeeHandler lists and upserts platform fees.
type FeeHandler struct {
	*Console
}

func NewFeeHandler(con *Console) *FeeHandler {
	return &FeeHandler{Console: con}
}

func (h *FeeHandler) view(c echo.Context) (*viewstate.View[resources.Fee], table.Spec[resources.Fee]) {
	spec := pages.FeeTable()
	v := listView(h.Console, c, "platform-fees", viewstate.Options[resources.Fee]{
		Name:    feesTitle,
		Columns: spec.Columns,
		ID:      func(f resources.Fee) string { return f.Type },
		Source:  loader(resources.Fees(h.API)),
	})
	return v, spec
}

func (h *FeeHandler) List(c echo.Context) error {
	v, spec := h.view(c)
	if err := mount(c, v); err != nil {
		return err
	}
	return page(c, feesTitle, pages.FeesPath,
		pages.FeeForm(),
		pages.Section(pages.FeesSection, pages.Table(spec, v.Snapshot())),
	)
}

func (h *FeeHandler) Table(c echo.Context) error {
	v, spec := h.view(c)
	return serveTable(c, v, spec)
}

// Save creates or replaces the fee of one hiring type. A known type is
// patched in place; a new one re-lists the fees.
func (h *FeeHandler) Save(c echo.Context) error {
	v, spec := h.view(c)
	respond := func(extra ...g.Node) error {
		return fragment(c, append([]g.Node{pages.Table(spec, v.Snapshot())}, extra...)...)
	}

	var req FeeRequest
	if err := bind(c, &req); err != nil {
		return respond(components.Toast(notify.Failed(feesTitle, invalid(err))))
	}
	fee, err := strconv.ParseFloat(req.Fee, 64)
	if err != nil || fee < 0 {
		return respond(components.Toast(notify.Failed(feesTitle, "Fee must be zero or more.")))
	}

	f := resources.Fee{Type: req.Type, Fee: fee}
	n, err := v.Mutate(c.Request().Context(), viewstate.Mutation[resources.Fee]{
		ID:      f.Type,
		Success: "Platform fee saved successfully!",
		Failure: "Failed to save platform fee",
		Call: func(ctx context.Context) (viewstate.Change[resources.Fee], error) {
			if err := resources.SaveFee(ctx, h.API, f); err != nil {
				return viewstate.Change[resources.Fee]{}, err
			}
			if _, ok := v.Row(f.Type); ok {
				return viewstate.Change[resources.Fee]{Patch: func(row *resources.Fee) { row.Fee = f.Fee }}, nil
			}
			return viewstate.Change[resources.Fee]{Reload: true}, nil
		},
	})
	if settle(err) != nil {
		return err
	}
	return respond(components.Toast(refreshed(n, err)))
}
