package handlers

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/hireboard/internal/middleware"
	"github.com/nfrund/hireboard/internal/mutation"
	"github.com/nfrund/hireboard/internal/notify"
	"github.com/nfrund/hireboard/internal/resources"
	"github.com/nfrund/hireboard/web/src/templates/components"
	"github.com/nfrund/hireboard/web/src/templates/pages"
)

// ContentHandler edits the static pages of the marketplace apps.
type ContentHandler struct {
	*Console
	dispatcher *mutation.Dispatcher
}

func NewContentHandler(con *Console) *ContentHandler {
	return &ContentHandler{Console: con, dispatcher: mutation.NewDispatcher(con.Notifier)}
}

func (h *ContentHandler) lookup(c echo.Context) (resources.ContentPage, error) {
	p, ok := resources.LookupContent(c.Param("slug"))
	if !ok {
		return p, echo.ErrNotFound
	}
	return p, nil
}

// Edit renders the editor page with the stored content.
func (h *ContentHandler) Edit(c echo.Context) error {
	p, err := h.lookup(c)
	if err != nil {
		return err
	}
	content, err := p.Load(c.Request().Context(), h.API)
	if settle(err) != nil {
		return err
	}
	return page(c, p.Title, pages.ContentPath(p), pages.ContentEditor(p, content, err))
}

// Editor re-renders only the editor, used by the retry button.
func (h *ContentHandler) Editor(c echo.Context) error {
	p, err := h.lookup(c)
	if err != nil {
		return err
	}
	content, err := p.Load(c.Request().Context(), h.API)
	if settle(err) != nil {
		return err
	}
	return fragment(c, pages.ContentEditor(p, content, err))
}

// Save replaces the stored content. The submitted text stays in the editor
// whether or not the save succeeded.
func (h *ContentHandler) Save(c echo.Context) error {
	p, err := h.lookup(c)
	if err != nil {
		return err
	}
	var req ContentRequest
	if err := bind(c, &req); err != nil {
		return fragment(c, pages.ContentEditor(p, req.Content, nil), components.Toast(notify.Failed(p.Title, invalid(err))))
	}

	cred, _ := middleware.CredentialFrom(c)
	n, err := h.dispatcher.Dispatch(c.Request().Context(), mutation.Request{
		ID:      cred.SID + ":" + p.Slug,
		View:    p.Title,
		Success: p.Title + " content updated successfully!",
		Failure: "Failed to update " + p.Title + " content",
		Call: func(ctx context.Context) error {
			return p.Save(ctx, h.API, req.Content)
		},
	})
	if settle(err) != nil {
		return err
	}
	return fragment(c, pages.ContentEditor(p, req.Content, nil), components.Toast(n))
}
