// Package rendering plugs templ components and gomponents nodes into echo.
package rendering

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// node is the rendering contract of gomponents.Node.
type node interface {
	Render(w io.Writer) error
}

// Renderer implements echo.Renderer for templ components and gomponents
// nodes. The template name passed to c.Render is ignored; the component is
// the data argument.
type Renderer struct{}

func New() *Renderer { return &Renderer{} }

func render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case node:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type %T", component)
	}
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return render(c.Request().Context(), data, w)
}
