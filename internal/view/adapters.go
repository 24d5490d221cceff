package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

type nodeComponent struct {
	node g.Node
}

func (n nodeComponent) Render(_ context.Context, w io.Writer) error {
	return n.node.Render(w)
}

// Templ lets a gomponents node be used wherever a templ.Component is
// expected, such as the body of the base layout.
func Templ(node g.Node) templ.Component {
	return nodeComponent{node: node}
}

type componentNode struct {
	ctx       context.Context
	component templ.Component
}

func (c componentNode) Render(w io.Writer) error {
	return c.component.Render(c.ctx, w)
}

// Node embeds a templ component in a gomponents tree. ctx is passed to the
// component when the tree is rendered.
func Node(ctx context.Context, component templ.Component) g.Node {
	if ctx == nil {
		ctx = context.Background()
	}
	return componentNode{ctx: ctx, component: component}
}
