package layout

import (
	"context"
	"errors"
)

// RenderRoot is the top-of-tree dispatcher. It marks the subtree as
// layout-enabled, then routes rendering through the active component's
// layout dispatch when the component came from WrapPage, or renders the
// component directly with its props unchanged when it did not. RenderRoot
// holds no state of its own; hosts call it once per render with whatever
// "current page + props" pair their routing produced.
func RenderRoot(ctx context.Context, active Component, props Props) ([]byte, error) {
	if active == nil {
		return nil, errors.New("layout: active component is required")
	}
	ctx = WithProvider(ctx)
	if page, ok := active.(*Page); ok {
		return page.layout.dispatch(ctx, page, props)
	}
	return active.Render(ctx, props)
}
