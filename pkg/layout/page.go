package layout

import "context"

// Component renders page content from a props bag. Anything the host treats
// as a page — a template, a handler, another library's view type — adapts
// through this interface or ComponentFunc.
type Component interface {
	Render(ctx context.Context, props Props) ([]byte, error)
}

// ComponentFunc adapts a function into a Component.
type ComponentFunc func(ctx context.Context, props Props) ([]byte, error)

// Render calls the underlying function.
func (fn ComponentFunc) Render(ctx context.Context, props Props) ([]byte, error) {
	return fn(ctx, props)
}

// Page pairs a wrapped page component with the layout whose dispatch the
// root provider should apply. It renders like the original component but
// refuses to render outside the provider's subtree, surfacing the wiring
// defect instead of silently dropping layout data.
type Page struct {
	component Component
	layout    *Layout
}

// WrapPage attaches this layout to a page component. The returned Page is
// what routes hand to RenderRoot.
func (l *Layout) WrapPage(component Component) *Page {
	return &Page{component: component, layout: l}
}

// Render implements Component. The original component renders unchanged
// once the provider flag checks out; otherwise ProviderMissingError.
func (p *Page) Render(ctx context.Context, props Props) ([]byte, error) {
	if !providerEnabled(ctx) {
		return nil, &ProviderMissingError{Layout: p.layout.name}
	}
	return p.component.Render(ctx, props)
}
