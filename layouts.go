// Package layouts composes independently defined page layouts — wrapping
// presentation plus namespaced, asynchronously fetched data — into a single
// render tree. This package re-exports the core API from pkg/layout for
// callers that want a single import; advanced seams (template-backed
// wrappers, registries) live under pkg/.
package layouts

import (
	"context"

	"github.com/goliatone/go-layouts/pkg/layout"
)

// Layout couples wrapping presentation with an optional data fetch under a
// unique name.
type Layout = layout.Layout

// Option customises a layout during construction.
type Option = layout.Option

// Props is the flat bag of page properties shared between fetch time and
// render time.
type Props = layout.Props

// Result is the contract with the host's data-fetching lifecycle.
type Result = layout.Result

// Component renders page content from a props bag.
type Component = layout.Component

// ComponentFunc adapts a function into a Component.
type ComponentFunc = layout.ComponentFunc

// Page pairs a wrapped page component with its layout dispatch.
type Page = layout.Page

// Wrapper renders wrapping presentation around inner content.
type Wrapper = layout.Wrapper

// DataFunc produces a layout's data from the host request payload.
type DataFunc = layout.DataFunc

// FetchFunc matches the host lifecycle hook shape.
type FetchFunc = layout.FetchFunc

// Registry stores layouts by name.
type Registry = layout.Registry

// ProviderMissingError reports a wrapped page rendered outside RenderRoot.
type ProviderMissingError = layout.ProviderMissingError

// DataUnavailableError reports a data read with no published slice.
type DataUnavailableError = layout.DataUnavailableError

// NameConflictError reports duplicate names passed to Combine.
type NameConflictError = layout.NameConflictError

// ErrCombinedData rejects direct data access on combined layouts.
var ErrCombinedData = layout.ErrCombinedData

// New constructs a layout; see layout.New.
func New(name string, options ...Option) (*Layout, error) {
	return layout.New(name, options...)
}

// MustNew panics on construction failure.
func MustNew(name string, options ...Option) *Layout {
	return layout.MustNew(name, options...)
}

// WithWrapper sets the presentation wrapper applied around page content.
func WithWrapper(wrapper Wrapper) Option {
	return layout.WithWrapper(wrapper)
}

// WithFetch sets the layout's asynchronous data function.
func WithFetch(fetch DataFunc) Option {
	return layout.WithFetch(fetch)
}

// Combine merges an ordered list of layouts into one unit; see
// layout.Combine.
func Combine(units ...*Layout) (*Layout, error) {
	return layout.Combine(units...)
}

// MustCombine panics on combination failure.
func MustCombine(units ...*Layout) *Layout {
	return layout.MustCombine(units...)
}

// RenderRoot is the top-of-tree dispatcher; see layout.RenderRoot.
func RenderRoot(ctx context.Context, active Component, props Props) ([]byte, error) {
	return layout.RenderRoot(ctx, active, props)
}

// Key derives the namespaced storage key for a layout name.
func Key(name string) string {
	return layout.Key(name)
}

// NewRegistry creates an empty layout registry.
func NewRegistry() *Registry {
	return layout.NewRegistry()
}
