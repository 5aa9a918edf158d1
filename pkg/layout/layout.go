package layout

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Wrapper renders wrapping presentation around already rendered inner
// content. data is the layout's own namespaced slice, nil when the layout
// declares no fetch function.
type Wrapper func(ctx context.Context, content []byte, data any) ([]byte, error)

// DataFunc produces a layout's data from the host's request payload. The
// payload is whatever the host data-fetching lifecycle hands the wrapped
// fetch function; the core passes it through unmodified.
type DataFunc func(ctx context.Context, req any) (any, error)

// Option customises a layout during construction.
type Option func(*Layout)

// WithWrapper sets the presentation wrapper applied around page content.
func WithWrapper(wrapper Wrapper) Option {
	return func(l *Layout) {
		l.wrapper = wrapper
	}
}

// WithFetch sets the layout's asynchronous data function.
func WithFetch(fetch DataFunc) Option {
	return func(l *Layout) {
		l.fetch = fetch
	}
}

// Layout couples wrapping presentation with an optional data fetch under a
// unique name. A layout is immutable once constructed; the same value can
// wrap any number of pages. Combined layouts are produced by Combine and
// delegate to their constituents.
type Layout struct {
	name    string
	wrapper Wrapper
	fetch   DataFunc
	parts   []*Layout
}

// New constructs a layout. The name must be non-empty and unique among the
// layouts that ever share a page; uniqueness is enforced when layouts are
// combined or registered.
func New(name string, options ...Option) (*Layout, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, errors.New("layout: name is required")
	}
	l := &Layout{name: trimmed}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l, nil
}

// MustNew panics on construction failure. Useful for package-level wiring.
func MustNew(name string, options ...Option) *Layout {
	l, err := New(name, options...)
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the layout's declared name. Combined layouts report the
// delimiter-joined constituent names.
func (l *Layout) Name() string {
	return l.name
}

// Key returns the namespaced key under which this layout's data lives in
// props payloads and the ambient context.
func (l *Layout) Key() string {
	return Key(l.name)
}

// Combined reports whether the layout was produced by Combine.
func (l *Layout) Combined() bool {
	return len(l.parts) > 0
}

// Data reads this layout's slice from the ambient context. It fails with
// DataUnavailableError when no slice was published for the layout and with
// ErrCombinedData on combined layouts.
func (l *Layout) Data(ctx context.Context) (any, error) {
	return l.dataAt(ctx, callSite(1))
}

func (l *Layout) dataAt(ctx context.Context, site string) (any, error) {
	if l.Combined() {
		return nil, ErrCombinedData
	}
	if value, ok := entryFromContext(ctx, l.Key()); ok {
		return value, nil
	}
	return nil, &DataUnavailableError{Layout: l.name, Site: site}
}

// Data is the typed variant of (*Layout).Data. A nil slice yields the zero
// value without error; a slice of the wrong type is an error.
func Data[T any](ctx context.Context, l *Layout) (T, error) {
	var zero T
	value, err := l.dataAt(ctx, callSite(1))
	if err != nil {
		return zero, err
	}
	if value == nil {
		return zero, nil
	}
	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("layout: data for %q is %T, not %T", l.name, value, zero)
	}
	return typed, nil
}

// leafNames collects the non-combined names reachable from this layout, in
// declaration order. Combine validates uniqueness over this set so nesting
// combined layouts cannot smuggle in a duplicate.
func (l *Layout) leafNames() []string {
	if !l.Combined() {
		return []string{l.name}
	}
	var names []string
	for _, part := range l.parts {
		names = append(names, part.leafNames()...)
	}
	return names
}

// dispatch applies the layout around inner: the layout's namespaced slice is
// published into the ambient context for the subtree, inner renders with the
// remaining page fields, then the wrapper (when present) renders around the
// result. Combined layouts publish every constituent's key in one step.
func (l *Layout) dispatch(ctx context.Context, inner Component, props Props) ([]byte, error) {
	namespaced, page := Split(props)
	slice, published := namespaced[l.Key()]
	if published {
		ctx = withEntries(ctx, l.overlay(slice))
	}
	content, err := inner.Render(ctx, page)
	if err != nil {
		return nil, err
	}
	if l.wrapper == nil {
		return content, nil
	}
	return l.wrapper(ctx, content, slice)
}

// overlay lists the context entries a published slice contributes. Plain
// layouts contribute their own key; combined layouts flatten the merged
// payload down to the constituent leaf keys so nested combinations behave
// exactly like flat ones.
func (l *Layout) overlay(slice any) Props {
	if !l.Combined() {
		return Props{l.Key(): slice}
	}
	merged, ok := slice.(map[string]any)
	if !ok {
		return nil
	}
	entries := Props{}
	for _, part := range l.parts {
		value, ok := merged[part.Key()]
		if !ok {
			continue
		}
		if part.Combined() {
			for key, nested := range part.overlay(value) {
				entries[key] = nested
			}
			continue
		}
		entries[part.Key()] = value
	}
	return entries
}
