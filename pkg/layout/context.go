package layout

import "context"

type contextKey int

const (
	providerKey contextKey = iota
	overlayKey
)

// WithProvider marks the context as rooted under the provider so wrapped
// pages accept it. RenderRoot applies this automatically; it is exported for
// hosts that drive their own dispatch and for tests.
func WithProvider(ctx context.Context) context.Context {
	return context.WithValue(ctx, providerKey, true)
}

func providerEnabled(ctx context.Context) bool {
	enabled, _ := ctx.Value(providerKey).(bool)
	return enabled
}

// withEntries derives a child context carrying the parent overlay plus the
// supplied entries. The parent's map is copied, never mutated, so sibling
// subtrees cannot observe each other's data.
func withEntries(ctx context.Context, entries Props) context.Context {
	if len(entries) == 0 {
		return ctx
	}
	parent, _ := ctx.Value(overlayKey).(Props)
	next := make(Props, len(parent)+len(entries))
	for key, value := range parent {
		next[key] = value
	}
	for key, value := range entries {
		next[key] = value
	}
	return context.WithValue(ctx, overlayKey, next)
}

func entryFromContext(ctx context.Context, key string) (any, bool) {
	overlay, _ := ctx.Value(overlayKey).(Props)
	value, ok := overlay[key]
	return value, ok
}
