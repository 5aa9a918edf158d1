package layout

import "context"

// Props is the flat bag of page properties assembled at fetch time and
// handed to components at render time. Layout entries live under namespaced
// keys (see Key); everything else belongs to the page.
type Props map[string]any

// Result is the contract with the host's data-fetching lifecycle: a props
// bag plus any sibling fields the host understands (revalidation hints,
// redirects, and so on). The core merges layout data into Props and forwards
// Extra untouched.
type Result struct {
	Props Props
	Extra map[string]any
}

// FetchFunc matches the host lifecycle hook shape: given the host's opaque
// request payload it produces a Result. The core imposes nothing on the
// payload beyond passing it through.
type FetchFunc func(ctx context.Context, req any) (Result, error)

// WrapStaticFetch wraps a build-time data function so its result also
// carries this layout's namespaced entry. A nil base behaves as a no-op
// returning empty props.
func (l *Layout) WrapStaticFetch(base FetchFunc) FetchFunc {
	return l.wrapFetch(base)
}

// WrapServerFetch is WrapStaticFetch under the request-time name. The two
// share one merge contract; only the host hook they conventionally wrap
// differs.
func (l *Layout) WrapServerFetch(base FetchFunc) FetchFunc {
	return l.wrapFetch(base)
}

// wrapFetch runs the base fetch first, then the layout's own fetch, and
// returns the base result with exactly one additional props entry: the
// layout's key mapped to its fetch result, nil when the layout declares no
// fetch function. Base fields outside Props are never touched; errors from
// either side propagate unwrapped.
func (l *Layout) wrapFetch(base FetchFunc) FetchFunc {
	return func(ctx context.Context, req any) (Result, error) {
		out := Result{Props: Props{}}
		if base != nil {
			res, err := base(ctx, req)
			if err != nil {
				return Result{}, err
			}
			out = res
		}
		var data any
		if l.fetch != nil {
			fetched, err := l.fetch(ctx, req)
			if err != nil {
				return Result{}, err
			}
			data = fetched
		}
		props := make(Props, len(out.Props)+1)
		for key, value := range out.Props {
			props[key] = value
		}
		props[l.Key()] = data
		out.Props = props
		return out, nil
	}
}
