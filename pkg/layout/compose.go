package layout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Combine merges an ordered list of layouts into one unit. Constituent
// fetches run concurrently and land under each constituent's own key, so
// the merged payload is deterministic regardless of completion order.
// Wrappers nest with the first layout outermost and the last innermost.
// Duplicate names — including names reached through nested combined
// layouts — are rejected before any other work, listing every duplicate.
//
// The combined layout does not expose Data; descendants read through the
// constituent layout they declared.
func Combine(units ...*Layout) (*Layout, error) {
	if len(units) == 0 {
		return nil, errors.New("layout: combine requires at least one layout")
	}
	for i, unit := range units {
		if unit == nil {
			return nil, fmt.Errorf("layout: combine argument %d is nil", i)
		}
	}

	var leaves []string
	for _, unit := range units {
		leaves = append(leaves, unit.leafNames()...)
	}
	if dup := duplicateNames(leaves); len(dup) > 0 {
		return nil, &NameConflictError{Names: dup}
	}

	parts := append([]*Layout(nil), units...)
	names := make([]string, len(parts))
	for i, part := range parts {
		names[i] = part.name
	}

	return &Layout{
		name:    strings.Join(names, nameDelimiter),
		parts:   parts,
		fetch:   combinedFetch(parts),
		wrapper: combinedWrapper(parts),
	}, nil
}

// MustCombine panics on combination failure. Useful for package-level
// wiring where the constituents are fixed.
func MustCombine(units ...*Layout) *Layout {
	combined, err := Combine(units...)
	if err != nil {
		panic(err)
	}
	return combined
}

// duplicateNames lists every name occurring more than once, each reported
// once in first-occurrence order.
func duplicateNames(names []string) []string {
	counts := make(map[string]int, len(names))
	for _, name := range names {
		counts[name]++
	}
	var dup []string
	reported := make(map[string]bool, len(names))
	for _, name := range names {
		if counts[name] > 1 && !reported[name] {
			reported[name] = true
			dup = append(dup, name)
		}
	}
	return dup
}

// combinedFetch fans out to every constituent fetch and merges the results
// keyed by each constituent's own key. A constituent without a fetch
// contributes nil under its key; the first fetch error fails the whole
// combined fetch with no partial result.
func combinedFetch(parts []*Layout) DataFunc {
	return func(ctx context.Context, req any) (any, error) {
		results := make([]any, len(parts))
		group, groupCtx := errgroup.WithContext(ctx)
		for i, part := range parts {
			if part.fetch == nil {
				continue
			}
			group.Go(func() error {
				data, err := part.fetch(groupCtx, req)
				if err != nil {
					return err
				}
				results[i] = data
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}
		merged := make(map[string]any, len(parts))
		for i, part := range parts {
			merged[part.Key()] = results[i]
		}
		return merged, nil
	}
}

// combinedWrapper folds the constituents right to left over the inner
// content so the first-declared wrapper ends up outermost. Each wrapper
// receives its own slice of the merged payload; constituents without a
// wrapper pass content through unchanged.
func combinedWrapper(parts []*Layout) Wrapper {
	return func(ctx context.Context, content []byte, data any) ([]byte, error) {
		merged, _ := data.(map[string]any)
		out := content
		for i := len(parts) - 1; i >= 0; i-- {
			part := parts[i]
			if part.wrapper == nil {
				continue
			}
			var slice any
			if merged != nil {
				slice = merged[part.Key()]
			}
			wrapped, err := part.wrapper(ctx, out, slice)
			if err != nil {
				return nil, err
			}
			out = wrapped
		}
		return out, nil
	}
}
