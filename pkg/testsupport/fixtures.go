// Package testsupport provides shared fixtures for exercising layout
// composition in tests and examples: canned components, wrappers, and fetch
// functions with controllable timing and failure behaviour.
package testsupport

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-layouts/pkg/layout"
)

// StaticComponent renders fixed markup regardless of props.
func StaticComponent(markup string) layout.Component {
	return layout.ComponentFunc(func(context.Context, layout.Props) ([]byte, error) {
		return []byte(markup), nil
	})
}

// EchoComponent renders its props as "key=value" pairs in key order, which
// makes forwarded-props assertions readable.
func EchoComponent() layout.Component {
	return layout.ComponentFunc(func(_ context.Context, props layout.Props) ([]byte, error) {
		keys := make([]string, 0, len(props))
		for key := range props {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, key := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%v", key, props[key]))
		}
		return []byte(strings.Join(pairs, " ")), nil
	})
}

// TagWrapper wraps content in an HTML-ish tag named after the layout, so
// nesting order shows up directly in the rendered bytes.
func TagWrapper(tag string) layout.Wrapper {
	return func(_ context.Context, content []byte, _ any) ([]byte, error) {
		return []byte(fmt.Sprintf("<%s>%s</%s>", tag, content, tag)), nil
	}
}

// StaticFetch resolves immediately with value.
func StaticFetch(value any) layout.DataFunc {
	return func(context.Context, any) (any, error) {
		return value, nil
	}
}

// DelayedFetch resolves with value after delay, or with the context error if
// cancellation wins.
func DelayedFetch(delay time.Duration, value any) layout.DataFunc {
	return func(ctx context.Context, _ any) (any, error) {
		select {
		case <-time.After(delay):
			return value, nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// FailingFetch rejects with err.
func FailingFetch(err error) layout.DataFunc {
	return func(context.Context, any) (any, error) {
		return nil, err
	}
}
