package layouts_test

import (
	"context"
	"testing"
	"time"

	layouts "github.com/goliatone/go-layouts"
	"github.com/goliatone/go-layouts/pkg/layout"
	"github.com/goliatone/go-layouts/pkg/testsupport"
)

// End-to-end flow through the facade: declare layouts, combine, wrap the
// page and its fetch function, render through the root dispatcher, and read
// data back from inside the tree.
func TestFacade_FullPageFlow(t *testing.T) {
	shell := layouts.MustNew("shell",
		layouts.WithWrapper(testsupport.TagWrapper("shell")),
		layouts.WithFetch(testsupport.DelayedFetch(10*time.Millisecond, "shell data")),
	)
	sidebar := layouts.MustNew("sidebar",
		layouts.WithWrapper(testsupport.TagWrapper("sidebar")),
		layouts.WithFetch(testsupport.StaticFetch([]string{"home", "about"})),
	)

	combined, err := layouts.Combine(shell, sidebar)
	if err != nil {
		t.Fatalf("combine: %v", err)
	}

	page := combined.WrapPage(layouts.ComponentFunc(func(ctx context.Context, props layouts.Props) ([]byte, error) {
		links, err := layout.Data[[]string](ctx, sidebar)
		if err != nil {
			return nil, err
		}
		return []byte(props["slug"].(string) + ":" + links[0]), nil
	}))

	fetch := combined.WrapServerFetch(func(context.Context, any) (layouts.Result, error) {
		return layouts.Result{Props: layouts.Props{"slug": "welcome"}}, nil
	})
	res, err := fetch(context.Background(), nil)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	out, err := layouts.RenderRoot(context.Background(), page, res.Props)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "<shell><sidebar>welcome:home</sidebar></shell>"
	if string(out) != want {
		t.Fatalf("unexpected output:\n got %s\nwant %s", out, want)
	}
}

func TestFacade_RegistryKeepsNamesUnique(t *testing.T) {
	reg := layouts.NewRegistry()
	reg.MustRegister(layouts.MustNew("shell"))

	if err := reg.Register(layouts.MustNew("shell")); err == nil {
		t.Fatal("expected duplicate name rejection")
	}
	if layouts.Key("shell") != "layout:shell" {
		t.Fatalf("unexpected key %q", layouts.Key("shell"))
	}
}
