package layout

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func staticFetch(value any) DataFunc {
	return func(context.Context, any) (any, error) {
		return value, nil
	}
}

func TestWrapFetch_MergesNamespacedEntry(t *testing.T) {
	sidebar := MustNew("sidebar", WithFetch(staticFetch(map[string]any{"links": 3})))

	base := func(context.Context, any) (Result, error) {
		return Result{
			Props: Props{"slug": "welcome"},
			Extra: map[string]any{"revalidate": 60},
		}, nil
	}

	res, err := sidebar.WrapServerFetch(base)(context.Background(), nil)
	if err != nil {
		t.Fatalf("wrapped fetch: %v", err)
	}

	want := Props{
		"slug":         "welcome",
		Key("sidebar"): map[string]any{"links": 3},
	}
	if diff := cmp.Diff(want, res.Props); diff != "" {
		t.Fatalf("props mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]any{"revalidate": 60}, res.Extra); diff != "" {
		t.Fatalf("extra fields not preserved (-want +got):\n%s", diff)
	}
}

func TestWrapFetch_NilBaseDefaultsToEmptyProps(t *testing.T) {
	sidebar := MustNew("sidebar", WithFetch(staticFetch("data")))

	res, err := sidebar.WrapStaticFetch(nil)(context.Background(), nil)
	if err != nil {
		t.Fatalf("wrapped fetch: %v", err)
	}
	if diff := cmp.Diff(Props{Key("sidebar"): "data"}, res.Props); diff != "" {
		t.Fatalf("props mismatch (-want +got):\n%s", diff)
	}
}

func TestWrapFetch_NoFetchFunctionContributesNil(t *testing.T) {
	chrome := MustNew("chrome")

	res, err := chrome.WrapServerFetch(nil)(context.Background(), nil)
	if err != nil {
		t.Fatalf("wrapped fetch: %v", err)
	}
	value, ok := res.Props[Key("chrome")]
	if !ok {
		t.Fatalf("expected entry for %q, got %v", Key("chrome"), res.Props)
	}
	if value != nil {
		t.Fatalf("expected nil entry, got %v", value)
	}
}

func TestWrapFetch_StaticAndServerShareContract(t *testing.T) {
	l := MustNew("chrome", WithFetch(staticFetch(42)))
	base := func(context.Context, any) (Result, error) {
		return Result{Props: Props{"k": "v"}}, nil
	}

	static, err := l.WrapStaticFetch(base)(context.Background(), nil)
	if err != nil {
		t.Fatalf("static fetch: %v", err)
	}
	server, err := l.WrapServerFetch(base)(context.Background(), nil)
	if err != nil {
		t.Fatalf("server fetch: %v", err)
	}
	if diff := cmp.Diff(static.Props, server.Props); diff != "" {
		t.Fatalf("static/server merge diverged (-static +server):\n%s", diff)
	}
}

func TestWrapFetch_BaseErrorPropagates(t *testing.T) {
	boom := errors.New("base failed")
	l := MustNew("chrome", WithFetch(staticFetch(1)))

	_, err := l.WrapServerFetch(func(context.Context, any) (Result, error) {
		return Result{}, boom
	})(context.Background(), nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected base error, got %v", err)
	}
}

func TestWrapFetch_LayoutFetchErrorPropagates(t *testing.T) {
	boom := errors.New("fetch failed")
	l := MustNew("chrome", WithFetch(func(context.Context, any) (any, error) {
		return nil, boom
	}))

	_, err := l.WrapServerFetch(nil)(context.Background(), nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestWrapFetch_PassesRequestPayloadThrough(t *testing.T) {
	type payload struct{ Slug string }
	var seen any
	l := MustNew("chrome", WithFetch(func(_ context.Context, req any) (any, error) {
		seen = req
		return nil, nil
	}))

	req := payload{Slug: "welcome"}
	if _, err := l.WrapServerFetch(nil)(context.Background(), req); err != nil {
		t.Fatalf("wrapped fetch: %v", err)
	}
	if seen != req {
		t.Fatalf("request payload not passed through: got %v", seen)
	}
}
