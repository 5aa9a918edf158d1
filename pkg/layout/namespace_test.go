package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKey_RoundTrip(t *testing.T) {
	names := []string{"shell", "sidebar", "a", "a-b", "a_b", "with space", "ünïcode"}
	for _, name := range names {
		key := Key(name)
		if !IsNamespaced(key) {
			t.Fatalf("key %q for name %q is not recognised as namespaced", key, name)
		}
		props := Props{key: name}
		if got := props[Key(name)]; got != name {
			t.Fatalf("stored under %q, read back %v", key, got)
		}
	}
}

func TestKey_DistinctNamesDistinctKeys(t *testing.T) {
	names := []string{"shell", "sidebar", "banner", "s", "shel", "shelll"}
	seen := make(map[string]string, len(names))
	for _, name := range names {
		key := Key(name)
		if prev, ok := seen[key]; ok {
			t.Fatalf("names %q and %q collide on key %q", prev, name, key)
		}
		seen[key] = name
	}
}

func TestSplit_PartitionsProps(t *testing.T) {
	props := Props{
		Key("shell"):   map[string]any{"title": "home"},
		Key("sidebar"): nil,
		"slug":         "welcome",
		"count":        3,
	}

	namespaced, page := Split(props)

	wantNamespaced := Props{
		Key("shell"):   map[string]any{"title": "home"},
		Key("sidebar"): nil,
	}
	wantPage := Props{
		"slug":  "welcome",
		"count": 3,
	}
	if diff := cmp.Diff(wantNamespaced, namespaced); diff != "" {
		t.Fatalf("namespaced mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantPage, page); diff != "" {
		t.Fatalf("page mismatch (-want +got):\n%s", diff)
	}
	if len(props) != 4 {
		t.Fatalf("input props mutated: %v", props)
	}
}

func TestSplit_EmptyProps(t *testing.T) {
	namespaced, page := Split(nil)
	if namespaced == nil || page == nil {
		t.Fatalf("expected non-nil maps, got %v / %v", namespaced, page)
	}
	if len(namespaced) != 0 || len(page) != 0 {
		t.Fatalf("expected empty maps, got %v / %v", namespaced, page)
	}
}
