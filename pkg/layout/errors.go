package layout

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrCombinedData is returned when Data is called on a combined layout.
// Combined layouts never expose their merged payload directly; read through
// the constituent layout's own Data instead.
var ErrCombinedData = errors.New("layout: combined layout does not expose data access; read through the constituent layout")

// ProviderMissingError reports a wrapped page rendered outside the root
// provider's subtree. This is a wiring defect: without RenderRoot no layout
// dispatch runs and every downstream data read would fail, so rendering
// stops immediately instead of degrading silently.
type ProviderMissingError struct {
	Layout string
}

func (e *ProviderMissingError) Error() string {
	return fmt.Sprintf("layout: page wrapped by %q rendered outside the root provider; route rendering through RenderRoot", e.Layout)
}

// DataUnavailableError reports a Data call that found no published slice for
// the layout. Candidate causes: the layout declares no fetch function and
// the fetch wrapper never ran, the page was not wrapped with WrapPage, the
// page's fetch function was not wrapped with WrapStaticFetch or
// WrapServerFetch, or the call happened outside the layout's subtree.
type DataUnavailableError struct {
	Layout string
	Site   string
}

func (e *DataUnavailableError) Error() string {
	site := e.Site
	if site == "" {
		site = "unknown call site"
	}
	return fmt.Sprintf("layout: no data published for layout %q (read at %s)", e.Layout, site)
}

// NameConflictError rejects a Combine call whose layouts declare duplicate
// names. Every duplicated name is listed, in declaration order.
type NameConflictError struct {
	Names []string
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("layout: combined layouts declare duplicate names: %s", strings.Join(e.Names, ", "))
}

// callSite resolves the caller's file:line for diagnostics. skip counts
// stack frames above callSite itself.
func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
