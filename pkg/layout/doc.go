// Package layout composes independently defined page layouts into a single
// render tree. Each layout couples optional wrapping presentation with an
// optional asynchronous data fetch under a unique name; fetched data is
// namespaced per layout so several layouts can share one props bag without
// collisions, and each layout's wrapper and data accessor only ever see
// their own slice. Layouts combine through Combine, which merges fetches
// concurrently and nests wrappers with the first layout outermost. Pages
// enter the system through WrapPage/WrapStaticFetch/WrapServerFetch and are
// rendered through RenderRoot, the top-of-tree dispatcher.
package layout
