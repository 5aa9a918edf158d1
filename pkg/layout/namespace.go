package layout

import "strings"

// Prefix marks every layout entry in props payloads and the ambient data
// context. Keys derived from distinct layout names never collide because the
// name is appended verbatim.
const Prefix = "layout:"

// nameDelimiter joins constituent names into a combined layout's name.
const nameDelimiter = "+"

// Key derives the storage key for a layout name.
func Key(name string) string {
	return Prefix + name
}

// IsNamespaced reports whether a props key carries a layout entry.
func IsNamespaced(key string) bool {
	return strings.HasPrefix(key, Prefix)
}

// Split partitions a props bag into the namespaced layout entries and the
// plain page fields. The input map is left untouched; either result may be
// empty but never nil.
func Split(props Props) (namespaced Props, page Props) {
	namespaced = Props{}
	page = Props{}
	for key, value := range props {
		if IsNamespaced(key) {
			namespaced[key] = value
			continue
		}
		page[key] = value
	}
	return namespaced, page
}
