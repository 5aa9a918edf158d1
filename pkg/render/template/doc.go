// Package template adapts template engines into layout wrappers. The
// TemplateRenderer seam mirrors the github.com/goliatone/go-template engine
// contract so hosts already using that engine (or anything matching it) can
// express a layout's wrapping presentation as a template instead of
// hand-written markup code.
package template
