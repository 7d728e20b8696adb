// Package template defines the renderer-agnostic template contract. The pongo
// subpackage provides the pongo2 backed implementation used by the HTML
// renderer.
package template
