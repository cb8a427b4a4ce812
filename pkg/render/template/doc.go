// Package template defines the renderer-agnostic template engine contract.
// Renderers depend on this seam rather than a concrete engine so template
// backends can be swapped without touching render logic.
package template
