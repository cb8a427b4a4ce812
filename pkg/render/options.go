package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request presentation data renderers can use to
// customise their output without the view model changing shape.
type RenderOptions struct {
	// Method overrides the HTTP method the rendered form submits with.
	// Renderers targeting browsers translate unsupported verbs into POST.
	Method string
	// Action sets the submit target of the rendered form.
	Action string
	// Title overrides the page or section heading.
	Title string
	// Theme carries the resolved theme configuration when one is active.
	// Renderers that do not support theming ignore it.
	Theme *theme.RendererConfig
}
