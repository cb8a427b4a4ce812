package render

import (
	"context"

	"github.com/goliatone/go-formcore/pkg/app"
)

// Renderer converts a view model into a byte representation (HTML, plain
// text, etc.). Renderers are pure projections of the view model; state
// changes only ever flow through the application core.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view app.ViewModel, options RenderOptions) ([]byte, error)
}
