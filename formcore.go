package formcore

import (
	"context"

	"github.com/goliatone/go-formcore/pkg/app"
	"github.com/goliatone/go-formcore/pkg/event"
	"github.com/goliatone/go-formcore/pkg/field"
	"github.com/goliatone/go-formcore/pkg/render"
	"github.com/goliatone/go-formcore/pkg/renderers/html"
	"github.com/goliatone/go-formcore/pkg/renderers/text"
)

// App is the form-entry core. Construct one with NewApp, feed it events,
// and project its ViewModel through a renderer.
type App = app.App

// ViewModel is the immutable projection of the form state.
type ViewModel = app.ViewModel

// FieldViewModel is the per-field slice of the projection.
type FieldViewModel = app.FieldViewModel

// RenderOptions carries presentation knobs shared by every renderer.
type RenderOptions = render.RenderOptions

// Event is the closed set of inputs the core processes.
type Event = event.Event

// UpdateValue sets a field's value from shell input.
type UpdateValue = event.UpdateValue

// TouchField marks a field as visited so its error may surface.
type TouchField = event.TouchField

// SetFieldEditing toggles focus state for one field.
type SetFieldEditing = event.SetFieldEditing

// Submit validates everything and locks the form when valid.
type Submit = event.Submit

// Edit unlocks a submitted form for further changes.
type Edit = event.Edit

// ResetForm restores every field to its initial value.
type ResetForm = event.ResetForm

// SelectSuggestion adopts one fetched suggestion into the address field.
type SelectSuggestion = event.SelectSuggestion

// ClearSuggestions empties the suggestion list.
type ClearSuggestions = event.ClearSuggestions

// Suggestion is one address candidate offered to the user.
type Suggestion = event.Suggestion

// Field identifiers events address.
const (
	FieldUsername = field.IdentUsername
	FieldEmail    = field.IdentEmail
	FieldAge      = field.IdentAge
	FieldAddress  = field.IdentAddress
)

// NewApp builds a form core with the default field set.
func NewApp(options ...app.Option) *App {
	return app.New(options...)
}

// WithSuggestionsURL points the address field at a suggestion endpoint.
func WithSuggestionsURL(url string) app.Option {
	return app.WithSuggestionsURL(url)
}

// DefaultRegistry returns a renderer registry with the built-in HTML and
// text renderers already registered.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	htmlRenderer, err := html.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, err
	}
	if err := registry.Register(text.New()); err != nil {
		return nil, err
	}

	return registry, nil
}

// RenderHTML projects view as a standalone HTML page. It constructs a
// renderer per call; hold on to a DefaultRegistry when rendering in a loop.
func RenderHTML(ctx context.Context, view ViewModel, options RenderOptions) ([]byte, error) {
	renderer, err := html.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, view, options)
}

// RenderText projects view as the plain-text summary.
func RenderText(ctx context.Context, view ViewModel, options RenderOptions) ([]byte, error) {
	return text.New().Render(ctx, view, options)
}
