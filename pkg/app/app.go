package app

import (
	"github.com/goliatone/go-formcore/pkg/address"
	"github.com/goliatone/go-formcore/pkg/effect"
	"github.com/goliatone/go-formcore/pkg/event"
	"github.com/goliatone/go-formcore/pkg/form"
)

// Option configures an App.
type Option func(*config)

type config struct {
	suggestionsURL string
}

// WithSuggestionsURL points address fetches at url instead of the default
// lookup endpoint.
func WithSuggestionsURL(url string) Option {
	return func(c *config) { c.suggestionsURL = url }
}

// App is the root reducer. Each event belongs to exactly one handler; the
// App routes it there, walks the returned command, and collects the effect
// stream. Not safe for concurrent use.
type App struct {
	form    form.Handler
	address address.Handler
}

// New builds an App with a factory-default form and an empty suggestion
// list.
func New(opts ...Option) *App {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &App{
		form:    form.NewHandler(),
		address: address.NewHandler(cfg.suggestionsURL),
	}
}

// Update dispatches one event to completion and returns the effects in
// emission order. Chained events are processed synchronously before the
// chaining command's own effects are appended.
func (a *App) Update(ev event.Event) []effect.Effect {
	var out []effect.Effect
	a.process(ev, &out)
	return out
}

func (a *App) process(ev event.Event, out *[]effect.Effect) {
	cmd := a.route(ev)
	cmd.Walk(
		func(next event.Event) { a.process(next, out) },
		func(e effect.Effect) { *out = append(*out, e) },
	)
}

func (a *App) route(ev event.Event) effect.Command {
	switch ev := ev.(type) {
	case event.UpdateValue:
		return a.form.UpdateValue(ev.Field, ev.Value)
	case event.TouchField:
		return a.form.TouchField(ev.Field)
	case event.SetFieldEditing:
		return a.form.SetFieldEditing(ev.Field, ev.Editing)
	case event.Submit:
		return a.form.Submit()
	case event.Edit:
		return a.form.Edit()
	case event.ResetForm:
		return a.form.Reset()
	case event.FetchSuggestions:
		return a.address.Fetch(ev.Query)
	case event.SuggestionsReceived:
		return a.address.Received(ev.Result)
	case event.SelectSuggestion:
		return a.address.Select(ev.Suggestion)
	case event.ClearSuggestions:
		return a.address.Clear()
	}
	return effect.Done()
}

// ResolveHTTP reports an HTTP effect's outcome to the continuation table.
// Superseded or unknown requests produce no effects; the current one
// re-enters the reducer as a SuggestionsReceived event.
func (a *App) ResolveHTTP(id effect.RequestID, res effect.HTTPResult) []effect.Effect {
	ev, ok := a.address.Resolve(id, res)
	if !ok {
		return nil
	}
	return a.Update(ev)
}
