package shell

import (
	"context"

	"github.com/goliatone/go-formcore/pkg/app"
	"github.com/goliatone/go-formcore/pkg/effect"
	"github.com/goliatone/go-formcore/pkg/event"
)

// Sync drives an App inline: every dispatched event's effects run before
// Dispatch returns, with HTTP transfers blocking the caller and their
// results fed straight back into the reducer. Renders collapse into the
// returned ViewModel. Not safe for concurrent use.
type Sync struct {
	app  *app.App
	opts Options
}

// NewSync wraps a, which must not be touched by anyone else afterwards.
func NewSync(a *app.App, fns ...OptionFn) *Sync {
	return &Sync{app: a, opts: NewOptions(fns...)}
}

// Dispatch runs one event to completion, including any fetches it chains,
// and returns the settled view.
func (s *Sync) Dispatch(ctx context.Context, ev event.Event) app.ViewModel {
	s.drain(ctx, s.app.Update(ev))
	return s.app.View()
}

// View returns the current projection without dispatching anything.
func (s *Sync) View() app.ViewModel {
	return s.app.View()
}

func (s *Sync) drain(ctx context.Context, effects []effect.Effect) {
	for _, e := range effects {
		req, ok := e.(effect.HTTP)
		if !ok {
			continue
		}
		res := perform(ctx, s.opts.HTTPClient, req)
		s.drain(ctx, s.app.ResolveHTTP(req.ID, res))
	}
}
