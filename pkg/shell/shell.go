// Package shell executes the effects the core declares. Loop is the
// asynchronous runtime: one goroutine owns the App, renders through a
// callback, and runs HTTP transfers on worker goroutines whose results
// funnel back into the loop. Sync drives the same App inline for
// prompt-style shells that need the settled state after each event.
package shell

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goliatone/go-formcore/pkg/app"
	"github.com/goliatone/go-formcore/pkg/effect"
	"github.com/goliatone/go-formcore/pkg/event"
)

type message struct {
	event   event.Event
	resolve *resolution
}

type resolution struct {
	id  effect.RequestID
	res effect.HTTPResult
}

// Loop serializes all App access on the goroutine running Run. Events enter
// through Dispatch; HTTP results re-enter through the same inbox, so the
// reducer never runs concurrently with itself.
type Loop struct {
	app   *app.App
	opts  Options
	inbox chan message
}

// NewLoop wraps a, which must not be touched by anyone else afterwards.
func NewLoop(a *app.App, fns ...OptionFn) *Loop {
	opts := NewOptions(fns...)
	return &Loop{
		app:   a,
		opts:  opts,
		inbox: make(chan message, opts.QueueSize),
	}
}

// Dispatch queues an event for the loop. It blocks while the inbox is full.
func (l *Loop) Dispatch(ev event.Event) {
	l.inbox <- message{event: ev}
}

// Run paints the initial state, then processes events until ctx is
// canceled.
func (l *Loop) Run(ctx context.Context) error {
	l.opts.Render(l.app.View())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-l.inbox:
			var effects []effect.Effect
			if msg.resolve != nil {
				effects = l.app.ResolveHTTP(msg.resolve.id, msg.resolve.res)
			} else {
				effects = l.app.Update(msg.event)
			}
			l.execute(ctx, effects)
		}
	}
}

func (l *Loop) execute(ctx context.Context, effects []effect.Effect) {
	for _, e := range effects {
		switch e := e.(type) {
		case effect.Render:
			l.opts.Render(l.app.View())
		case effect.HTTP:
			l.transfer(ctx, e)
		}
	}
}

func (l *Loop) transfer(ctx context.Context, req effect.HTTP) {
	go func() {
		res := perform(ctx, l.opts.HTTPClient, req)
		select {
		case l.inbox <- message{resolve: &resolution{id: req.ID, res: res}}:
		case <-ctx.Done():
		}
	}()
}

// perform carries out one HTTP effect. The effect carries the query text
// raw; it is re-encoded here before it touches the wire.
func perform(ctx context.Context, client *http.Client, req effect.HTTP) effect.HTTPResult {
	target, err := url.Parse(req.URL)
	if err != nil {
		return effect.HTTPResult{Err: fmt.Errorf("shell: parse url: %w", err)}
	}
	target.RawQuery = target.Query().Encode()

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), nil)
	if err != nil {
		return effect.HTTPResult{Err: fmt.Errorf("shell: build request: %w", err)}
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return effect.HTTPResult{Err: fmt.Errorf("shell: perform request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return effect.HTTPResult{Err: fmt.Errorf("shell: read response: %w", err)}
	}
	return effect.HTTPResult{Status: resp.StatusCode, Body: body}
}
