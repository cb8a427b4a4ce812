package shell

import (
	"net/http"

	"github.com/goliatone/go-formcore/pkg/app"
)

// Options configures shell runtimes. Use NewOptions to apply defaults.
type Options struct {
	// HTTPClient performs the transfers behind HTTP effects.
	HTTPClient *http.Client
	// Render is invoked with a fresh ViewModel for every render effect the
	// loop executes, and once at startup.
	Render func(app.ViewModel)
	// QueueSize bounds the loop's inbox.
	QueueSize int
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// NewOptions applies the provided options over the defaults and normalizes
// the result.
func NewOptions(fns ...OptionFn) Options {
	opts := Options{
		HTTPClient: http.DefaultClient,
		QueueSize:  64,
	}
	for _, fn := range fns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 64
	}
	if opts.Render == nil {
		opts.Render = func(app.ViewModel) {}
	}
	return opts
}

// WithHTTPClient overrides the transfer client.
func WithHTTPClient(client *http.Client) OptionFn {
	return func(o *Options) { o.HTTPClient = client }
}

// WithRender installs the repaint callback.
func WithRender(fn func(app.ViewModel)) OptionFn {
	return func(o *Options) { o.Render = fn }
}

// WithQueueSize bounds the loop inbox.
func WithQueueSize(n int) OptionFn {
	return func(o *Options) { o.QueueSize = n }
}
