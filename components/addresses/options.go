package addresses

import "net/http"

// GuardFunc vets a request before it is served. Returning an error rejects
// the request; errors implementing HTTPError choose the status code.
type GuardFunc func(r *http.Request) error

// Options configures the handler and routing helpers.
type Options struct {
	RoutePath    string
	QueryParam   string
	LimitParam   string
	DefaultLimit int
	MaxLimit     int
	Guard        GuardFunc

	// Catalogue overrides the embedded address data when non-nil.
	Catalogue []Suggestion
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the stock configuration: the lookup route the form
// core fetches from, five results per query, and the embedded catalogue.
func DefaultOptions() Options {
	return Options{
		RoutePath:    "/api/suggestions",
		QueryParam:   "query",
		LimitParam:   "limit",
		DefaultLimit: 5,
		MaxLimit:     20,
	}
}

// NewOptions applies the provided options over the defaults and normalizes
// the result.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 5
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 20
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/suggestions"
	}
	if opts.QueryParam == "" {
		opts.QueryParam = "query"
	}
	if opts.LimitParam == "" {
		opts.LimitParam = "limit"
	}
	if opts.Catalogue != nil {
		opts.Catalogue = append([]Suggestion{}, opts.Catalogue...)
	}
	return opts
}

// WithRoutePath overrides the route the handler mounts under.
func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

// WithQueryParam overrides the search parameter name.
func WithQueryParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.QueryParam = name
	}
}

// WithLimitParam overrides the limit parameter name.
func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.LimitParam = name
	}
}

// WithDefaultLimit overrides how many results a plain query returns.
func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

// WithMaxLimit caps client-requested limits.
func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

// WithGuard installs a request guard.
func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithCatalogue replaces the embedded address data.
func WithCatalogue(catalogue []Suggestion) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if catalogue == nil {
			o.Catalogue = nil
			return
		}
		o.Catalogue = append([]Suggestion{}, catalogue...)
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
