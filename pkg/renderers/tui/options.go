package tui

import (
	"io"
	"net/http"
)

// Option configures a Session.
type Option func(*config)

type config struct {
	driver PromptDriver
	out    io.Writer
	client *http.Client
	title  string
}

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(cfg *config) {
		if driver != nil {
			cfg.driver = driver
		}
	}
}

// WithOutput redirects the view snapshots painted between prompts.
func WithOutput(w io.Writer) Option {
	return func(cfg *config) {
		if w != nil {
			cfg.out = w
		}
	}
}

// WithHTTPClient overrides the client used for suggestion fetches.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.client = client
	}
}

// WithTitle overrides the heading painted above the form.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if title != "" {
			cfg.title = title
		}
	}
}
