package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-formcore/pkg/app"
	"github.com/goliatone/go-formcore/pkg/render"
	rendertemplate "github.com/goliatone/go-formcore/pkg/render/template"
	gotemplate "github.com/goliatone/go-formcore/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	icons            map[string]string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithIcon overrides the status icon markup for one status class
// ("success", "error", "info"). Markup is sanitized before use; anything
// outside a small SVG vocabulary is stripped.
func WithIcon(class, markup string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(class) == "" {
			return
		}
		if cfg.icons == nil {
			cfg.icons = make(map[string]string)
		}
		cfg.icons[class] = markup
	}
}

// Renderer produces a standalone HTML page for a form view.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	icons     map[string]string
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	icons := make(map[string]string, len(defaultIcons))
	for class, markup := range defaultIcons {
		icons[class] = sanitizeIconMarkup(markup)
	}
	for class, markup := range cfg.icons {
		icons[class] = sanitizeIconMarkup(markup)
	}

	return &Renderer{templates: renderer, icons: icons}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the full page for the given view. The field controls are
// assembled in Go; the template only provides the page chrome.
func (r *Renderer) Render(_ context.Context, view app.ViewModel, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = "Form Entry"
	}

	method, methodOverride := submitMethod(options.Method)
	class := statusClass(view)

	themeCtx := buildThemeContext(options.Theme)
	styles := ""
	if themeCtx == nil || themeCtx.StylesheetURL == "" {
		styles = defaultStylesheet()
	}

	result, err := r.templates.RenderTemplate("templates/page.tmpl", map[string]any{
		"title":  title,
		"view":   view,
		"fields": fieldControls(view),
		"styles": styles,
		"form": map[string]any{
			"method":         method,
			"methodOverride": methodOverride,
			"action":         options.Action,
		},
		"status": map[string]any{
			"message": view.StatusMessage,
			"class":   class,
			"icon":    r.icons[class],
		},
		"theme": themeCtx,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// submitMethod maps a requested method onto what browser forms support.
// Verbs beyond GET/POST become a POST plus a hidden _method input.
func submitMethod(raw string) (method, override string) {
	switch m := strings.ToUpper(strings.TrimSpace(raw)); m {
	case "", "POST":
		return "post", ""
	case "GET":
		return "get", ""
	default:
		return "post", m
	}
}

func statusClass(view app.ViewModel) string {
	switch {
	case view.Submitted:
		return "success"
	case view.StatusMessage == app.StatusInvalid:
		return "error"
	default:
		return "info"
	}
}
