package formcore_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	formcore "github.com/goliatone/go-formcore"
)

func TestDefaultRegistry(t *testing.T) {
	registry, err := formcore.DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry() error = %v", err)
	}

	for _, name := range []string{"html", "text"} {
		renderer, err := registry.Get(name)
		if err != nil {
			t.Fatalf("registry missing %q renderer: %v", name, err)
		}
		if renderer.Name() != name {
			t.Fatalf("renderer name = %q, want %q", renderer.Name(), name)
		}
		if renderer.ContentType() == "" {
			t.Fatalf("%q renderer has empty content type", name)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	view := formcore.NewApp().View()

	out, err := formcore.RenderHTML(context.Background(), view, formcore.RenderOptions{Title: "Demo"})
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	page := string(out)
	if !strings.Contains(page, "<title>Demo</title>") {
		t.Fatalf("page missing title:\n%s", page)
	}
	if !strings.Contains(page, "form-shell") {
		t.Fatalf("page missing form shell markup:\n%s", page)
	}
}

func TestRenderText(t *testing.T) {
	a := formcore.NewApp()
	a.Update(formcore.UpdateValue{Field: formcore.FieldUsername, Value: "grace"})

	out, err := formcore.RenderText(context.Background(), a.View(), formcore.RenderOptions{})
	if err != nil {
		t.Fatalf("RenderText() error = %v", err)
	}

	summary := string(out)
	if !strings.Contains(summary, "Status:") {
		t.Fatalf("summary missing status line:\n%s", summary)
	}
	if !strings.Contains(summary, "grace") {
		t.Fatalf("summary missing field value:\n%s", summary)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	raw, err := fs.ReadFile(formcore.EmbeddedTemplates(), "templates/page.tmpl")
	if err != nil {
		t.Fatalf("read page template: %v", err)
	}
	if !strings.Contains(string(raw), "<form") {
		t.Fatalf("page template missing form markup")
	}
}

func TestAssetsFS(t *testing.T) {
	raw, err := fs.ReadFile(formcore.AssetsFS(), formcore.StylesheetName)
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(raw), ".form-shell") {
		t.Fatalf("stylesheet missing form shell rules")
	}
}
