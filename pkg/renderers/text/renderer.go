// Package text renders form views as plain text, suitable for terminals,
// logs, and curl.
package text

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-formcore/pkg/app"
	"github.com/goliatone/go-formcore/pkg/render"
)

const labelWidth = 8

// Renderer writes a fixed-width textual projection of the view.
type Renderer struct{}

func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, view app.ViewModel, options render.RenderOptions) ([]byte, error) {
	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = "Form Entry"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", title, strings.Repeat("=", utf8.RuneCountInString(title)))
	fmt.Fprintf(&b, "Status: %s\n\n", view.StatusMessage)

	writeField(&b, "Username", view.Username)
	writeField(&b, "Email", view.Email)
	writeField(&b, "Age", view.Age)
	writeField(&b, "Address", view.Address)

	if len(view.Suggestions) > 0 {
		b.WriteString("\nSuggestions:\n")
		for i, s := range view.Suggestions {
			fmt.Fprintf(&b, "  [%d] %s\n", i+1, s.Combined)
		}
	}

	fmt.Fprintf(&b, "\nActions: %s\n", actions(view))
	return []byte(b.String()), nil
}

// writeField emits one row. Empty values render as a dash so rows keep their
// shape; errors only surface once the field has been touched.
func writeField(b *strings.Builder, label string, f app.FieldViewModel) {
	value := f.Value
	if value == "" {
		value = "-"
	}

	fmt.Fprintf(b, "  %-*s : %s", labelWidth, label, value)
	if f.Dirty {
		b.WriteString(" *")
	}
	b.WriteString("\n")

	if f.Touched && f.Error != "" {
		fmt.Fprintf(b, "%s! %s\n", strings.Repeat(" ", labelWidth+5), f.Error)
	}
}

func actions(view app.ViewModel) string {
	if view.IsEditingForm {
		return "submit, reset"
	}
	return "edit, reset"
}
