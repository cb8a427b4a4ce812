package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcore/pkg/app"
	"github.com/goliatone/go-formcore/pkg/event"
	"github.com/goliatone/go-formcore/pkg/field"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// SampleSuggestions returns a small, stable suggestion list for renderer and
// session tests.
func SampleSuggestions() []event.Suggestion {
	return []event.Suggestion{
		event.NewSuggestion("10 Downing Street", "London", "SW1A 2AA", "UK"),
		event.NewSuggestion("221B Baker Street", "London", "NW1 6XE", "UK"),
		event.NewSuggestion("1 Abbey Road", "London", "NW8 9AY", "UK"),
	}
}

// NewFilledApp returns an application whose fields all hold valid values.
// Commands produced while filling are discarded; callers needing effect
// execution should drive a shell instead.
func NewFilledApp(t *testing.T) *app.App {
	t.Helper()

	a := app.New()
	for _, ev := range []event.Event{
		event.UpdateValue{Field: field.IdentUsername, Value: "grace"},
		event.UpdateValue{Field: field.IdentEmail, Value: "grace@example.com"},
		event.UpdateValue{Field: field.IdentAge, Value: "36"},
		event.UpdateValue{Field: field.IdentAddress, Value: "1 Abbey Road, London"},
	} {
		a.Update(ev)
	}
	return a
}

// FilledView projects NewFilledApp into a view model.
func FilledView(t *testing.T) app.ViewModel {
	t.Helper()
	return NewFilledApp(t).View()
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (the test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents. Tests
// can assert the renderer returns and writes the same payload without
// duplicating buffer setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
