package html

import (
	"html"
	"strings"

	"github.com/goliatone/go-formcore/pkg/app"
)

const suggestionListID = "address-suggestions"

type fieldSpec struct {
	Name        string
	Label       string
	InputType   string
	Placeholder string
	ListID      string
	Min         string
	Max         string
}

// fieldControls renders the four controls in declaration order. Markup is
// built in Go so templates stay page chrome only.
func fieldControls(view app.ViewModel) []string {
	address := fieldMarkup(fieldSpec{
		Name:        "address",
		Label:       "Address",
		InputType:   "text",
		Placeholder: "Start typing for suggestions",
		ListID:      suggestionListID,
	}, view.Address, view.IsEditingForm)
	if len(view.Suggestions) > 0 {
		address += suggestionListMarkup(suggestionListID, view)
	}

	return []string{
		fieldMarkup(fieldSpec{Name: "username", Label: "Username", InputType: "text"}, view.Username, view.IsEditingForm),
		fieldMarkup(fieldSpec{Name: "email", Label: "Email", InputType: "email"}, view.Email, view.IsEditingForm),
		fieldMarkup(fieldSpec{Name: "age", Label: "Age", InputType: "number", Placeholder: "Optional", Min: "18", Max: "120"}, view.Age, view.IsEditingForm),
		address,
	}
}

func fieldMarkup(spec fieldSpec, f app.FieldViewModel, editable bool) string {
	var b strings.Builder
	b.Grow(512)

	b.WriteString(`<div class="grid gap-2" data-field="`)
	b.WriteString(html.EscapeString(spec.Name))
	b.WriteString(`" data-validation-state="`)
	b.WriteString(validationState(f))
	b.WriteString(`">
`)

	b.WriteString(`    <label for="fc-`)
	b.WriteString(html.EscapeString(spec.Name))
	b.WriteString(`" class="text-sm font-medium text-gray-900">`)
	b.WriteString(html.EscapeString(spec.Label))
	b.WriteString(`</label>
`)

	b.WriteString(`    <input type="`)
	b.WriteString(html.EscapeString(spec.InputType))
	b.WriteString(`" id="fc-`)
	b.WriteString(html.EscapeString(spec.Name))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(spec.Name))
	b.WriteString(`" value="`)
	b.WriteString(html.EscapeString(f.Value))
	b.WriteString(`" class="input`)
	if f.Touched && f.Error != "" {
		b.WriteString(" input-invalid")
	}
	b.WriteString(`"`)

	if spec.Placeholder != "" {
		b.WriteString(` placeholder="`)
		b.WriteString(html.EscapeString(spec.Placeholder))
		b.WriteString(`"`)
	}
	if spec.ListID != "" {
		b.WriteString(` list="`)
		b.WriteString(html.EscapeString(spec.ListID))
		b.WriteString(`"`)
	}
	if spec.Min != "" {
		b.WriteString(` min="`)
		b.WriteString(html.EscapeString(spec.Min))
		b.WriteString(`"`)
	}
	if spec.Max != "" {
		b.WriteString(` max="`)
		b.WriteString(html.EscapeString(spec.Max))
		b.WriteString(`"`)
	}
	if f.Dirty {
		b.WriteString(` data-dirty="true"`)
	}
	if !editable {
		b.WriteString(` disabled`)
	}
	b.WriteString(`>
`)

	if f.Touched && f.Error != "" {
		b.WriteString(`    <small class="text-sm text-red-600" data-validation-message>`)
		b.WriteString(html.EscapeString(f.Error))
		b.WriteString(`</small>
`)
	}

	b.WriteString(`</div>
`)
	return b.String()
}

func suggestionListMarkup(listID string, view app.ViewModel) string {
	var b strings.Builder
	b.Grow(64 * (len(view.Suggestions) + 1))

	b.WriteString(`<datalist id="`)
	b.WriteString(html.EscapeString(listID))
	b.WriteString(`">
`)
	for _, s := range view.Suggestions {
		b.WriteString(`    <option value="`)
		b.WriteString(html.EscapeString(s.Combined))
		b.WriteString(`"></option>
`)
	}
	b.WriteString(`</datalist>
`)
	return b.String()
}

func validationState(f app.FieldViewModel) string {
	switch {
	case !f.Touched:
		return "pristine"
	case f.Error != "":
		return "invalid"
	default:
		return "valid"
	}
}
