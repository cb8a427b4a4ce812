package app

import (
	"github.com/goliatone/go-formcore/pkg/event"
	"github.com/goliatone/go-formcore/pkg/field"
	"github.com/goliatone/go-formcore/pkg/form"
)

// Status messages, highest priority first.
const (
	StatusSubmitted = "Form Submitted Successfully!"
	StatusViewOnly  = "Form data (View only)"
	StatusUnsaved   = "Form has unsaved changes"
	StatusInvalid   = "Please correct the errors."
	StatusFillOut   = "Please fill out the form."
)

// FieldViewModel is the render-ready projection of one field. Values are
// stringified (an unset age renders empty); Error is empty when valid.
type FieldViewModel struct {
	Value        string `json:"value"`
	InitialValue string `json:"initialValue"`
	Touched      bool   `json:"touched"`
	Dirty        bool   `json:"dirty"`
	Error        string `json:"error,omitempty"`
	Valid        bool   `json:"valid"`
	Editing      bool   `json:"editing"`
}

// ViewModel is the full render-ready projection of the model, the only
// channel shells read state through.
type ViewModel struct {
	Username      FieldViewModel     `json:"username"`
	Email         FieldViewModel     `json:"email"`
	Age           FieldViewModel     `json:"age"`
	Address       FieldViewModel     `json:"address"`
	Submitted     bool               `json:"submitted"`
	IsEditingForm bool               `json:"isEditingForm"`
	StatusMessage string             `json:"statusMessage"`
	CanSubmit     bool               `json:"canSubmit"`
	Suggestions   []event.Suggestion `json:"suggestions"`
}

// View projects the current model. Pure: repeated calls without intervening
// events return equal values.
func (a *App) View() ViewModel {
	f := a.form.Form()

	suggestions := make([]event.Suggestion, len(a.address.Suggestions()))
	copy(suggestions, a.address.Suggestions())

	return ViewModel{
		Username:      fieldVM(f.Username(), func(v field.Username) string { return string(v) }),
		Email:         fieldVM(f.Email(), func(v field.Email) string { return string(v) }),
		Age:           fieldVM(f.Age(), field.Age.String),
		Address:       fieldVM(f.Address(), func(v field.Address) string { return string(v) }),
		Submitted:     f.Submitted(),
		IsEditingForm: f.IsEditing(),
		StatusMessage: statusMessage(f),
		CanSubmit:     f.CanSubmit(),
		Suggestions:   suggestions,
	}
}

func fieldVM[T field.Value](f field.Field[T], render func(T) string) FieldViewModel {
	return FieldViewModel{
		Value:        render(f.Value()),
		InitialValue: render(f.Initial()),
		Touched:      f.Touched(),
		Dirty:        f.Dirty(),
		Error:        f.ErrorMessage(),
		Valid:        f.Valid(),
		Editing:      f.Editing(),
	}
}

func statusMessage(f *form.Form) string {
	switch {
	case f.Submitted():
		return StatusSubmitted
	case !f.IsEditing():
		return StatusViewOnly
	case f.AnyDirty():
		return StatusUnsaved
	case !f.IsValid():
		return StatusInvalid
	}
	return StatusFillOut
}
