package form

import (
	"github.com/goliatone/go-formcore/pkg/effect"
	"github.com/goliatone/go-formcore/pkg/event"
	"github.com/goliatone/go-formcore/pkg/field"
)

// Handler owns the form aggregate and maps form events onto it. Methods
// mutate in place and return the command describing what should follow.
type Handler struct {
	form Form
}

// NewHandler returns a handler around the factory-default form.
func NewHandler() Handler {
	return Handler{form: New()}
}

// Form exposes the aggregate for projection.
func (h *Handler) Form() *Form { return &h.form }

// UpdateValue stores raw text into a field. Locked forms ignore the event.
// Address edits chain a suggestion fetch for the new text instead of
// re-validating the whole form; the fetch precedes the render.
func (h *Handler) UpdateValue(id field.Ident, raw string) effect.Command {
	if !h.form.isEditing {
		return effect.Done()
	}

	if id == field.IdentAddress {
		h.form.SetValue(id, raw)
		return effect.Emit(event.FetchSuggestions{Query: raw}).
			Then(effect.Of(effect.Render{}))
	}

	h.form.SetValue(id, raw)
	h.form.ValidateAll()
	return effect.Of(effect.Render{})
}

// TouchField marks a field as interacted with. Locked forms ignore the event.
func (h *Handler) TouchField(id field.Ident) effect.Command {
	if !h.form.isEditing {
		return effect.Done()
	}
	h.form.Touch(id)
	return effect.Of(effect.Render{})
}

// SetFieldEditing flips a single field's editing flag. A locked form refuses
// to turn editing on; everything else goes through.
func (h *Handler) SetFieldEditing(id field.Ident, editing bool) effect.Command {
	if !h.form.isEditing && editing {
		return effect.Done()
	}
	h.form.SetFieldEditing(id, editing)
	return effect.Of(effect.Render{})
}

// Submit touches and validates every field unconditionally, then either locks
// the form (chaining a suggestion clear) or records the failed attempt.
func (h *Handler) Submit() effect.Command {
	h.form.TouchAll()
	h.form.ValidateAll()

	if h.form.IsValid() {
		h.form.submitted = true
		h.form.SetEditing(false)
		return effect.Emit(event.ClearSuggestions{}).
			Then(effect.Of(effect.Render{}))
	}

	h.form.submitted = false
	return effect.Of(effect.Render{})
}

// Edit unconditionally clears the submitted flag and unlocks the form,
// cascading the editing flag to every field. Dirty and touched state survive.
func (h *Handler) Edit() effect.Command {
	h.form.submitted = false
	h.form.SetEditing(true)
	return effect.Of(effect.Render{})
}

// Reset replaces the form with the factory default and chains a suggestion
// clear.
func (h *Handler) Reset() effect.Command {
	h.form.Reset()
	return effect.Emit(event.ClearSuggestions{}).
		Then(effect.Of(effect.Render{}))
}
