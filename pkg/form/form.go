// Package form owns the four-field aggregate, its submission lifecycle, and
// the handler that translates form events into mutations and commands.
package form

import "github.com/goliatone/go-formcore/pkg/field"

// Form is the aggregate: one field per kind plus the submission flags.
// A locked form (IsEditing false) rejects value and touch changes until
// Edit or ResetForm unlocks it.
type Form struct {
	username field.Field[field.Username]
	email    field.Field[field.Email]
	age      field.Field[field.Age]
	address  field.Field[field.Address]

	submitted bool
	isEditing bool
}

// New returns the factory default: editable, nothing submitted, all fields
// untouched and clean, required-but-empty kinds already invalid with their
// canonical messages, age unset and valid.
func New() Form {
	return Form{
		username:  field.New(field.Username("")),
		email:     field.New(field.Email("")),
		age:       field.New(field.Age{}),
		address:   field.New(field.Address("")),
		isEditing: true,
	}
}

// SetValue stores raw text into the identified field. Age parses the text as
// a base-10 uint32 and downgrades to unset on failure.
func (f *Form) SetValue(id field.Ident, raw string) {
	switch id {
	case field.IdentUsername:
		f.username.SetValue(field.Username(raw))
	case field.IdentEmail:
		f.email.SetValue(field.Email(raw))
	case field.IdentAge:
		f.age.SetValue(field.ParseAge(raw))
	case field.IdentAddress:
		f.address.SetValue(field.Address(raw))
	}
}

// Touch marks the identified field as interacted with.
func (f *Form) Touch(id field.Ident) {
	switch id {
	case field.IdentUsername:
		f.username.MarkTouched()
	case field.IdentEmail:
		f.email.MarkTouched()
	case field.IdentAge:
		f.age.MarkTouched()
	case field.IdentAddress:
		f.address.MarkTouched()
	}
}

// SetFieldEditing flips the identified field's editing flag.
func (f *Form) SetFieldEditing(id field.Ident, editing bool) {
	switch id {
	case field.IdentUsername:
		f.username.SetEditing(editing)
	case field.IdentEmail:
		f.email.SetEditing(editing)
	case field.IdentAge:
		f.age.SetEditing(editing)
	case field.IdentAddress:
		f.address.SetEditing(editing)
	}
}

// TouchAll touches and re-validates every field.
func (f *Form) TouchAll() {
	f.username.MarkTouched()
	f.email.MarkTouched()
	f.age.MarkTouched()
	f.address.MarkTouched()
}

// ValidateAll re-validates every field without altering touched or dirty
// state.
func (f *Form) ValidateAll() {
	f.username.Revalidate()
	f.email.Revalidate()
	f.age.Revalidate()
	f.address.Revalidate()
}

// IsValid reports whether every field is valid.
func (f *Form) IsValid() bool {
	return f.username.Valid() && f.email.Valid() && f.age.Valid() && f.address.Valid()
}

// AnyDirty reports whether any field differs from its initial value.
func (f *Form) AnyDirty() bool {
	return f.username.Dirty() || f.email.Dirty() || f.age.Dirty() || f.address.Dirty()
}

// SetEditing sets the form flag and cascades it to every field.
func (f *Form) SetEditing(editing bool) {
	f.isEditing = editing
	f.username.SetEditing(editing)
	f.email.SetEditing(editing)
	f.age.SetEditing(editing)
	f.address.SetEditing(editing)
}

// Reset replaces the aggregate with the factory default.
func (f *Form) Reset() {
	*f = New()
}

// CanSubmit reports whether the form is editable and fully valid.
func (f *Form) CanSubmit() bool {
	return f.isEditing && f.IsValid()
}

// Username returns a copy of the username field.
func (f *Form) Username() field.Field[field.Username] { return f.username }

// Email returns a copy of the email field.
func (f *Form) Email() field.Field[field.Email] { return f.email }

// Age returns a copy of the age field.
func (f *Form) Age() field.Field[field.Age] { return f.age }

// Address returns a copy of the address field.
func (f *Form) Address() field.Field[field.Address] { return f.address }

// Submitted reports whether the last submit attempt succeeded.
func (f *Form) Submitted() bool { return f.submitted }

// IsEditing reports whether the form accepts changes.
func (f *Form) IsEditing() bool { return f.isEditing }
