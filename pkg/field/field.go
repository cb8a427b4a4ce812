package field

// Ident names one of the form's fields. Events address fields through idents
// rather than references so they stay serializable.
type Ident string

const (
	IdentUsername Ident = "username"
	IdentEmail    Ident = "email"
	IdentAge      Ident = "age"
	IdentAddress  Ident = "address"
)

// Idents returns the form's field identifiers in display order.
func Idents() []Ident {
	return []Ident{IdentUsername, IdentEmail, IdentAge, IdentAddress}
}

// Field pairs a value with its derived UI state. Mutations keep two
// invariants: Dirty reports whether the value differs from the initial one,
// and Valid plus the validation message always reflect the current value.
type Field[T Value] struct {
	value   T
	initial T
	touched bool
	dirty   bool
	errMsg  string
	valid   bool
	editing bool
}

// New builds a field whose value and initial value are both v, untouched and
// clean. The value is validated immediately, so required-but-empty kinds
// start out invalid with their message already set.
func New[T Value](v T) Field[T] {
	f := Field[T]{value: v, initial: v}
	f.validate()
	return f
}

// SetValue stores v, recomputes dirtiness against the initial value, and
// re-validates.
func (f *Field[T]) SetValue(v T) {
	f.value = v
	f.dirty = v != f.initial
	f.validate()
}

// MarkTouched records that the user has interacted with the field and
// re-validates.
func (f *Field[T]) MarkTouched() {
	f.touched = true
	f.validate()
}

// SetEditing flips the per-field editing flag. It does not re-validate.
func (f *Field[T]) SetEditing(editing bool) {
	f.editing = editing
}

// Revalidate recomputes validity and the message for the current value
// without altering touched or dirty state.
func (f *Field[T]) Revalidate() {
	f.validate()
}

func (f *Field[T]) validate() {
	f.valid = f.value.IsValid()
	if msg, invalid := f.value.ErrorMessage(); invalid {
		f.errMsg = msg
	} else {
		f.errMsg = ""
	}
}

// Value returns the current value.
func (f Field[T]) Value() T { return f.value }

// Initial returns the value the field was constructed with.
func (f Field[T]) Initial() T { return f.initial }

// Touched reports whether the user has interacted with the field.
func (f Field[T]) Touched() bool { return f.touched }

// Dirty reports whether the current value differs from the initial one.
func (f Field[T]) Dirty() bool { return f.dirty }

// Valid reports whether the current value passes validation.
func (f Field[T]) Valid() bool { return f.valid }

// Editing reports the per-field editing flag.
func (f Field[T]) Editing() bool { return f.editing }

// ErrorMessage returns the current validation message, or the empty string
// when the value is valid.
func (f Field[T]) ErrorMessage() string { return f.errMsg }
