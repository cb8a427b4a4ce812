package form

import (
	"testing"

	"github.com/goliatone/go-formcore/pkg/field"
)

func TestNew_DefaultState(t *testing.T) {
	f := New()

	if !f.IsEditing() {
		t.Fatalf("fresh form should be editable")
	}
	if f.Submitted() {
		t.Fatalf("fresh form should not be submitted")
	}
	if f.AnyDirty() {
		t.Fatalf("fresh form should be clean")
	}
	if f.IsValid() || f.CanSubmit() {
		t.Fatalf("fresh form has empty required fields, IsValid=%v CanSubmit=%v", f.IsValid(), f.CanSubmit())
	}

	if msg := f.Username().ErrorMessage(); msg != "Username cannot be empty" {
		t.Fatalf("username message = %q", msg)
	}
	if msg := f.Email().ErrorMessage(); msg != "Email cannot be empty" {
		t.Fatalf("email message = %q", msg)
	}
	if msg := f.Address().ErrorMessage(); msg != "Address cannot be empty" {
		t.Fatalf("address message = %q", msg)
	}
	if !f.Age().Valid() || f.Age().ErrorMessage() != "" {
		t.Fatalf("unset age should be valid, msg=%q", f.Age().ErrorMessage())
	}

	for _, fieldTouched := range []bool{f.Username().Touched(), f.Email().Touched(), f.Age().Touched(), f.Address().Touched()} {
		if fieldTouched {
			t.Fatalf("fresh form fields should be untouched")
		}
	}
}

func TestSetValue_PerIdent(t *testing.T) {
	f := New()

	f.SetValue(field.IdentUsername, "alice")
	if got := f.Username().Value(); got != "alice" {
		t.Fatalf("username = %q", got)
	}

	f.SetValue(field.IdentAge, "42")
	years, set := f.Age().Value().Years()
	if !set || years != 42 {
		t.Fatalf("age = %#v", f.Age().Value())
	}

	f.SetValue(field.IdentAge, "not a number")
	if _, set := f.Age().Value().Years(); set {
		t.Fatalf("malformed age text should downgrade to unset")
	}
	if !f.Age().Valid() {
		t.Fatalf("unset age should be valid")
	}
}

func TestTouchAll_TouchesEveryField(t *testing.T) {
	f := New()
	f.TouchAll()

	if !f.Username().Touched() || !f.Email().Touched() || !f.Age().Touched() || !f.Address().Touched() {
		t.Fatalf("expected every field touched")
	}
	if f.AnyDirty() {
		t.Fatalf("touching must not dirty fields")
	}
}

func TestValidateAll_DoesNotTouch(t *testing.T) {
	f := New()
	f.ValidateAll()

	if f.Username().Touched() {
		t.Fatalf("ValidateAll must not touch fields")
	}
	if f.Username().Valid() {
		t.Fatalf("empty username should remain invalid")
	}
}

func TestSetEditing_CascadesToFields(t *testing.T) {
	f := New()

	f.SetEditing(false)
	if f.IsEditing() {
		t.Fatalf("form flag should be off")
	}
	if f.Username().Editing() || f.Email().Editing() || f.Age().Editing() || f.Address().Editing() {
		t.Fatalf("field flags should cascade off")
	}

	f.SetEditing(true)
	if !f.Username().Editing() || !f.Address().Editing() {
		t.Fatalf("field flags should cascade on")
	}
}

func TestCanSubmit_RequiresEditableAndValid(t *testing.T) {
	f := New()
	f.SetValue(field.IdentUsername, "alice")
	f.SetValue(field.IdentEmail, "alice@example.com")
	f.SetValue(field.IdentAddress, "1 Poultry, London, EC2R 8EJ UK")

	if !f.CanSubmit() {
		t.Fatalf("valid editable form should allow submit")
	}

	f.SetEditing(false)
	if f.CanSubmit() {
		t.Fatalf("locked form should not allow submit")
	}
}

func TestReset_RestoresFactoryDefault(t *testing.T) {
	f := New()
	f.SetValue(field.IdentUsername, "alice")
	f.TouchAll()
	f.SetEditing(false)

	f.Reset()

	if !f.IsEditing() || f.Submitted() || f.AnyDirty() {
		t.Fatalf("reset form should be editable, unsubmitted, clean")
	}
	if f.Username().Value() != "" || f.Username().Touched() {
		t.Fatalf("reset should clear values and touches")
	}
	if msg := f.Address().ErrorMessage(); msg != "Address cannot be empty" {
		t.Fatalf("reset should restore the canonical empty message, got %q", msg)
	}
}
