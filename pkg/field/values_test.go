package field

import "testing"

func TestUsername_Validation(t *testing.T) {
	cases := []struct {
		value   Username
		valid   bool
		message string
	}{
		{"", false, "Username cannot be empty"},
		{"ab", false, "Username must be at least 3 characters"},
		{"abc", true, ""},
		{"a longer name", true, ""},
	}

	for _, tc := range cases {
		if got := tc.value.IsValid(); got != tc.valid {
			t.Fatalf("Username(%q).IsValid() = %v, want %v", tc.value, got, tc.valid)
		}
		msg, invalid := tc.value.ErrorMessage()
		if invalid == tc.valid {
			t.Fatalf("Username(%q).ErrorMessage() invalid = %v, want %v", tc.value, invalid, !tc.valid)
		}
		if msg != tc.message {
			t.Fatalf("Username(%q) message = %q, want %q", tc.value, msg, tc.message)
		}
	}
}

func TestEmail_Validation(t *testing.T) {
	cases := []struct {
		value   Email
		valid   bool
		message string
	}{
		{"", false, "Email cannot be empty"},
		{"not-an-email", false, "Please enter a valid email address (e.g. user@example.com)"},
		{"user@host", false, "Please enter a valid email address (e.g. user@example.com)"},
		{"user@example.c", false, "Please enter a valid email address (e.g. user@example.com)"},
		{"user@example.com", true, ""},
		{"first.last+tag@sub.example.co", true, ""},
	}

	for _, tc := range cases {
		if got := tc.value.IsValid(); got != tc.valid {
			t.Fatalf("Email(%q).IsValid() = %v, want %v", tc.value, got, tc.valid)
		}
		msg, _ := tc.value.ErrorMessage()
		if msg != tc.message {
			t.Fatalf("Email(%q) message = %q, want %q", tc.value, msg, tc.message)
		}
	}
}

func TestAge_UnsetIsValid(t *testing.T) {
	var a Age
	if !a.IsValid() {
		t.Fatalf("unset age should be valid")
	}
	if msg, invalid := a.ErrorMessage(); invalid {
		t.Fatalf("unset age should carry no message, got %q", msg)
	}
	if a.String() != "" {
		t.Fatalf("unset age should render empty, got %q", a.String())
	}
}

func TestAge_RangeBounds(t *testing.T) {
	cases := []struct {
		years uint32
		valid bool
	}{
		{17, false},
		{18, true},
		{42, true},
		{120, true},
		{121, false},
		{0, false},
	}

	for _, tc := range cases {
		a := AgeYears(tc.years)
		if got := a.IsValid(); got != tc.valid {
			t.Fatalf("AgeYears(%d).IsValid() = %v, want %v", tc.years, got, tc.valid)
		}
		if !tc.valid {
			msg, invalid := a.ErrorMessage()
			if !invalid || msg != "Age must be between 18 and 120" {
				t.Fatalf("AgeYears(%d) message = %q invalid=%v", tc.years, msg, invalid)
			}
		}
	}
}

func TestParseAge_MalformedBecomesUnset(t *testing.T) {
	for _, raw := range []string{"", "abc", "-5", " 30", "12.5", "4294967296"} {
		a := ParseAge(raw)
		if _, set := a.Years(); set {
			t.Fatalf("ParseAge(%q) should be unset, got %#v", raw, a)
		}
	}

	a := ParseAge("30")
	years, set := a.Years()
	if !set || years != 30 {
		t.Fatalf("ParseAge(%q) = %#v, want 30 set", "30", a)
	}
	if a.String() != "30" {
		t.Fatalf("ParseAge(%q).String() = %q", "30", a.String())
	}
}

func TestAddress_Validation(t *testing.T) {
	var empty Address
	if empty.IsValid() {
		t.Fatalf("empty address should be invalid")
	}
	msg, invalid := empty.ErrorMessage()
	if !invalid || msg != "Address cannot be empty" {
		t.Fatalf("empty address message = %q invalid=%v", msg, invalid)
	}

	full := Address("10 Downing Street, London, SW1A 2AA UK")
	if !full.IsValid() {
		t.Fatalf("non-empty address should be valid")
	}
	if msg, invalid := full.ErrorMessage(); invalid {
		t.Fatalf("valid address should carry no message, got %q", msg)
	}
}
