package field

import (
	"regexp"
	"strconv"
)

// Value is the validation capability every field value kind implements.
// Kinds are plain comparable values; dirtiness is tracked by comparing
// against the field's initial value.
type Value interface {
	comparable
	// IsValid reports whether the value passes the kind's validation rule.
	IsValid() bool
	// ErrorMessage returns the user-facing message for an invalid value.
	// The second return is false when the value is valid.
	ErrorMessage() (string, bool)
}

// Username must be at least three bytes long.
type Username string

func (u Username) IsValid() bool { return len(u) >= 3 }

func (u Username) ErrorMessage() (string, bool) {
	switch {
	case len(u) == 0:
		return "Username cannot be empty", true
	case len(u) < 3:
		return "Username must be at least 3 characters", true
	}
	return "", false
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email must be non-empty and match a pragmatic local@domain.tld shape.
// The pattern is intentionally narrower than RFC 5322.
type Email string

func (e Email) IsValid() bool {
	return len(e) > 0 && emailPattern.MatchString(string(e))
}

func (e Email) ErrorMessage() (string, bool) {
	switch {
	case len(e) == 0:
		return "Email cannot be empty", true
	case !emailPattern.MatchString(string(e)):
		return "Please enter a valid email address (e.g. user@example.com)", true
	}
	return "", false
}

// Age is an optional number of years. The zero value is unset, which is
// valid: age is not a required field. A set age must fall within [18, 120].
type Age struct {
	years uint32
	set   bool
}

// AgeYears builds a set Age.
func AgeYears(years uint32) Age { return Age{years: years, set: true} }

// ParseAge converts raw text into an Age. Anything that does not parse as a
// base-10 uint32 downgrades to unset.
func ParseAge(s string) Age {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return Age{}
	}
	return Age{years: uint32(n), set: true}
}

// Years returns the stored years and whether the age is set.
func (a Age) Years() (uint32, bool) { return a.years, a.set }

// String renders the age as decimal text, or the empty string when unset.
func (a Age) String() string {
	if !a.set {
		return ""
	}
	return strconv.FormatUint(uint64(a.years), 10)
}

func (a Age) IsValid() bool {
	if !a.set {
		return true
	}
	return a.years >= 18 && a.years <= 120
}

func (a Age) ErrorMessage() (string, bool) {
	if a.IsValid() {
		return "", false
	}
	return "Age must be between 18 and 120", true
}

// Address must be non-empty. Content is free-form; suggestions refine it but
// any text is accepted.
type Address string

func (a Address) IsValid() bool { return len(a) > 0 }

func (a Address) ErrorMessage() (string, bool) {
	if len(a) == 0 {
		return "Address cannot be empty", true
	}
	return "", false
}
