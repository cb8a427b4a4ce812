// Package field provides the validated field container used by the form
// aggregate: a value paired with the state the UI needs to draw it (touched,
// dirty, validity, the current validation message, and an editing flag).
//
// Field values come from a closed set of kinds (Username, Email, Age,
// Address), each implementing the Value capability. Validation is total:
// setting or touching a field always succeeds and recomputes validity
// in place, so an invalid value is ordinary state rather than an error.
package field
