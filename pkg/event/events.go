// Package event declares the inbound event surface of the form core: the
// closed set of messages shells and chained handlers dispatch through the
// root reducer, plus the address suggestion value type those events carry.
package event

import (
	"fmt"

	"github.com/goliatone/go-formcore/pkg/field"
)

// Event is a marker for the closed set of reducer inputs. Events are plain
// serializable data; they carry no behavior and no references into the model.
type Event interface {
	isEvent()
}

// UpdateValue replaces a field's raw text. The age field parses the text as
// an optional uint32; everything else stores it verbatim.
type UpdateValue struct {
	Field field.Ident
	Value string
}

// TouchField marks a field as interacted with.
type TouchField struct {
	Field field.Ident
}

// SetFieldEditing flips a single field's editing flag.
type SetFieldEditing struct {
	Field   field.Ident
	Editing bool
}

// Submit attempts to finalize the form.
type Submit struct{}

// Edit unlocks a submitted form for further changes.
type Edit struct{}

// ResetForm discards all state and returns to the factory default.
type ResetForm struct{}

// FetchSuggestions asks for address suggestions matching the query text.
type FetchSuggestions struct {
	Query string
}

// SuggestionsReceived delivers the outcome of an earlier fetch.
type SuggestionsReceived struct {
	Result SuggestionsResult
}

// SelectSuggestion adopts one suggestion as the address value.
type SelectSuggestion struct {
	Suggestion Suggestion
}

// ClearSuggestions empties the suggestion list.
type ClearSuggestions struct{}

func (UpdateValue) isEvent()         {}
func (TouchField) isEvent()          {}
func (SetFieldEditing) isEvent()     {}
func (Submit) isEvent()              {}
func (Edit) isEvent()                {}
func (ResetForm) isEvent()           {}
func (FetchSuggestions) isEvent()    {}
func (SuggestionsReceived) isEvent() {}
func (SelectSuggestion) isEvent()    {}
func (ClearSuggestions) isEvent()    {}

// Suggestion is one address candidate as served by the lookup service.
// Combined is derived once at construction and compared structurally with
// the other fields; it is never recomputed after decoding.
type Suggestion struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
	Combined string `json:"combined"`
}

// NewSuggestion derives the combined display string from the parts.
func NewSuggestion(street, city, postcode, country string) Suggestion {
	return Suggestion{
		Street:   street,
		City:     city,
		Postcode: postcode,
		Country:  country,
		Combined: fmt.Sprintf("%s, %s, %s %s", street, city, postcode, country),
	}
}

// SuggestionsResult is the outcome of an address fetch: a suggestion list on
// success, or a collapsed failure. Transport errors, bad statuses, missing
// bodies, and decode failures are indistinguishable at this layer.
type SuggestionsResult struct {
	Suggestions []Suggestion
	OK          bool
}

// SuggestionsOK wraps a successfully decoded suggestion list. An empty list
// is still a success.
func SuggestionsOK(list []Suggestion) SuggestionsResult {
	return SuggestionsResult{Suggestions: list, OK: true}
}

// SuggestionsError is the collapsed failure result.
func SuggestionsError() SuggestionsResult {
	return SuggestionsResult{}
}
