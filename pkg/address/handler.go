// Package address owns the suggestion sub-flow: issuing lookup requests as
// HTTP effects, correlating their results back through a pending table, and
// holding the suggestion list the ViewModel displays.
package address

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/goliatone/go-formcore/pkg/effect"
	"github.com/goliatone/go-formcore/pkg/event"
	"github.com/goliatone/go-formcore/pkg/field"
)

// DefaultAPIURL is the lookup endpoint used unless the handler is configured
// with another one.
const DefaultAPIURL = "http://localhost:8000/api/suggestions"

// Handler holds the suggestion list plus the continuation state for
// in-flight fetches: a pending table keyed by request ID and a monotonic
// sequence that marks the latest fetch. Only the latest fetch's result is
// applied; everything older resolves to a silent drop. The handler is not
// safe for concurrent use; the reducer serializes access.
type Handler struct {
	suggestions []event.Suggestion
	apiURL      string

	lastID  effect.RequestID
	latest  uint64
	pending map[effect.RequestID]uint64
}

// NewHandler returns a handler fetching from apiURL, or DefaultAPIURL when
// empty.
func NewHandler(apiURL string) Handler {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return Handler{
		apiURL:  apiURL,
		pending: make(map[effect.RequestID]uint64),
	}
}

// Suggestions returns the currently displayed list.
func (h *Handler) Suggestions() []event.Suggestion { return h.suggestions }

// APIURL returns the configured lookup endpoint.
func (h *Handler) APIURL() string { return h.apiURL }

// Fetch issues a lookup for the query text, appended to the endpoint
// verbatim. Every call allocates a fresh request ID and becomes the latest
// fetch, superseding anything still in flight. No render is requested.
func (h *Handler) Fetch(query string) effect.Command {
	h.lastID++
	h.latest++
	h.pending[h.lastID] = h.latest

	return effect.Of(effect.HTTP{
		ID:     h.lastID,
		Method: http.MethodGet,
		URL:    fmt.Sprintf("%s?query=%s", h.apiURL, query),
	})
}

// Resolve maps a completed fetch back to its continuation event. Results for
// unknown or superseded requests (a newer fetch was issued, or the list was
// cleared since) are dropped: ok is false and no event is produced.
func (h *Handler) Resolve(id effect.RequestID, res effect.HTTPResult) (event.Event, bool) {
	seq, known := h.pending[id]
	delete(h.pending, id)
	if !known || seq != h.latest {
		return nil, false
	}
	return event.SuggestionsReceived{Result: decodeResult(res)}, true
}

func decodeResult(res effect.HTTPResult) event.SuggestionsResult {
	if res.Err != nil {
		return event.SuggestionsError()
	}
	if res.Status < http.StatusOK || res.Status >= http.StatusMultipleChoices {
		return event.SuggestionsError()
	}
	if len(res.Body) == 0 {
		return event.SuggestionsError()
	}
	var list []event.Suggestion
	if err := json.Unmarshal(res.Body, &list); err != nil {
		return event.SuggestionsError()
	}
	return event.SuggestionsOK(list)
}

// Received applies a fetch outcome: success replaces the list wholesale,
// failure clears it. Always renders.
func (h *Handler) Received(res event.SuggestionsResult) effect.Command {
	if res.OK {
		h.suggestions = append([]event.Suggestion(nil), res.Suggestions...)
	} else {
		h.suggestions = nil
	}
	return effect.Of(effect.Render{})
}

// Select clears the list and chains the address update carrying the combined
// string; the form handler takes it from there.
func (h *Handler) Select(s event.Suggestion) effect.Command {
	h.suggestions = nil
	return effect.Emit(event.UpdateValue{Field: field.IdentAddress, Value: s.Combined}).
		Then(effect.Of(effect.Render{}))
}

// Clear empties the list, invalidates every outstanding fetch, and renders.
// In-flight requests are not canceled; their results are dropped when they
// resolve.
func (h *Handler) Clear() effect.Command {
	h.suggestions = nil
	h.latest++
	return effect.Of(effect.Render{})
}
