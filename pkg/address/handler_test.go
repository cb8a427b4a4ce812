package address

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formcore/pkg/effect"
	"github.com/goliatone/go-formcore/pkg/event"
	"github.com/goliatone/go-formcore/pkg/field"
)

func commandParts(c effect.Command) ([]event.Event, []effect.Effect) {
	var events []event.Event
	var effects []effect.Effect
	c.Walk(
		func(ev event.Event) { events = append(events, ev) },
		func(e effect.Effect) { effects = append(effects, e) },
	)
	return events, effects
}

func singleHTTP(t *testing.T, c effect.Command) effect.HTTP {
	t.Helper()
	events, effects := commandParts(c)
	if len(events) != 0 || len(effects) != 1 {
		t.Fatalf("expected exactly one effect, got events=%#v effects=%#v", events, effects)
	}
	req, ok := effects[0].(effect.HTTP)
	if !ok {
		t.Fatalf("expected HTTP effect, got %#v", effects[0])
	}
	return req
}

func suggestionsBody(t *testing.T, list []event.Suggestion) []byte {
	t.Helper()
	body, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return body
}

func TestFetch_EmitsVerbatimQueryURL(t *testing.T) {
	h := NewHandler("")

	req := singleHTTP(t, h.Fetch("10 Downing"))
	if req.Method != "GET" {
		t.Fatalf("method = %q", req.Method)
	}
	if req.URL != "http://localhost:8000/api/suggestions?query=10 Downing" {
		t.Fatalf("url = %q", req.URL)
	}
}

func TestFetch_AllocatesFreshIDs(t *testing.T) {
	h := NewHandler("http://lookup.test/api")

	first := singleHTTP(t, h.Fetch("a"))
	second := singleHTTP(t, h.Fetch("ab"))
	if first.ID == second.ID {
		t.Fatalf("request IDs must be unique, both %d", first.ID)
	}
}

func TestResolve_SuccessDecodesSuggestions(t *testing.T) {
	h := NewHandler("")
	req := singleHTTP(t, h.Fetch("baker"))

	want := []event.Suggestion{
		event.NewSuggestion("221B Baker Street", "London", "NW1 6XE", "UK"),
	}
	ev, ok := h.Resolve(req.ID, effect.HTTPResult{Status: 200, Body: suggestionsBody(t, want)})
	if !ok {
		t.Fatalf("latest fetch should resolve")
	}
	received, isReceived := ev.(event.SuggestionsReceived)
	if !isReceived || !received.Result.OK {
		t.Fatalf("expected successful SuggestionsReceived, got %#v", ev)
	}
	if diff := cmp.Diff(want, received.Result.Suggestions); diff != "" {
		t.Fatalf("suggestions mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_FailureModesCollapseToError(t *testing.T) {
	cases := []struct {
		name string
		res  effect.HTTPResult
	}{
		{"transport error", effect.HTTPResult{Err: errors.New("dial tcp: timeout")}},
		{"bad status", effect.HTTPResult{Status: 500, Body: []byte(`[]`)}},
		{"empty body", effect.HTTPResult{Status: 200}},
		{"malformed body", effect.HTTPResult{Status: 200, Body: []byte(`{not json`)}},
	}

	for _, tc := range cases {
		h := NewHandler("")
		req := singleHTTP(t, h.Fetch("x"))

		ev, ok := h.Resolve(req.ID, tc.res)
		if !ok {
			t.Fatalf("%s: latest fetch should still resolve", tc.name)
		}
		received := ev.(event.SuggestionsReceived)
		if received.Result.OK || len(received.Result.Suggestions) != 0 {
			t.Fatalf("%s: expected error result, got %#v", tc.name, received.Result)
		}
	}
}

func TestResolve_SupersededFetchIsDropped(t *testing.T) {
	h := NewHandler("")
	stale := singleHTTP(t, h.Fetch("a"))
	latest := singleHTTP(t, h.Fetch("ab"))

	body := suggestionsBody(t, []event.Suggestion{event.NewSuggestion("1 Poultry", "London", "EC2R 8EJ", "UK")})
	if _, ok := h.Resolve(stale.ID, effect.HTTPResult{Status: 200, Body: body}); ok {
		t.Fatalf("superseded fetch must be dropped")
	}
	if _, ok := h.Resolve(latest.ID, effect.HTTPResult{Status: 200, Body: body}); !ok {
		t.Fatalf("latest fetch must resolve")
	}
}

func TestResolve_UnknownIDIsDropped(t *testing.T) {
	h := NewHandler("")
	if _, ok := h.Resolve(99, effect.HTTPResult{Status: 200, Body: []byte(`[]`)}); ok {
		t.Fatalf("unknown request should be dropped")
	}
}

func TestResolve_AfterClearIsDropped(t *testing.T) {
	h := NewHandler("")
	req := singleHTTP(t, h.Fetch("a"))
	h.Clear()

	if _, ok := h.Resolve(req.ID, effect.HTTPResult{Status: 200, Body: []byte(`[]`)}); ok {
		t.Fatalf("fetches issued before a clear must be dropped")
	}
}

func TestReceived_ReplacesWholesale(t *testing.T) {
	h := NewHandler("")
	h.Received(event.SuggestionsOK([]event.Suggestion{
		event.NewSuggestion("25 Old Street", "London", "EC1V 9HL", "UK"),
		event.NewSuggestion("70 Old Street", "London", "EC1V 9BD", "UK"),
	}))

	next := []event.Suggestion{event.NewSuggestion("1 Canada Square", "London", "E14 5AB", "UK")}
	cmd := h.Received(event.SuggestionsOK(next))
	if _, effects := commandParts(cmd); len(effects) != 1 {
		t.Fatalf("received should render once, got %#v", effects)
	}
	if diff := cmp.Diff(next, h.Suggestions()); diff != "" {
		t.Fatalf("list should be replaced, not merged (-want +got):\n%s", diff)
	}
}

func TestReceived_ErrorClearsList(t *testing.T) {
	h := NewHandler("")
	h.Received(event.SuggestionsOK([]event.Suggestion{event.NewSuggestion("1 Brick Lane", "London", "E1 6QL", "UK")}))

	cmd := h.Received(event.SuggestionsError())
	if _, effects := commandParts(cmd); len(effects) != 1 {
		t.Fatalf("error should still render, got %#v", effects)
	}
	if len(h.Suggestions()) != 0 {
		t.Fatalf("error should clear the list, got %#v", h.Suggestions())
	}
}

func TestSelect_ClearsAndChainsAddressUpdate(t *testing.T) {
	h := NewHandler("")
	picked := event.NewSuggestion("10 Downing Street", "London", "SW1A 2AA", "UK")
	h.Received(event.SuggestionsOK([]event.Suggestion{picked}))

	cmd := h.Select(picked)
	events, effects := commandParts(cmd)
	if len(h.Suggestions()) != 0 {
		t.Fatalf("select should clear the list")
	}
	if len(events) != 1 {
		t.Fatalf("expected one chained event, got %#v", events)
	}
	update, ok := events[0].(event.UpdateValue)
	if !ok || update.Field != field.IdentAddress {
		t.Fatalf("expected UpdateValue for the address field, got %#v", events[0])
	}
	if update.Value != "10 Downing Street, London, SW1A 2AA UK" {
		t.Fatalf("combined value = %q", update.Value)
	}
	if len(effects) != 1 {
		t.Fatalf("expected one render, got %#v", effects)
	}
}

func TestClear_EmptiesAndRenders(t *testing.T) {
	h := NewHandler("")
	h.Received(event.SuggestionsOK([]event.Suggestion{event.NewSuggestion("40 Bond Street", "London", "W1S 2QP", "UK")}))

	cmd := h.Clear()
	if _, effects := commandParts(cmd); len(effects) != 1 {
		t.Fatalf("clear should render once, got %#v", effects)
	}
	if len(h.Suggestions()) != 0 {
		t.Fatalf("clear should empty the list")
	}
}
