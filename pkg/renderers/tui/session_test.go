package tui

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-formcore/pkg/app"
	"github.com/goliatone/go-formcore/pkg/event"
	"github.com/goliatone/go-formcore/pkg/testsupport"
)

type stubDriver struct {
	inputs     []string
	selectIdx  []int
	confirms   []bool
	infoLog    []string
	inputPos   int
	selectPos  int
	confirmPos int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirms) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirms[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoLog = append(s.infoLog, msg)
	return nil
}

type abortingDriver struct {
	stubDriver
}

func (a *abortingDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	return 0, ErrAborted
}

func suggestionServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"street":"10 Downing Street","city":"London","postcode":"SW1A 2AA","country":"UK","combined":"10 Downing Street, London, SW1A 2AA UK"}]`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSession_FillAndSubmit(t *testing.T) {
	srv := suggestionServer(t)
	a := app.New(app.WithSuggestionsURL(srv.URL))

	// Editing menu: username, email, age, address, then the suggestion
	// picker, then submit; the locked menu quits.
	driver := &stubDriver{
		inputs:    []string{"grace", "grace@example.com", "36", "10 Downing"},
		selectIdx: []int{0, 1, 2, 3, 0, 4, 2},
	}

	var out bytes.Buffer
	session, err := NewSession(a,
		WithPromptDriver(driver),
		WithOutput(&out),
		WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := session.Run(testsupport.Context()); err != nil {
		t.Fatalf("run session: %v", err)
	}

	view := a.View()
	if !view.Submitted {
		t.Fatalf("expected submitted form, got %#v", view)
	}
	if view.IsEditingForm {
		t.Fatal("expected locked form after submit")
	}
	if view.StatusMessage != app.StatusSubmitted {
		t.Fatalf("status = %q, want %q", view.StatusMessage, app.StatusSubmitted)
	}
	if view.Address.Value != "10 Downing Street, London, SW1A 2AA UK" {
		t.Fatalf("expected selected suggestion as address, got %q", view.Address.Value)
	}
	if view.Username.Value != "grace" || view.Email.Value != "grace@example.com" || view.Age.Value != "36" {
		t.Fatalf("unexpected field values: %#v", view)
	}
	if len(view.Suggestions) != 0 {
		t.Fatalf("expected suggestions cleared by submit, got %d", len(view.Suggestions))
	}
	if !strings.Contains(out.String(), "Form Entry") || !strings.Contains(out.String(), "Status:") {
		t.Fatalf("expected painted views, got:\n%s", out.String())
	}
}

func TestSession_KeepTypedValueSkipsSelection(t *testing.T) {
	srv := suggestionServer(t)
	a := app.New(app.WithSuggestionsURL(srv.URL))

	// One suggestion plus the keep option; picking the keep option leaves
	// the typed value in place.
	driver := &stubDriver{
		inputs:    []string{"10 Downing"},
		selectIdx: []int{3, 1, 6},
	}

	session, err := NewSession(a,
		WithPromptDriver(driver),
		WithOutput(&bytes.Buffer{}),
		WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := session.Run(testsupport.Context()); err != nil {
		t.Fatalf("run session: %v", err)
	}

	view := a.View()
	if view.Address.Value != "10 Downing" {
		t.Fatalf("expected typed value to survive, got %q", view.Address.Value)
	}
	if len(view.Suggestions) != 1 {
		t.Fatalf("expected suggestions to remain, got %d", len(view.Suggestions))
	}
}

func TestSession_InvalidInputEchoesError(t *testing.T) {
	a := app.New()

	driver := &stubDriver{
		inputs:    []string{"ab"},
		selectIdx: []int{0, 6},
	}

	session, err := NewSession(a, WithPromptDriver(driver), WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := session.Run(testsupport.Context()); err != nil {
		t.Fatalf("run session: %v", err)
	}

	if len(driver.infoLog) != 1 || driver.infoLog[0] != "! Username must be at least 3 characters" {
		t.Fatalf("unexpected info log: %#v", driver.infoLog)
	}

	view := a.View()
	if view.Username.Value != "ab" || !view.Username.Touched || view.Username.Valid {
		t.Fatalf("expected touched invalid username, got %#v", view.Username)
	}
}

func TestSession_ResetRequiresConfirmation(t *testing.T) {
	a := app.New()

	// First reset is declined, second accepted.
	driver := &stubDriver{
		inputs:    []string{"grace"},
		selectIdx: []int{0, 5, 5, 6},
		confirms:  []bool{false, true},
	}

	session, err := NewSession(a, WithPromptDriver(driver), WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := session.Run(testsupport.Context()); err != nil {
		t.Fatalf("run session: %v", err)
	}

	if driver.confirmPos != 2 {
		t.Fatalf("expected 2 confirmations, got %d", driver.confirmPos)
	}
	if got := a.View().Username.Value; got != "" {
		t.Fatalf("expected reset form, username = %q", got)
	}
}

func TestSession_LockedMenuUnlocks(t *testing.T) {
	a := testsupport.NewFilledApp(t)
	a.Update(event.Submit{})

	driver := &stubDriver{
		selectIdx: []int{0, 6},
	}

	session, err := NewSession(a, WithPromptDriver(driver), WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := session.Run(testsupport.Context()); err != nil {
		t.Fatalf("run session: %v", err)
	}

	view := a.View()
	if view.Submitted {
		t.Fatal("expected submitted flag cleared")
	}
	if !view.IsEditingForm {
		t.Fatal("expected unlocked form")
	}
}

func TestSession_AbortEndsCleanly(t *testing.T) {
	session, err := NewSession(app.New(),
		WithPromptDriver(&abortingDriver{}),
		WithOutput(&bytes.Buffer{}),
	)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := session.Run(testsupport.Context()); err != nil {
		t.Fatalf("expected clean exit on abort, got %v", err)
	}
}
