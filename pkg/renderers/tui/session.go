// Package tui runs an interactive terminal session over the form core.
// Prompts feed events into a synchronous shell, so every answer settles
// (including any suggestion fetch it triggers) before the next prompt.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-formcore/pkg/app"
	"github.com/goliatone/go-formcore/pkg/event"
	"github.com/goliatone/go-formcore/pkg/field"
	"github.com/goliatone/go-formcore/pkg/render"
	"github.com/goliatone/go-formcore/pkg/renderers/text"
	"github.com/goliatone/go-formcore/pkg/shell"
)

const (
	menuEditUsername = "Edit username"
	menuEditEmail    = "Edit email"
	menuEditAge      = "Edit age"
	menuEditAddress  = "Edit address"
	menuSubmit       = "Submit"
	menuUnlock       = "Edit form"
	menuReset        = "Reset"
	menuQuit         = "Quit"

	keepTypedValue = "Keep typed value"
)

// Session owns an interactive run over one form. Not safe for concurrent
// use.
type Session struct {
	driver   PromptDriver
	shell    *shell.Sync
	renderer *text.Renderer
	out      io.Writer
	title    string
}

// NewSession wraps a, which must not be touched by anyone else afterwards.
func NewSession(a *app.App, options ...Option) (*Session, error) {
	cfg := config{
		out:   os.Stdout,
		title: "Form Entry",
	}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	driver := cfg.driver
	if driver == nil {
		d, err := newSurveyDriver()
		if err != nil {
			return nil, fmt.Errorf("tui: create prompt driver: %w", err)
		}
		driver = d
	}

	var shellOpts []shell.OptionFn
	if cfg.client != nil {
		shellOpts = append(shellOpts, shell.WithHTTPClient(cfg.client))
	}

	return &Session{
		driver:   driver,
		shell:    shell.NewSync(a, shellOpts...),
		renderer: text.New(),
		out:      cfg.out,
		title:    cfg.title,
	}, nil
}

// Run paints the form and prompts for actions until the user quits or
// aborts. Aborting a prompt ends the session cleanly.
func (s *Session) Run(ctx context.Context) error {
	for {
		view := s.shell.View()
		if err := s.paint(ctx, view); err != nil {
			return err
		}

		menu := menuOptions(view)
		choice, err := s.driver.Select(ctx, SelectConfig{
			Message:  "Action",
			Options:  menu,
			PageSize: len(menu),
		})
		if err != nil {
			return quitOnAbort(err)
		}
		if choice < 0 || choice >= len(menu) {
			continue
		}

		done, err := s.apply(ctx, view, menu[choice])
		if err != nil {
			return quitOnAbort(err)
		}
		if done {
			return nil
		}
	}
}

func (s *Session) apply(ctx context.Context, view app.ViewModel, action string) (bool, error) {
	switch action {
	case menuEditUsername:
		return false, s.editField(ctx, field.IdentUsername, "Username", view.Username, "")
	case menuEditEmail:
		return false, s.editField(ctx, field.IdentEmail, "Email", view.Email, "")
	case menuEditAge:
		return false, s.editField(ctx, field.IdentAge, "Age", view.Age, "Optional. 18-120, leave empty to unset.")
	case menuEditAddress:
		return false, s.editAddress(ctx, view.Address)
	case menuSubmit:
		s.shell.Dispatch(ctx, event.Submit{})
		return false, nil
	case menuUnlock:
		s.shell.Dispatch(ctx, event.Edit{})
		return false, nil
	case menuReset:
		ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: "Discard all changes?"})
		if err != nil {
			return false, err
		}
		if ok {
			s.shell.Dispatch(ctx, event.ResetForm{})
		}
		return false, nil
	case menuQuit:
		return true, nil
	}
	return false, nil
}

// editField prompts for a new value and feeds it through the reducer. The
// model keeps invalid input and its message, so there is no retry loop; the
// error is echoed and shows on the next paint.
func (s *Session) editField(ctx context.Context, id field.Ident, label string, current app.FieldViewModel, help string) error {
	value, err := s.driver.Input(ctx, InputConfig{
		Message: label,
		Default: current.Value,
		Help:    help,
	})
	if err != nil {
		return err
	}

	s.shell.Dispatch(ctx, event.UpdateValue{Field: id, Value: value})
	view := s.shell.Dispatch(ctx, event.TouchField{Field: id})

	if f := fieldFor(view, id); f.Touched && f.Error != "" {
		return s.driver.Info(ctx, "! "+f.Error)
	}
	return nil
}

// editAddress is editField plus the suggestion picker. Dispatching the typed
// value runs the fetch inline, so the settled view already carries any
// suggestions.
func (s *Session) editAddress(ctx context.Context, current app.FieldViewModel) error {
	value, err := s.driver.Input(ctx, InputConfig{
		Message: "Address",
		Default: current.Value,
	})
	if err != nil {
		return err
	}

	s.shell.Dispatch(ctx, event.UpdateValue{Field: field.IdentAddress, Value: value})
	view := s.shell.Dispatch(ctx, event.TouchField{Field: field.IdentAddress})

	if len(view.Suggestions) == 0 {
		if f := view.Address; f.Touched && f.Error != "" {
			return s.driver.Info(ctx, "! "+f.Error)
		}
		return nil
	}

	options := make([]string, 0, len(view.Suggestions)+1)
	for _, sug := range view.Suggestions {
		options = append(options, sug.Combined)
	}
	options = append(options, keepTypedValue)

	idx, err := s.driver.Select(ctx, SelectConfig{
		Message:      "Pick an address",
		Options:      options,
		DefaultIndex: len(options) - 1,
		PageSize:     8,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(view.Suggestions) {
		return nil
	}

	s.shell.Dispatch(ctx, event.SelectSuggestion{Suggestion: view.Suggestions[idx]})
	return nil
}

func (s *Session) paint(ctx context.Context, view app.ViewModel) error {
	out, err := s.renderer.Render(ctx, view, render.RenderOptions{Title: s.title})
	if err != nil {
		return fmt.Errorf("tui: render view: %w", err)
	}
	if _, err := fmt.Fprintf(s.out, "\n%s", out); err != nil {
		return fmt.Errorf("tui: paint view: %w", err)
	}
	return nil
}

func menuOptions(view app.ViewModel) []string {
	if !view.IsEditingForm {
		return []string{menuUnlock, menuReset, menuQuit}
	}
	return []string{
		menuEditUsername, menuEditEmail, menuEditAge, menuEditAddress,
		menuSubmit, menuReset, menuQuit,
	}
}

func fieldFor(view app.ViewModel, id field.Ident) app.FieldViewModel {
	switch id {
	case field.IdentUsername:
		return view.Username
	case field.IdentEmail:
		return view.Email
	case field.IdentAge:
		return view.Age
	case field.IdentAddress:
		return view.Address
	}
	return app.FieldViewModel{}
}

func quitOnAbort(err error) error {
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}
