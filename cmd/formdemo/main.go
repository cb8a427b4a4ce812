// Command formdemo runs the interactive terminal form against a suggestion
// API (see cmd/addressd).
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-formcore/internal/config"
	"github.com/goliatone/go-formcore/pkg/app"
	"github.com/goliatone/go-formcore/pkg/renderers/tui"
)

func main() {
	var (
		configFlag = flag.String("config", "", "YAML config file (optional)")
		apiFlag    = flag.String("api", "", "suggestion API URL (overrides config)")
		titleFlag  = flag.String("title", "", "form heading (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *apiFlag != "" {
		cfg.Suggestions.URL = *apiFlag
	}
	if *titleFlag != "" {
		cfg.UI.Title = *titleFlag
	}

	session, err := tui.NewSession(
		app.New(app.WithSuggestionsURL(cfg.Suggestions.URL)),
		tui.WithTitle(cfg.UI.Title),
	)
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.Run(ctx); err != nil {
		log.Fatalf("session: %v", err)
	}
}
