// Command addressd serves the address suggestion API the form core fetches
// from.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-formcore/components/addresses"
	"github.com/goliatone/go-formcore/internal/config"
)

func main() {
	var (
		configFlag    = flag.String("config", "", "YAML config file (optional)")
		addrFlag      = flag.String("addr", "", "HTTP listen address (overrides config)")
		basePathFlag  = flag.String("base-path", "", "route prefix (overrides config)")
		limitFlag     = flag.Int("limit", 0, "default result count (overrides config)")
		shutdownGrace = flag.Duration("grace", 5*time.Second, "shutdown grace period")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *addrFlag != "" {
		cfg.Server.Addr = *addrFlag
	}
	if *basePathFlag != "" {
		cfg.Server.BasePath = *basePathFlag
	}
	if *limitFlag > 0 {
		cfg.Suggestions.Limit = *limitFlag
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	route, op, err := addresses.ContractRoute(ctx)
	if err != nil {
		log.Fatalf("contract: %v", err)
	}
	log.Printf("contract: %s documented at GET %s", op.OperationID, route)

	fns := []addresses.OptionFn{addresses.WithDefaultLimit(cfg.Suggestions.Limit)}
	pattern := addresses.MountPath(cfg.Server.BasePath, fns...)

	handler := addresses.HandlerWithOptions(addresses.NewOptions(fns...))
	if cfg.Server.CORS {
		handler = addresses.AllowCORS(handler)
	}

	mux := http.NewServeMux()
	mux.Handle(pattern, handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: mux,
	}

	log.Printf("listening on %s (suggestions at %s, limit %d)", cfg.Server.Addr, pattern, cfg.Suggestions.Limit)

	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		log.Fatalf("listen: %v", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), *shutdownGrace)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
