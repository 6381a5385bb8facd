// Package main is the interactive terminal client for sellerdesk. It loads
// the same configuration as the server, resolves the app registry through
// samber/do v2, and hands it to the cobra command tree.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/sellerdesk/internal/adapters/cli"
	"github.com/jsamuelsen11/sellerdesk/internal/app"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/config"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/logging"
	"github.com/jsamuelsen11/sellerdesk/internal/wiring"
)

const defaultProfile = "local"

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	cfg, err := config.Load(profile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading config: %v\n", err)
		return err
	}

	// Prompts own stdout; logs stay on stderr.
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	injector := do.New()
	if err := wiring.Register(injector, cfg, logger, nil); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	defer func() { _ = wiring.CloseStore(injector, cfg) }()

	registry, err := do.Invoke[*app.Registry](injector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: resolving registry: %v\n", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// cobra prints command errors itself.
	return cli.NewRootCommand(&cli.App{Registry: registry}).ExecuteContext(ctx)
}
