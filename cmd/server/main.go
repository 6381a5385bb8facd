// Command server serves the department and seller registry over HTTP. The
// configuration profile comes from APP_PROFILE; SIGINT or SIGTERM drains
// in-flight requests before exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/sellerdesk/internal/adapters/http"
	"github.com/jsamuelsen11/sellerdesk/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/sellerdesk/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/sellerdesk/internal/app"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/config"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/logging"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/telemetry"
	"github.com/jsamuelsen11/sellerdesk/internal/ports"
	"github.com/jsamuelsen11/sellerdesk/internal/wiring"
)

const (
	drainTimeout = 15 * time.Second
	flushTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, remote, prod)")
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
		defer cancel()
		if err := tel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	if err := wiring.Register(injector, cfg, logger, tel.Metrics); err != nil {
		return fmt.Errorf("registering dependencies: %w", err)
	}
	provideHTTP(injector, cfg, logger, tel.Metrics)

	// Resolving the server builds the whole graph, store included.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}
	defer func() {
		if err := wiring.CloseStore(injector, cfg); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}()
	logger.Info("store ready", slog.String("driver", cfg.Store.Driver))

	if err := server.Run(ctx, drainTimeout); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// provideHTTP adds the handlers, the middleware-wrapped router and the
// server on top of the providers from wiring.Register.
func provideHTTP(injector do.Injector, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(injector, fromRegistry(handlers.NewDepartmentHandler))
	do.Provide(injector, fromRegistry(handlers.NewSellerHandler))
	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		departments, err := do.Invoke[*handlers.DepartmentHandler](i)
		if err != nil {
			return nil, err
		}
		sellers, err := do.Invoke[*handlers.SellerHandler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewRouter(departments, sellers,
			do.MustInvoke[*handlers.HealthHandler](i),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// fromRegistry adapts a handler constructor into a provider that resolves
// the app registry first, surfacing store startup errors.
func fromRegistry[T any](build func(*app.Registry) T) func(do.Injector) (T, error) {
	return func(i do.Injector) (T, error) {
		registry, err := do.Invoke[*app.Registry](i)
		if err != nil {
			var zero T
			return zero, err
		}
		return build(registry), nil
	}
}
