// Package wiring registers the providers shared by the HTTP server and the
// CLI: the health registry, the config-selected stores and the app registry.
package wiring

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/sellerdesk/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/sellerdesk/internal/adapters/store/gormstore"
	"github.com/jsamuelsen11/sellerdesk/internal/app"
	"github.com/jsamuelsen11/sellerdesk/internal/app/form"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/config"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/health"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/httpclient"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/telemetry"
	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

// RegistryServiceName names the remote registry in client metrics, logs and
// health reports.
const RegistryServiceName = "registry-api"

// Register adds the shared providers to injector. metrics may be nil when
// telemetry is disabled. Stores are built lazily on first use and register
// themselves with the health registry.
func Register(injector do.Injector, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) error {
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	switch cfg.Store.Driver {
	case config.DriverSQLite, config.DriverPostgres:
		registerDatabase(injector, cfg, logger)
	case config.DriverRemote:
		registerRemote(injector, cfg, logger, metrics)
	default:
		return fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}

	do.Provide(injector, func(i do.Injector) (*app.Registry, error) {
		departments, err := do.Invoke[ports.DepartmentStore](i)
		if err != nil {
			return nil, err
		}
		sellers, err := do.Invoke[ports.SellerStore](i)
		if err != nil {
			return nil, err
		}
		var recorder form.Recorder
		if metrics != nil {
			recorder = metrics
		}
		return app.NewRegistry(departments, sellers, logger, recorder, cfg.Form.RefreshTimeout), nil
	})
	return nil
}

func registerDatabase(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*gormstore.DB, error) {
		db, err := gormstore.Open(context.Background(), cfg.Store, logger)
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		do.MustInvoke[ports.HealthRegistry](i).Register(db)
		return db, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DepartmentStore, error) {
		db, err := do.Invoke[*gormstore.DB](i)
		if err != nil {
			return nil, err
		}
		return db.Departments(), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SellerStore, error) {
		db, err := do.Invoke[*gormstore.DB](i)
		if err != nil {
			return nil, err
		}
		return db.Sellers(), nil
	})
}

func registerRemote(injector do.Injector, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		client := httpclient.New(&cfg.Client, RegistryServiceName, metrics, logger)
		do.MustInvoke[ports.HealthRegistry](i).Register(client)
		return client, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DepartmentStore, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewDepartmentClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SellerStore, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		departments := do.MustInvoke[ports.DepartmentStore](i)
		return acl.NewSellerClient(client, departments, cfg.Client.MaxConcurrency, logger), nil
	})
}

// CloseStore releases the database pool. It is a no-op for the remote
// driver, which has no *gormstore.DB provider.
func CloseStore(injector do.Injector, cfg *config.Config) error {
	if cfg.Store.Driver == config.DriverRemote {
		return nil
	}
	db, err := do.Invoke[*gormstore.DB](injector)
	if err != nil {
		return err
	}
	return db.Close()
}
