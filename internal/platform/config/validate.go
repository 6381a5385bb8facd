package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var v validator

	v.check(c.Server.Port >= 1 && c.Server.Port <= 65535, "server.port must be between 1 and 65535, got %d", c.Server.Port)
	v.positive("server.read_timeout", c.Server.ReadTimeout > 0)
	v.positive("server.write_timeout", c.Server.WriteTimeout > 0)

	v.oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error")
	v.oneOf("log.format", c.Log.Format, "json", "text")

	v.oneOf("store.driver", c.Store.Driver, DriverSQLite, DriverPostgres, DriverRemote)
	if c.Store.Driver == DriverSQLite || c.Store.Driver == DriverPostgres {
		v.check(c.Store.DSN != "", "store.dsn must not be empty for driver %q", c.Store.Driver)
		v.check(c.Store.MaxOpenConns >= 0 && c.Store.MaxIdleConns >= 0, "store connection pool sizes must not be negative")
	}
	v.oneOf("store.log_level", c.Store.LogLevel, "silent", "error", "warn", "info")

	cl := c.Client
	if c.Store.Driver == DriverRemote {
		v.check(cl.BaseURL != "", "client.base_url must not be empty for the remote driver")
	}
	v.positive("client.timeout", cl.Timeout > 0)
	v.check(cl.Retry.MaxAttempts >= 1, "client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts)
	v.positive("client.retry.multiplier", cl.Retry.Multiplier > 0)
	v.check(cl.CircuitBreaker.MaxFailures >= 1,
		"client.circuit_breaker.max_failures must be >= 1, got %d", cl.CircuitBreaker.MaxFailures)
	v.check(cl.RateLimit.RequestsPerSecond >= 0,
		"client.rate_limit.requests_per_second must not be negative, got %v", cl.RateLimit.RequestsPerSecond)
	if cl.RateLimit.RequestsPerSecond > 0 {
		v.check(cl.RateLimit.BurstSize >= 1, "client.rate_limit.burst_size must be >= 1, got %d", cl.RateLimit.BurstSize)
	}
	v.check(cl.MaxConcurrency >= 1, "client.max_concurrency must be >= 1, got %d", cl.MaxConcurrency)

	v.positive("form.refresh_timeout", c.Form.RefreshTimeout > 0)

	if c.Telemetry.Enabled {
		v.oneOf("telemetry.exporter", c.Telemetry.Exporter, "stdout", "otlp")
		if c.Telemetry.Exporter == "otlp" {
			v.check(c.Telemetry.Endpoint != "", "telemetry.endpoint must not be empty when exporter is otlp")
		}
	}

	return errors.Join(v.errs...)
}

type validator struct {
	errs []error
}

func (v *validator) check(ok bool, format string, args ...any) {
	if !ok {
		v.errs = append(v.errs, fmt.Errorf(format, args...))
	}
}

func (v *validator) positive(key string, ok bool) {
	v.check(ok, "%s must be positive", key)
}

func (v *validator) oneOf(key, got string, allowed ...string) {
	v.check(slices.Contains(allowed, got), "%s must be one of: %s; got %q", key, strings.Join(allowed, ", "), got)
}
