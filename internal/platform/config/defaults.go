package config

// defaultDSN keeps the local database next to the working directory with
// foreign keys enforced, so department removal respects seller references.
const defaultDSN = "file:sellerdesk.db?_foreign_keys=on"

// defaults is the lowest layer of Load. Every key a YAML file or APP_*
// variable may set has an entry here, which also lets env names resolve to
// their underscore-bearing keys.
func defaults() map[string]any {
	return map[string]any{
		"server": map[string]any{
			"host":          "0.0.0.0",
			"port":          8080,
			"read_timeout":  "5s",
			"write_timeout": "10s",
			"idle_timeout":  "2m",
		},
		"log": map[string]any{
			"level":  "info",
			"format": "json",
		},
		"store": map[string]any{
			"driver":            DriverSQLite,
			"dsn":               defaultDSN,
			"max_open_conns":    10,
			"max_idle_conns":    5,
			"conn_max_lifetime": "30m",
			"auto_migrate":      true,
			"log_level":         "warn",
		},
		"client": map[string]any{
			"base_url":        "http://localhost:8081",
			"timeout":         "30s",
			"max_concurrency": 4,
			"retry": map[string]any{
				"max_attempts":     3,
				"initial_interval": "100ms",
				"max_interval":     "10s",
				"multiplier":       2.0,
			},
			"circuit_breaker": map[string]any{
				"max_failures":    5,
				"timeout":         "30s",
				"half_open_limit": 1,
			},
			"rate_limit": map[string]any{
				"requests_per_second": 0,
				"burst_size":          10,
			},
		},
		"form": map[string]any{
			"refresh_timeout": "5s",
		},
		"telemetry": map[string]any{
			"enabled":      false,
			"exporter":     "stdout",
			"endpoint":     "",
			"service_name": "sellerdesk",
		},
	}
}
