package ports

import "context"

// HealthChecker reports on one dependency, such as the database or the
// remote registry. HealthCheck returns nil when the dependency is usable.
type HealthChecker interface {
	Name() string
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and evaluates them for the
// readiness probe. CheckAll keys results by checker name.
type HealthRegistry interface {
	Register(checker HealthChecker)
	CheckAll(ctx context.Context) map[string]error
}
