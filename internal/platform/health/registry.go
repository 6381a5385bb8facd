// Package health keeps the set of dependency checks behind the readiness
// endpoint.
package health

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry runs every registered checker concurrently on each probe. It is
// safe for concurrent Register and CheckAll calls.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
}

func New() *Registry {
	return &Registry{}
}

func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	r.checkers = append(r.checkers, checker)
	r.mu.Unlock()
}

// CheckAll maps each checker's name to its result; nil means healthy. A slow
// checker delays the report but never blocks Register.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	results := make([]error, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			results[i] = c.HealthCheck(ctx)
			return nil
		})
	}
	_ = g.Wait()

	report := make(map[string]error, len(checkers))
	for i, c := range checkers {
		report[c.Name()] = results[i]
	}
	return report
}
