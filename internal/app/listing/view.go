// Package listing keeps the displayed department and seller lists in step
// with the store.
//
// A View is long-lived and shared between concurrent readers. Refresh
// replaces the whole sequence in the order the store returned it; nothing is
// re-sorted here.
package listing

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/department"
	"github.com/jsamuelsen11/sellerdesk/internal/domain/seller"
	"github.com/jsamuelsen11/sellerdesk/internal/ports"
)

// DefaultRefreshTimeout bounds OnDataChanged when no timeout is configured.
const DefaultRefreshTimeout = 5 * time.Second

// Option configures a View.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	timeout time.Duration
}

// WithLogger sets the logger used for refresh failures.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRefreshTimeout bounds the background refresh run by OnDataChanged.
// Non-positive values are ignored.
func WithRefreshTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// View is the displayed, ordered sequence of one entity type.
type View[T any] struct {
	name    string
	fetch   func(context.Context) ([]T, error)
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	items  []T
	issued uint64 // last refresh started
	shown  uint64 // refresh whose result is in items
}

func newView[T any](name string, fetch func(context.Context) ([]T, error), opts []Option) *View[T] {
	o := options{timeout: DefaultRefreshTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return &View[T]{
		name:    name,
		fetch:   fetch,
		logger:  o.logger.With(slog.String("list", name)),
		timeout: o.timeout,
	}
}

// NewDepartmentList creates a department list backed by store. A nil store is
// accepted, but Refresh then panics.
func NewDepartmentList(store ports.DepartmentStore, opts ...Option) *View[department.Department] {
	var fetch func(context.Context) ([]department.Department, error)
	if store != nil {
		fetch = store.FindAll
	}
	return newView("departments", fetch, opts)
}

// NewSellerList creates a seller list backed by store.
func NewSellerList(store ports.SellerStore, opts ...Option) *View[seller.Seller] {
	var fetch func(context.Context) ([]seller.Seller, error)
	if store != nil {
		fetch = store.FindAll
	}
	return newView("sellers", fetch, opts)
}

// Refresh re-reads every entity from the store. On failure the previous
// sequence stays in place and the error is returned. When refreshes overlap,
// the one started last wins even if an earlier one finishes after it.
func (v *View[T]) Refresh(ctx context.Context) error {
	if v.fetch == nil {
		panic(domain.Precondition(v.name + " store was nil"))
	}

	v.mu.Lock()
	v.issued++
	ticket := v.issued
	v.mu.Unlock()

	items, err := v.fetch(ctx)
	if err != nil {
		v.logger.ErrorContext(ctx, "failed to refresh list",
			slog.String("operation", "Refresh"),
			slog.Any("error", err),
		)
		return err
	}

	v.mu.Lock()
	stale := ticket < v.shown
	if !stale {
		v.items = items
		v.shown = ticket
	}
	v.mu.Unlock()

	if stale {
		v.logger.DebugContext(ctx, "stale list refresh discarded", slog.Uint64("refresh", ticket))
		return nil
	}
	v.logger.DebugContext(ctx, "list refreshed", slog.Int("count", len(items)))
	return nil
}

// Items returns a copy of the displayed sequence.
func (v *View[T]) Items() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]T, len(v.items))
	copy(out, v.items)
	return out
}

// Len returns the number of displayed entities.
func (v *View[T]) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.items)
}

// OnDataChanged refreshes the view outside any request context. It has the
// form.Listener shape so a view can subscribe to a form directly.
func (v *View[T]) OnDataChanged() {
	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()

	// Refresh already logged the failure.
	_ = v.Refresh(ctx)
}
