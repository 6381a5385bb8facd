// Package fanout runs one lookup per item with bounded parallelism. The remote
// seller store uses it to resolve the departments referenced by a seller list.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result holds the outcome for one item. Either Value is set or Err is non-nil.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// returns the results in input order. One failure does not stop the others.
//
// Items still queued when ctx is canceled get ctx.Err() without fn being
// called. A maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	var g errgroup.Group
	g.SetLimit(max(maxWorkers, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result[R]{Err: err}
				return nil
			}
			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
			return nil
		})
	}

	// Errors are carried per item.
	_ = g.Wait()
	return results
}
