package fanout_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/sellerdesk/internal/app/fanout"
)

func TestRun_EmptyItems(t *testing.T) {
	t.Parallel()

	results := fanout.Run(context.Background(), 4, []int64{}, func(_ context.Context, _ int64) (string, error) {
		t.Fatal("fn should not be called for empty items")
		return "", nil
	})

	if results == nil || len(results) != 0 {
		t.Fatalf("Run() = %v, want empty non-nil slice", results)
	}
}

func TestRun_ResultsFollowInputOrder(t *testing.T) {
	t.Parallel()

	// Later items finish first.
	ids := []int64{3, 2, 1}
	results := fanout.Run(context.Background(), 3, ids, func(_ context.Context, id int64) (string, error) {
		time.Sleep(time.Duration(id) * 10 * time.Millisecond)
		return fmt.Sprintf("dept-%d", id), nil
	})

	for i, r := range results {
		want := fmt.Sprintf("dept-%d", ids[i])
		if r.Err != nil || r.Value != want {
			t.Errorf("results[%d] = {%q, %v}, want {%q, nil}", i, r.Value, r.Err, want)
		}
	}
}

func TestRun_PartialFailure(t *testing.T) {
	t.Parallel()

	errMissing := errors.New("missing")
	results := fanout.Run(context.Background(), 2, []int64{1, 2, 3}, func(_ context.Context, id int64) (int64, error) {
		if id == 2 {
			return 0, errMissing
		}
		return id * 10, nil
	})

	if results[0].Err != nil || results[0].Value != 10 {
		t.Errorf("results[0] = {%d, %v}, want {10, nil}", results[0].Value, results[0].Err)
	}
	if !errors.Is(results[1].Err, errMissing) {
		t.Errorf("results[1].Err = %v, want %v", results[1].Err, errMissing)
	}
	if results[2].Err != nil || results[2].Value != 30 {
		t.Errorf("results[2] = {%d, %v}, want {30, nil}", results[2].Value, results[2].Err)
	}
}

func TestRun_BoundedConcurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		maxWorkers int
		wantPeak   int32
	}{
		{name: "limit is honored", maxWorkers: 3, wantPeak: 3},
		{name: "zero means one", maxWorkers: 0, wantPeak: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var peak, active atomic.Int32
			items := make([]int, 12)

			fanout.Run(context.Background(), tt.maxWorkers, items, func(_ context.Context, _ int) (int, error) {
				cur := active.Add(1)
				defer active.Add(-1)
				for {
					p := peak.Load()
					if cur <= p || peak.CompareAndSwap(p, cur) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				return 0, nil
			})

			if p := peak.Load(); p > tt.wantPeak {
				t.Errorf("peak concurrency = %d, want <= %d", p, tt.wantPeak)
			}
		})
	}
}

func TestRun_CanceledItemsSkipFn(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	results := fanout.Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, n int) (int, error) {
		calls.Add(1)
		if n == 1 {
			cancel()
		}
		return n, nil
	})

	if results[0].Err != nil {
		t.Errorf("results[0].Err = %v, want nil", results[0].Err)
	}
	var canceled int
	for _, r := range results[1:] {
		if errors.Is(r.Err, context.Canceled) {
			canceled++
		}
	}
	if canceled == 0 {
		t.Error("expected queued items to report context.Canceled")
	}
	if got := calls.Load(); int(got)+canceled != 3 {
		t.Errorf("calls = %d with %d canceled, want 3 in total", got, canceled)
	}
}
