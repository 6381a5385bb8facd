package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/sellerdesk/internal/platform/logging"
)

// jitter is the randomization factor applied to every backoff interval.
const jitter = 0.25

// errRetryableStatus marks a response the retry loop should try again.
var errRetryableStatus = errors.New("retryable status")

// send performs req up to retry.MaxAttempts times with jittered exponential
// backoff. The body is buffered once and replayed on every attempt. Bodies
// of discarded attempts are drained so the connection can be reused.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	attempts := c.retry.MaxAttempts
	if attempts <= 0 {
		return nil, fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", attempts)
	}

	body, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	var (
		last *http.Response
		n    int
	)
	op := func() (struct{}, error) {
		n++
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if !shouldRetry(err) {
				return struct{}{}, backoff.Permanent(err)
			}
			return struct{}{}, err
		}
		if !retryableStatus(resp.StatusCode) {
			last = resp
			return struct{}{}, nil
		}

		if n < attempts {
			discard(resp)
		} else {
			last = resp
		}
		return struct{}{}, fmt.Errorf("%w: HTTP %d from %s", errRetryableStatus, resp.StatusCode, c.service)
	}

	_, err = backoff.Retry(ctx, op,
		backoff.WithBackOff(c.schedule()),
		backoff.WithMaxTries(uint(attempts)),
		backoff.WithNotify(func(err error, wait time.Duration) {
			logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.String("peer_service", c.service),
				slog.Int("attempt", n+1),
				slog.Int("max_attempts", attempts),
				slog.Duration("backoff", wait),
				slog.Any("error", err),
			)
		}),
	)
	return last, err
}

func (c *Client) schedule() *backoff.ExponentialBackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     c.retry.InitialInterval,
		RandomizationFactor: jitter,
		Multiplier:          c.retry.Multiplier,
		MaxInterval:         c.retry.MaxInterval,
	}
	b.Reset()
	return b
}

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// shouldRetry reports whether a transport error is worth another attempt.
// Cancellation and deadline expiry are final; everything else is retried.
func shouldRetry(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus is true for 429 and every 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
