// Package httpclient is the outbound HTTP client used to reach the remote
// registry. Every call passes through, in order: the circuit breaker, the
// rate limiter, header propagation, a client span and the retry loop.
//
//	client := httpclient.New(&cfg.Client, "registry-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/sellerdesk/internal/platform/config"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/telemetry"
)

// Client wraps http.Client with resilience and instrumentation for a single
// downstream service.
type Client struct {
	http    *http.Client
	baseURL string
	service string
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter
	retry   config.RetryConfig
	metrics *telemetry.Metrics
}

// New builds a Client for service from cfg. metrics may be nil. A zero
// RequestsPerSecond disables rate limiting.
func New(cfg *config.ClientConfig, service string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		service: service,
		retry:   cfg.Retry,
		metrics: metrics,
	}
	if rps := cfg.RateLimit.RequestsPerSecond; rps > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rps), cfg.RateLimit.BurstSize)
	}

	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        service,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= clampUint32(cfg.CircuitBreaker.MaxFailures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
	return c
}

// Do sends req. A response whose status is still retryable after the last
// attempt is returned together with an error; its body is open and owned by
// the caller, as is the body of any successful response. Breaker rejections
// and transport failures return a nil response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		propagateIDs(ctx, req)

		ctx, span := c.startSpan(ctx, req)
		defer span.End()

		resp, err := c.send(ctx, req.WithContext(ctx))
		endSpan(span, resp, err)
		return resp, err
	})

	c.observe(ctx, req.Method, resp, err, time.Since(start))
	return resp, err
}

// BaseURL is the configured root every request path is joined to.
func (c *Client) BaseURL() string { return c.baseURL }

// Name identifies the downstream service in health reports.
func (c *Client) Name() string { return c.service }

// HealthCheck derives downstream health from the breaker state without
// touching the network. A half-open breaker reports degraded.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.service)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.service)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.service, state)
	}
}

func (c *Client) observe(ctx context.Context, method string, resp *http.Response, err error, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}

	status, result := 0, "error"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case resp != nil:
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.service),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
