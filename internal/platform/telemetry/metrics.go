package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrForm        = attribute.Key("form")
	AttrOutcome     = attribute.Key("outcome")
)

// Metrics holds the service's instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter
	FormSubmitTotal       metric.Int64Counter
}

// NewMetrics registers the instruments on a meter scoped to the module path.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter("github.com/jsamuelsen11/sellerdesk")
	m := &Metrics{}

	histograms := []struct {
		dst  *metric.Float64Histogram
		name string
		desc string
	}{
		{&m.ServerRequestDuration, "http.server.request.duration", "Duration of incoming HTTP requests"},
		{&m.ClientRequestDuration, "http.client.request.duration", "Duration of registry API calls"},
	}
	for _, h := range histograms {
		inst, err := meter.Float64Histogram(h.name, metric.WithDescription(h.desc), metric.WithUnit("s"))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", h.name, err)
		}
		*h.dst = inst
	}

	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
		unit string
	}{
		{&m.ServerRequestTotal, "http.server.request.total", "Incoming HTTP requests", "{request}"},
		{&m.ClientRequestTotal, "http.client.request.total", "Registry API calls", "{request}"},
		{&m.FormSubmitTotal, "form.submission.total", "Form submissions by form and outcome", "{submission}"},
	}
	for _, c := range counters {
		inst, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit(c.unit))
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		*c.dst = inst
	}
	return m, nil
}

// RecordFormSubmission counts one form submission. It satisfies the form
// package's Recorder and is a no-op on a nil receiver.
func (m *Metrics) RecordFormSubmission(ctx context.Context, form, outcome string) {
	if m == nil || m.FormSubmitTotal == nil {
		return
	}
	m.FormSubmitTotal.Add(ctx, 1, metric.WithAttributes(
		AttrForm.String(form),
		AttrOutcome.String(outcome),
	))
}
