package telemetry_test

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/sellerdesk/internal/platform/config"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/telemetry"
)

// Setup replaces OpenTelemetry globals, so these tests run serially.
func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.TelemetryConfig
		wantErr     bool
		wantStarted bool
	}{
		{name: "disabled", cfg: config.TelemetryConfig{Enabled: false, Exporter: "bogus"}},
		{name: "stdout", cfg: config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterStdout, ServiceName: "sellerdesk"}, wantStarted: true},
		{name: "otlp", cfg: config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP, Endpoint: "http://localhost:4318", ServiceName: "sellerdesk"}, wantStarted: true},
		{name: "otlp without endpoint", cfg: config.TelemetryConfig{Enabled: true, Exporter: telemetry.ExporterOTLP}, wantErr: true},
		{name: "unknown exporter", cfg: config.TelemetryConfig{Enabled: true, Exporter: "zipkin"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			p, err := telemetry.Setup(ctx, tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Setup() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			// No collector runs in tests, so an OTLP flush may fail.
			t.Cleanup(func() { _ = p.Shutdown(ctx) })

			started := p.Tracer != nil && p.Meter != nil && p.Metrics != nil
			if started != tt.wantStarted {
				t.Fatalf("providers started = %v, want %v", started, tt.wantStarted)
			}
			if !tt.wantStarted {
				return
			}
			if otel.GetTracerProvider() != p.Tracer {
				t.Error("global TracerProvider was not installed")
			}
			fields := otel.GetTextMapPropagator().Fields()
			if len(fields) == 0 || fields[0] != "traceparent" {
				t.Errorf("propagator fields = %v, want traceparent first", fields)
			}
		})
	}
}

func TestProviders_ShutdownEmpty(t *testing.T) {
	t.Parallel()

	if err := (&telemetry.Providers{}).Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() = %v, want nil", err)
	}
}

func TestNewMetrics_RecordsFormSubmissions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(ctx) })

	m, err := telemetry.NewMetrics(mp)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}
	m.RecordFormSubmission(ctx, "seller", "saved")
	m.RecordFormSubmission(ctx, "seller", "saved")
	m.RecordFormSubmission(ctx, "department", "invalid")

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			if md.Name != "form.submission.total" {
				continue
			}
			sum, ok := md.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("form.submission.total data = %T, want Sum[int64]", md.Data)
			}
			for _, dp := range sum.DataPoints {
				form, _ := dp.Attributes.Value(attribute.Key("form"))
				outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
				got[form.AsString()+"/"+outcome.AsString()] = dp.Value
			}
		}
	}

	if got["seller/saved"] != 2 || got["department/invalid"] != 1 {
		t.Errorf("form submissions = %v, want seller/saved=2 department/invalid=1", got)
	}
}

func TestMetrics_NilReceiver(t *testing.T) {
	t.Parallel()

	var m *telemetry.Metrics
	m.RecordFormSubmission(context.Background(), "seller", "failed")
}
