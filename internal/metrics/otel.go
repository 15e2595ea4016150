package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const (
	defaultServiceName = "live-arena-service"
	meterName          = "github.com/preston-bernstein/live-arena-service"
	otlpExportInterval = 15 * time.Second
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and an optional OTLP exporter.
// It returns a Recorder, the Prometheus scrape handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "prometheus exporter")
	}
	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "otlp exporter")
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "metrics resource")
	}
	provider := sdkmetric.NewMeterProvider(append(opts, sdkmetric.WithResource(res))...)

	rec := NewRecorder()
	inst, err := instrumentFactory(provider, rec)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, nil, nil, errors.Wrap(err, "metrics instruments")
	}
	rec.otel = inst

	return rec, promHandler, provider.Shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	exp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exp, sdkmetric.WithInterval(otlpExportInterval)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	exp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return exp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	ctx context.Context

	requests          metric.Int64Counter
	requestLatencyMs  metric.Float64Histogram
	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram
	rateLimitHits     metric.Int64Counter
	retryAfterMs      metric.Float64Histogram
	pollerCycles      metric.Int64Counter
	pollerErrors      metric.Int64Counter
	pollerLatencyMs   metric.Float64Histogram
	cacheLookups      metric.Int64Counter
}

// instrumentBuilder creates instruments on one meter and keeps the first error.
type instrumentBuilder struct {
	meter metric.Meter
	err   error
}

func (b *instrumentBuilder) counter(name, desc string) metric.Int64Counter {
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc))
	b.err = errors.CombineErrors(b.err, err)
	return c
}

func (b *instrumentBuilder) histogramMs(name, desc string) metric.Float64Histogram {
	h, err := b.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("ms"))
	b.err = errors.CombineErrors(b.err, err)
	return h
}

func (b *instrumentBuilder) gauge(name, desc string, cb metric.Int64Callback) {
	_, err := b.meter.Int64ObservableGauge(name, metric.WithDescription(desc), metric.WithInt64Callback(cb))
	b.err = errors.CombineErrors(b.err, err)
}

func newOtelInstruments(provider metric.MeterProvider, rec *Recorder) (*otelInstruments, error) {
	b := &instrumentBuilder{meter: provider.Meter(meterName)}

	inst := &otelInstruments{
		ctx:               context.Background(),
		requests:          b.counter("http_requests_total", "HTTP requests served"),
		requestLatencyMs:  b.histogramMs("http_request_duration_ms", "HTTP request latency"),
		providerAttempts:  b.counter("provider_attempts_total", "Match list fetch attempts"),
		providerErrors:    b.counter("provider_errors_total", "Failed match list fetch attempts"),
		providerLatencyMs: b.histogramMs("provider_duration_ms", "Match list fetch latency"),
		rateLimitHits:     b.counter("provider_rate_limit_hits_total", "Upstream 429 responses"),
		retryAfterMs:      b.histogramMs("provider_retry_after_ms", "Retry-After advertised on 429"),
		pollerCycles:      b.counter("poller_cycles_total", "Refresh loop iterations"),
		pollerErrors:      b.counter("poller_errors_total", "Refresh loop iterations that failed"),
		pollerLatencyMs:   b.histogramMs("poller_cycle_duration_ms", "Refresh loop iteration latency"),
		cacheLookups:      b.counter("matchlist_cache_lookups_total", "Match cache reads by outcome"),
	}

	b.gauge("matchlist_matches", "Matches in the last stored snapshot by category",
		func(_ context.Context, o metric.Int64Observer) error {
			for category, n := range rec.MatchCounts() {
				o.Observe(int64(n), metric.WithAttributes(attribute.String(AttrCategory, category)))
			}
			return nil
		})
	b.gauge("matchlist_snapshot_age_seconds", "Seconds since the stored snapshot was fetched",
		func(_ context.Context, o metric.Int64Observer) error {
			if age, ok := rec.SnapshotAge(time.Now()); ok {
				o.Observe(int64(age.Seconds()))
			}
			return nil
		})

	if b.err != nil {
		return nil, b.err
	}
	return inst, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	)
	o.requests.Add(o.ctx, 1, attrs)
	o.requestLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), attrs)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrProvider, provider))
	o.providerAttempts.Add(o.ctx, 1, attrs)
	o.providerLatencyMs.Record(o.ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		o.providerErrors.Add(o.ctx, 1, attrs)
	}
}

func (o *otelInstruments) recordRateLimit(provider string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrProvider, provider))
	o.rateLimitHits.Add(o.ctx, 1, attrs)
	if retryAfter > 0 {
		o.retryAfterMs.Record(o.ctx, float64(retryAfter.Milliseconds()), attrs)
	}
}

func (o *otelInstruments) recordPoller(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.pollerCycles.Add(o.ctx, 1)
	o.pollerLatencyMs.Record(o.ctx, float64(duration.Milliseconds()))
	if err != nil {
		o.pollerErrors.Add(o.ctx, 1)
	}
}

func (o *otelInstruments) recordCacheLookup(result string) {
	if o == nil {
		return
	}
	o.cacheLookups.Add(o.ctx, 1, metric.WithAttributes(attribute.String(AttrResult, result)))
}
