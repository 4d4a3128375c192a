// Package telemetry exports the service client's trace spans over OTLP.
package telemetry

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cristianoliveira/pawmatch/internal/config"
	"github.com/cristianoliveira/pawmatch/internal/logging"
	"github.com/cristianoliveira/pawmatch/internal/version"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ServiceName identifies pawmatch in exported spans.
const ServiceName = "pawmatch"

// Config holds exporter settings. An empty Endpoint disables export.
type Config struct {
	Endpoint string
	Headers  map[string]string
}

// FromGlobalConfig reads otel_endpoint and otel_headers ("k=v,k2=v2").
func FromGlobalConfig() Config {
	return Config{
		Endpoint: config.Get("otel_endpoint", ""),
		Headers:  ParseHeaders(config.Get("otel_headers", "")),
	}
}

// ParseHeaders splits "k=v,k2=v2" into a map. Malformed pairs are skipped.
func ParseHeaders(raw string) map[string]string {
	headers := map[string]string{}
	for _, pair := range strings.Split(raw, ",") {
		k, v, ok := strings.Cut(pair, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		headers[k] = strings.TrimSpace(v)
	}
	return headers
}

// Telemetry owns the installed tracer provider. The zero value is disabled.
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
}

// Enabled reports whether spans are being exported.
func (t Telemetry) Enabled() bool {
	return t.TracerProvider != nil
}

// Shutdown flushes pending spans.
func (t Telemetry) Shutdown(ctx context.Context) error {
	if t.TracerProvider == nil {
		return nil
	}
	return t.TracerProvider.Shutdown(ctx)
}

// Setup installs a batching OTLP/HTTP exporter as the global tracer provider.
func Setup(ctx context.Context, cfg Config) (Telemetry, error) {
	if cfg.Endpoint == "" {
		return Telemetry{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	exporter, err := otlptracehttp.New(
		ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
		otlptracehttp.WithHeaders(cfg.Headers),
	)
	if err != nil {
		return Telemetry{}, fmt.Errorf("create trace exporter: %w", err)
	}
	logging.Info("tracer export initialized", "endpoint", cfg.Endpoint, "headers", len(cfg.Headers) > 0)
	return install(exporter, sdktrace.WithBatcher(exporter))
}

func install(exporter sdktrace.SpanExporter, processor sdktrace.TracerProviderOption) (Telemetry, error) {
	r, err := newResource()
	if err != nil {
		_ = exporter.Shutdown(context.Background())
		return Telemetry{}, fmt.Errorf("build resource: %w", err)
	}
	tp := sdktrace.NewTracerProvider(processor, sdktrace.WithResource(r))
	otel.SetTracerProvider(tp)
	return Telemetry{TracerProvider: tp}, nil
}

func newResource() (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(version.String()),
		),
	)
}

var (
	global   Telemetry
	globalMu sync.Mutex
)

// InitGlobal sets up export from the loaded configuration.
func InitGlobal(ctx context.Context) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global.Enabled() {
		return nil
	}
	t, err := Setup(ctx, FromGlobalConfig())
	if err != nil {
		return err
	}
	global = t
	return nil
}

// ShutdownGlobal flushes and removes the global exporter.
func ShutdownGlobal(ctx context.Context) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	err := global.Shutdown(ctx)
	global = Telemetry{}
	return err
}
