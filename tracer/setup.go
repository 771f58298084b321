package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const instrumentationName = "github.com/aalemi-dev/mdm-client"

// Client implements Tracer on top of an sdk TracerProvider.
type Client struct {
	provider   *sdktrace.TracerProvider
	propagator propagation.TextMapPropagator
}

var _ Tracer = (*Client)(nil)

// NewClient builds a tracer provider, optionally wired to an OTLP/HTTP
// exporter, and installs it as the global provider and propagator.
func NewClient(cfg Config) (*Client, error) {
	var opts []sdktrace.TracerProviderOption

	if cfg.EnableExport {
		var clientOpts []otlptracehttp.Option
		if cfg.Endpoint != "" {
			clientOpts = append(clientOpts, otlptracehttp.WithEndpoint(cfg.Endpoint))
		}
		if cfg.Insecure {
			clientOpts = append(clientOpts, otlptracehttp.WithInsecure())
		}
		exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(clientOpts...))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	opts = append(opts, sdktrace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	c := NewWithProvider(sdktrace.NewTracerProvider(opts...))
	otel.SetTracerProvider(c.provider)
	otel.SetTextMapPropagator(c.propagator)
	return c, nil
}

// NewWithProvider wraps an existing provider without touching globals.
func NewWithProvider(tp *sdktrace.TracerProvider) *Client {
	return &Client{
		provider:   tp,
		propagator: propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}),
	}
}

// Shutdown flushes pending spans and stops the provider.
func (c *Client) Shutdown(ctx context.Context) error {
	if c == nil || c.provider == nil {
		return nil
	}
	return c.provider.Shutdown(ctx)
}
