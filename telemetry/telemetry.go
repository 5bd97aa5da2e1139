// Package telemetry configures OpenTelemetry tracing for the server.
//
// Tracing is opt-in: with MINESWEEPER_OTEL_ENDPOINT unset, or
// MINESWEEPER_OTEL_ENABLED set to "false", Setup registers nothing and the
// game service's spans go to the global no-op provider.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config holds the tracing settings read from the environment
type Config struct {
	Endpoint    string  `env:"MINESWEEPER_OTEL_ENDPOINT"`
	Enabled     string  `env:"MINESWEEPER_OTEL_ENABLED"`
	SampleRatio float64 `env:"MINESWEEPER_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// LoadConfig parses the tracing settings from the environment
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("telemetry config: %w", err)
	}
	if cfg.SampleRatio < 0 || cfg.SampleRatio > 1 {
		return Config{}, fmt.Errorf("telemetry config: sample ratio %v outside [0,1]", cfg.SampleRatio)
	}
	return cfg, nil
}

// Active reports whether an exporter should be installed
func (c Config) Active() bool {
	return c.Endpoint != "" && !strings.EqualFold(c.Enabled, "false")
}

// Setup initialises tracing for serviceName. The returned shutdown function
// flushes pending spans and should be deferred by the caller.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	cfg, err := LoadConfig()
	if err != nil {
		return noop, err
	}
	if !cfg.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
	)
	if err != nil {
		return noop, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		return noop, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
