// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package telemetry configures the OpenTelemetry tracer provider used by the
// HTTP middleware (otelhttp) and the database tracer (otelpgx).
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.27.0"

	"github.com/taibuivan/kahasolusi/internal/platform/config"
	"github.com/taibuivan/kahasolusi/internal/platform/constants"
)

// ShutdownFunc flushes pending spans and releases exporter resources.
type ShutdownFunc func(context.Context) error

const batchTimeout = 5 * time.Second

/*
Init installs the global tracer provider and propagators.

Description: When tracing is disabled the global no-op provider is left in
place and the returned shutdown does nothing. Spans go to the OTLP/HTTP
endpoint when one is configured, otherwise to stdout.

Parameters:
  - ctx: context.Context
  - cfg: *config.Config
  - logger: *slog.Logger

Returns:
  - ShutdownFunc: Always non-nil
  - error: Resource or exporter construction failures
*/
func Init(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	if !cfg.OTelEnabled {
		logger.Debug("telemetry_disabled")
		return noop, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(constants.AppName),
			semconv.ServiceVersionKey.String(constants.AppVersion),
			attribute.String("deployment.environment", cfg.Environment),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("telemetry: build resource: %w", err)
	}

	exporter, err := newExporter(ctx, cfg)
	if err != nil {
		return noop, fmt.Errorf("telemetry: build exporter: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(batchTimeout)),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.OTelSampleRatio))),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("telemetry_initialized",
		slog.String("endpoint", cfg.OTelEndpoint),
		slog.Float64("sample_ratio", cfg.OTelSampleRatio),
	)

	return provider.Shutdown, nil
}

func newExporter(ctx context.Context, cfg *config.Config) (sdktrace.SpanExporter, error) {
	if cfg.OTelEndpoint == "" {
		return stdouttrace.New()
	}

	options := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.OTelEndpoint)}
	if cfg.OTelInsecure {
		options = append(options, otlptracehttp.WithInsecure())
	}

	return otlptracehttp.New(ctx, options...)
}
