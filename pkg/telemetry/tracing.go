package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for welgo renders.
const defaultTracerName = "welgo"

// Span names.
const (
	SpanRender    = "welgo.render"
	SpanComponent = "welgo.component"
)

// TracerConfig configures the OpenTelemetry render tracer.
type TracerConfig struct {
	// TracerName is the name of the tracer (default: "welgo").
	TracerName string

	// Provider is the tracer provider. Defaults to the global provider.
	Provider trace.TracerProvider

	// Attributes are added to every render span.
	Attributes []attribute.KeyValue
}

// TracerOption configures the OpenTelemetry render tracer.
type TracerOption func(*TracerConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracerOption {
	return func(c *TracerConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracerOption {
	return func(c *TracerConfig) {
		c.Provider = tp
	}
}

// WithAttributes adds attributes to every render span.
func WithAttributes(attrs ...attribute.KeyValue) TracerOption {
	return func(c *TracerConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// Tracer creates a span per render and a child span per component
// invocation. It implements render.Observer.
//
// The tracer uses the global OpenTelemetry tracer provider unless one is
// given. Configure it in main() before rendering:
//
//	otel.SetTracerProvider(tp)
type Tracer struct {
	config TracerConfig
	tracer trace.Tracer
}

// NewTracer creates a render tracer.
func NewTracer(opts ...TracerOption) *Tracer {
	config := TracerConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	provider := config.Provider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &Tracer{
		config: config,
		tracer: provider.Tracer(config.TracerName),
	}
}

// BeginRender implements render.Observer.
func (t *Tracer) BeginRender(ctx context.Context) (context.Context, func(int, error)) {
	ctx, span := t.tracer.Start(ctx, SpanRender,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(t.config.Attributes...),
	)
	return ctx, func(bytes int, err error) {
		defer span.End()
		if err != nil {
			finishWithError(span, err)
			return
		}
		span.SetAttributes(attribute.Int("welgo.bytes", bytes))
		span.SetStatus(codes.Ok, "")
	}
}

// BeginComponent implements resolve.Observer.
func (t *Tracer) BeginComponent(ctx context.Context, name string) (context.Context, func(error)) {
	ctx, span := t.tracer.Start(ctx, SpanComponent,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("welgo.component", name)),
	)
	return ctx, func(err error) {
		defer span.End()
		if err != nil {
			finishWithError(span, err)
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}

func finishWithError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
