// Package telemetry provides render observers backed by Prometheus metrics
// and OpenTelemetry tracing.
//
// Both Metrics and Tracer implement render.Observer and can be combined with
// Multi:
//
//	obs := telemetry.Multi(
//	    telemetry.NewMetrics(telemetry.WithNamespace("site")),
//	    telemetry.NewTracer(),
//	)
//	r := render.NewRenderer(render.RendererConfig{Observer: obs})
package telemetry
