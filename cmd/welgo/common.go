package main

import (
	"log/slog"
	"maps"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/welgo/internal/config"
	"github.com/vango-dev/welgo/internal/errors"
	"github.com/vango-dev/welgo/pkg/document"
	"github.com/vango-dev/welgo/pkg/publish"
	"github.com/vango-dev/welgo/pkg/render"
	"github.com/vango-dev/welgo/pkg/telemetry"
)

// newRegistry returns the component registry available to CLI documents.
func newRegistry() *document.Registry {
	reg := document.NewRegistry()
	document.RegisterBuiltins(reg)
	return reg
}

// newRenderer builds a renderer from the render config section.
func newRenderer(rc config.RenderConfig, observer render.Observer) *render.Renderer {
	return render.NewRenderer(render.RendererConfig{
		MaxDepth:        rc.MaxDepth,
		Concurrency:     rc.Concurrency,
		SanitizeRawHTML: rc.SanitizeRawHTML,
		Observer:        observer,
		Logger:          slog.Default(),
	})
}

// observers builds the telemetry observers enabled in cfg. metrics is nil
// when metrics are disabled; otherwise it owns a fresh registry that also
// carries the Go runtime and process collectors.
func observers(cfg *config.Config) (render.Observer, *telemetry.Metrics) {
	var (
		list    []render.Observer
		metrics *telemetry.Metrics
	)
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = telemetry.NewMetrics(
			telemetry.WithNamespace(cfg.Metrics.Namespace),
			telemetry.WithRegistry(reg),
		)
		list = append(list, metrics)
	}
	if cfg.Tracing.Enabled {
		list = append(list, telemetry.NewTracer(telemetry.WithTracerName(cfg.Tracing.TracerName)))
	}
	if len(list) == 0 {
		return nil, nil
	}
	return telemetry.Multi(list...), metrics
}

// s3Options returns the S3 client options from the build config.
func s3Options(cfg *config.Config) publish.S3Options {
	return publish.S3Options{Region: cfg.Build.S3.Region}
}

// loadContext reads a YAML or JSON file of resolver context values.
func loadContext(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E023").
			WithDetail("Could not read context file " + path + ".").
			Wrap(err)
	}
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, errors.New("E022").
			WithDetail("Context file " + path + ": " + err.Error()).
			Wrap(err)
	}
	return out, nil
}

// mergeContext layers maps left to right into a new map.
func mergeContext(layers ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, l := range layers {
		maps.Copy(out, l)
	}
	return out
}
