package telemetry

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/welgo/pkg/render"
	"github.com/vango-dev/welgo/pkg/vdom"
)

func metricCounterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	return m.GetCounter().GetValue()
}

func metricHistogramCount(t *testing.T, o prometheus.Observer) uint64 {
	t.Helper()
	metric, ok := o.(prometheus.Metric)
	if !ok {
		t.Fatalf("observer %T does not implement prometheus.Metric", o)
	}
	var m dto.Metric
	if err := metric.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

var greeting = vdom.Named("Greeting", func(context.Context, vdom.Props, any) (*vdom.Element, error) {
	return vdom.H("p", nil, "hi"), nil
})

var errBroken = errors.New("broken")

var broken = vdom.Named("Broken", func(context.Context, vdom.Props, any) (*vdom.Element, error) {
	return nil, errBroken
})

func TestMetricsRecordRenders(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))
	r := render.NewRenderer(render.RendererConfig{Observer: m})

	if _, err := r.Render(context.Background(), vdom.H("div", nil, vdom.H(greeting, nil)), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Render(context.Background(), vdom.H(broken, nil), nil); !errors.Is(err, errBroken) {
		t.Fatalf("error = %v", err)
	}

	if got := metricCounterValue(t, m.rendersTotal.WithLabelValues("success")); got != 1 {
		t.Errorf("renders_total(success) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.rendersTotal.WithLabelValues("error")); got != 1 {
		t.Errorf("renders_total(error) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.componentsTotal.WithLabelValues("Greeting", "success")); got != 1 {
		t.Errorf("component_invocations_total(Greeting) = %v, want 1", got)
	}
	if got := metricCounterValue(t, m.componentsTotal.WithLabelValues("Broken", "error")); got != 1 {
		t.Errorf("component_invocations_total(Broken, error) = %v, want 1", got)
	}
	if got := metricHistogramCount(t, m.renderDuration); got != 2 {
		t.Errorf("render_duration count = %v, want 2", got)
	}
	if got := metricHistogramCount(t, m.renderBytes); got != 1 {
		t.Errorf("render_bytes count = %v, want 1", got)
	}
}

func TestMetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("site"))
	_, end := m.BeginRender(context.Background())
	end(10, nil)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), `site_renders_total{status="success"} 1`) {
		t.Errorf("metrics output missing counter:\n%s", body)
	}
}

type recordedSpan struct {
	trace.Span
	name  string
	attrs []attribute.KeyValue
	code  codes.Code
	err   error
	ended bool
}

func (s *recordedSpan) SetStatus(code codes.Code, _ string)           { s.code = code }
func (s *recordedSpan) RecordError(err error, _ ...trace.EventOption) { s.err = err }
func (s *recordedSpan) SetAttributes(kv ...attribute.KeyValue)        { s.attrs = append(s.attrs, kv...) }
func (s *recordedSpan) End(...trace.SpanEndOption)                    { s.ended = true }

type recordingTracer struct {
	noop.Tracer
	mu    sync.Mutex
	spans []*recordedSpan
}

func (r *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	ctx, span := r.Tracer.Start(ctx, name, opts...)
	cfg := trace.NewSpanStartConfig(opts...)
	rs := &recordedSpan{Span: span, name: name, attrs: cfg.Attributes()}
	r.mu.Lock()
	r.spans = append(r.spans, rs)
	r.mu.Unlock()
	return trace.ContextWithSpan(ctx, rs), rs
}

type recordingProvider struct {
	noop.TracerProvider
	tracer *recordingTracer
}

func (p recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer { return p.tracer }

func TestTracerSpans(t *testing.T) {
	rec := &recordingTracer{}
	tr := NewTracer(WithTracerProvider(recordingProvider{tracer: rec}), WithAttributes(attribute.String("route", "/")))
	r := render.NewRenderer(render.RendererConfig{Observer: tr})

	if _, err := r.Render(context.Background(), vdom.H(greeting, nil), nil); err != nil {
		t.Fatal(err)
	}
	if len(rec.spans) != 2 {
		t.Fatalf("spans = %d, want 2", len(rec.spans))
	}
	root, comp := rec.spans[0], rec.spans[1]
	if root.name != SpanRender || comp.name != SpanComponent {
		t.Errorf("span names = %q, %q", root.name, comp.name)
	}
	if !hasAttr(comp.attrs, "welgo.component", "Greeting") {
		t.Errorf("component span attrs = %v", comp.attrs)
	}
	if !hasAttr(root.attrs, "route", "/") {
		t.Errorf("render span attrs = %v", root.attrs)
	}
	if root.code != codes.Ok || !root.ended || !comp.ended {
		t.Errorf("spans not finished cleanly: %+v %+v", root, comp)
	}

	rec.spans = nil
	if _, err := r.Render(context.Background(), vdom.H(broken, nil), nil); err == nil {
		t.Fatal("expected error")
	}
	for _, s := range rec.spans {
		if s.code != codes.Error || !errors.Is(s.err, errBroken) {
			t.Errorf("span %s: code = %v, err = %v", s.name, s.code, s.err)
		}
	}
}

func hasAttr(attrs []attribute.KeyValue, key, value string) bool {
	for _, kv := range attrs {
		if string(kv.Key) == key && kv.Value.AsString() == value {
			return true
		}
	}
	return false
}

type orderObserver struct {
	name string
	log  *[]string
}

func (o orderObserver) BeginRender(ctx context.Context) (context.Context, func(int, error)) {
	*o.log = append(*o.log, "begin "+o.name)
	return ctx, func(int, error) { *o.log = append(*o.log, "end "+o.name) }
}

func (o orderObserver) BeginComponent(ctx context.Context, _ string) (context.Context, func(error)) {
	return ctx, func(error) {}
}

func TestMultiOrder(t *testing.T) {
	var log []string
	obs := Multi(orderObserver{"a", &log}, nil, orderObserver{"b", &log})
	_, end := obs.BeginRender(context.Background())
	end(0, nil)

	want := []string{"begin a", "begin b", "end b", "end a"}
	if strings.Join(log, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", log, want)
	}
}
