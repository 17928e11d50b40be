package prometheus

import (
	"context"
	"hotel/config"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
)

const namespace = "hotel"

const (
	EventOutcomeSent   = "sent"
	EventOutcomeFailed = "failed"
)

type Metrics struct {
	reg             *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	panicsTotal     prometheus.Counter
	eventsTotal     *prometheus.CounterVec
}

func New(cfg *config.Config) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	constLabels := prometheus.Labels{"app": cfg.App.Name}

	return &Metrics{
		reg: reg,
		requestsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests by method, route and status.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		requestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency by method and route.",
			ConstLabels: constLabels,
			Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),
		panicsTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_panics_recovered_total",
			Help:        "Total number of HTTP requests recovered from a panic.",
			ConstLabels: constLabels,
		}),
		eventsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "domain_events_total",
			Help:        "Total number of domain events published by topic and outcome.",
			ConstLabels: constLabels,
		}, []string{"topic", "outcome"}),
	}
}

func exemplarFromContext(ctx context.Context) prometheus.Labels {
	if span := trace.SpanContextFromContext(ctx); span.IsSampled() {
		return prometheus.Labels{"traceID": span.TraceID().String()}
	}

	return nil
}

func (m *Metrics) ObserveRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()

	observer := m.requestDuration.WithLabelValues(method, route)
	if exemplar := exemplarFromContext(ctx); exemplar != nil {
		if eo, ok := observer.(prometheus.ExemplarObserver); ok {
			eo.ObserveWithExemplar(elapsed.Seconds(), exemplar)

			return
		}
	}

	observer.Observe(elapsed.Seconds())
}

func (m *Metrics) IncPanics() {
	m.panicsTotal.Inc()
}

func (m *Metrics) IncEvent(topic, outcome string) {
	m.eventsTotal.WithLabelValues(topic, outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
