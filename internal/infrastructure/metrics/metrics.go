package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"siged/internal/domain/domainerr"
	"siged/internal/domain/document"
)

const (
	OutcomeOK         = "ok"
	OutcomeValidation = "validation"
	OutcomeNotFound   = "not_found"
	OutcomeConflict   = "conflict"
	OutcomeStorage    = "storage"
	OutcomeError      = "error"
)

// Metrics holds all Prometheus metrics for the service on its own registry.
type Metrics struct {
	reg        *prometheus.Registry
	Operations *prometheus.CounterVec
	Requests   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		reg: reg,
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "records_operations_total",
			Help: "Mutating records-office operations by outcome",
		}, []string{"operation", "outcome"}),
		Requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	reg.MustRegister(
		m.Operations,
		m.Requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe counts one operation under the outcome derived from err.
func (m *Metrics) Observe(operation string, err error) {
	m.Operations.WithLabelValues(operation, Outcome(err)).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if errors.Is(err, document.ErrStaleDocument) {
		return OutcomeConflict
	}
	switch domainerr.KindOf(err) {
	case domainerr.ErrValidation:
		return OutcomeValidation
	case domainerr.ErrNotFound:
		return OutcomeNotFound
	case domainerr.ErrConflict:
		return OutcomeConflict
	case domainerr.ErrStorage:
		return OutcomeStorage
	}
	return OutcomeError
}
