package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del servicio. Cada router tiene su propio
// registry, así los tests pueden crear varios sin colisiones.
type Metrics struct {
	registry *prometheus.Registry

	requests    *prometheus.HistogramVec
	visitsSaved *prometheus.CounterVec
	formErrors  *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "petclinic_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		visitsSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petclinic_visits_saved_total",
			Help: "Visits persisted, by operation (create|update).",
		}, []string{"op"}),
		formErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "petclinic_visit_form_errors_total",
			Help: "Visit form submissions rejected by validation, by field.",
		}, []string{"op", "field"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.visitsSaved,
		m.formErrors,
	)
	return m
}

// VisitSaved y FormRejected aceptan receiver nil (métricas deshabilitadas).
func (m *Metrics) VisitSaved(op string) {
	if m == nil {
		return
	}
	m.visitsSaved.WithLabelValues(op).Inc()
}

func (m *Metrics) FormRejected(op, field string) {
	if m == nil {
		return
	}
	m.formErrors.WithLabelValues(op, field).Inc()
}

// Handler expone /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware mide latencia usando el route pattern de chi (no el path crudo,
// para no explotar la cardinalidad con IDs).
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
