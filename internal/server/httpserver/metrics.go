package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the API collectors. They are registered on the registry
// given to NewMetrics, so tests can use a private one.
type Metrics struct {
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	registrations prometheus.Counter
	enrollments   prometheus.Counter
	logins        *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coachdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "coachdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		}, []string{"method", "route"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coachdesk_registrations_total",
			Help: "Total number of accounts created",
		}),
		enrollments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "coachdesk_enrollments_total",
			Help: "Total number of enrollments submitted",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "coachdesk_logins_total",
			Help: "Login attempts by kind and result",
		}, []string{"kind", "result"}), // kind: user, admin; result: success, failed
	}
	reg.MustRegister(m.requests, m.duration, m.registrations, m.enrollments, m.logins)
	return m
}

// Middleware records count and latency per route pattern, so user emails in
// the path never become label values.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) recordLogin(kind string, ok bool) {
	result := "failed"
	if ok {
		result = "success"
	}
	m.logins.WithLabelValues(kind, result).Inc()
}
