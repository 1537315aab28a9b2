package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/entityforms/pkg/validator"
)

const namespace = "entityforms"

// Outcome label values.
const (
	OutcomeValid       = "valid"
	OutcomeInvalid     = "invalid"
	OutcomeUnknownKind = "unknown_kind"
)

// Recorder counts validation outcomes and HTTP requests.
type Recorder struct {
	validations     *prometheus.CounterVec
	fieldErrors     *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New registers the collectors on reg. It panics if they are already
// registered there, so use one Recorder per registry.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		validations: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Total number of validated payloads by entity kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		fieldErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "field_errors_total",
				Help:      "Total number of field errors by entity kind and field path",
			},
			[]string{"kind", "field"},
		),
		requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// Observe records one validation result. Field labels come from schema paths,
// so their cardinality is bounded by the registered schemas.
func (r *Recorder) Observe(kind string, res validator.Result) {
	if r == nil {
		return
	}
	if res.Valid() {
		r.validations.WithLabelValues(kind, OutcomeValid).Inc()
		return
	}
	r.validations.WithLabelValues(kind, OutcomeInvalid).Inc()
	for _, e := range res.Errors {
		r.fieldErrors.WithLabelValues(kind, e.Field).Inc()
	}
}

// ObserveUnknown records a request for an unregistered kind. The kind itself
// is not used as a label.
func (r *Recorder) ObserveUnknown() {
	if r == nil {
		return
	}
	r.validations.WithLabelValues("", OutcomeUnknownKind).Inc()
}

// Middleware records request count and latency labelled by the chi route
// pattern rather than the raw path.
func (r *Recorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		next.ServeHTTP(ww, req)

		route := "unmatched"
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		r.requests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
		r.requestDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())
	})
}
