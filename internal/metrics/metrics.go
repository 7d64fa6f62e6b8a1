// Package metrics exposes Prometheus instruments for the player service.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/gameplayers/internal/model"
)

const namespace = "gameplayers"

// Recorder owns a private registry and the instruments registered on it.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry        *prometheus.Registry
	operations      *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpLatency     *prometheus.HistogramVec
	playersReturned prometheus.Histogram
}

// NewRecorder creates a Recorder with its own registry
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{
		registry: reg,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_operations_total",
			Help:      "Player operations by name and outcome.",
		}, []string{LabelOperation, LabelOutcome}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{LabelMethod, LabelRoute, LabelStatus}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{LabelMethod, LabelRoute}),
		playersReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "list_page_size",
			Help:      "Players returned per list call.",
			Buckets:   []float64{0, 1, 3, 5, 10, 25, 50, 100},
		}),
	}

	reg.MustRegister(
		r.operations,
		r.httpRequests,
		r.httpLatency,
		r.playersReturned,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Outcome classifies an operation error into an outcome label
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, model.ErrPlayerNotFound):
		return OutcomeNotFound
	case errors.Is(err, model.ErrInvalidField), errors.Is(err, model.ErrInvalidPlayer):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}

// RecordOperation counts one player operation
func (r *Recorder) RecordOperation(operation string, err error) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(operation, Outcome(err)).Inc()
}

// RecordListed observes how many players a list call returned
func (r *Recorder) RecordListed(count int) {
	if r == nil {
		return
	}
	r.playersReturned.Observe(float64(count))
}

// RecordHTTPRequest counts one HTTP request and its latency
func (r *Recorder) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Registry returns the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
