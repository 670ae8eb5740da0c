package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ProjectionCollector bundles Prometheus metrics for the strain service and
// provides helpers to wire them into HTTP handlers.
type ProjectionCollector struct {
	gatherer prometheus.Gatherer

	Requests  *prometheus.CounterVec
	Durations *prometheus.HistogramVec

	RegisteredDetectors prometheus.Gauge
	Projections         *prometheus.CounterVec
	ProjectionBins      prometheus.Histogram
}

// NewProjectionCollector registers strain service Prometheus metrics against
// the provided registerer, defaulting to the global Prometheus registry when
// nil.
func NewProjectionCollector(reg prometheus.Registerer) (*ProjectionCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strain_requests_total",
		Help: "Total number of handled HTTP requests, labeled by handler and status code.",
	}, []string{"handler", "code"})
	requests, err := registerCounterVec(reg, requests, "strain_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "strain_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	}, []string{"handler"})
	durations, err = registerHistogramVec(reg, durations, "strain_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	registered, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "strain_registered_detectors",
		Help: "Current number of detectors in the registry.",
	}), "strain_registered_detectors")
	if err != nil {
		return nil, err
	}

	projections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strain_projections_total",
		Help: "Cumulative number of detector responses computed, labeled by detector name.",
	}, []string{"detector"})
	projections, err = registerCounterVec(reg, projections, "strain_projections_total")
	if err != nil {
		return nil, err
	}

	bins := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "strain_projection_bins",
		Help:    "Number of frequency bins per computed detector response.",
		Buckets: []float64{16, 64, 256, 1024, 4096, 16384, 65536, 262144},
	})
	bins, err = registerHistogram(reg, bins, "strain_projection_bins")
	if err != nil {
		return nil, err
	}

	return &ProjectionCollector{
		gatherer:            gatherer,
		Requests:            requests,
		Durations:           durations,
		RegisteredDetectors: registered,
		Projections:         projections,
		ProjectionBins:      bins,
	}, nil
}

// Middleware records request counts and durations for an HTTP handler under
// the given handler label.
func (c *ProjectionCollector) Middleware(handler string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if c == nil {
			return
		}
		if c.Requests != nil {
			c.Requests.WithLabelValues(handler, strconv.Itoa(rec.status)).Inc()
		}
		if c.Durations != nil {
			c.Durations.WithLabelValues(handler).Observe(time.Since(start).Seconds())
		}
	})
}

// Handler exposes a ready-to-use /metrics handler.
func (c *ProjectionCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetRegisteredDetectors updates the registry size gauge. The registry drives
// this directly from its subscriber hook.
func (c *ProjectionCollector) SetRegisteredDetectors(count int) {
	if c == nil || c.RegisteredDetectors == nil {
		return
	}
	c.RegisteredDetectors.Set(float64(count))
}

// ObserveProjection records one computed detector response and its bin count.
func (c *ProjectionCollector) ObserveProjection(detector string, bins int) {
	if c == nil {
		return
	}
	if c.Projections != nil {
		c.Projections.WithLabelValues(detector).Inc()
	}
	if c.ProjectionBins != nil {
		c.ProjectionBins.Observe(float64(bins))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
