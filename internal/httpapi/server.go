// internal/httpapi/server.go
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/signalsfoundry/strain-projector/internal/logging"
	"github.com/signalsfoundry/strain-projector/internal/observability"
	"github.com/signalsfoundry/strain-projector/model"
	"github.com/signalsfoundry/strain-projector/network"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

// Server exposes detector projection over HTTP.
//
// Semantics:
//   - POST /v1/response projects a precomputed frequency-domain waveform onto
//     registered detectors and returns one strain series per detector.
//   - GET /v1/detectors lists registered detector specs; POST /v1/detectors
//     registers a new one.
//   - GET /healthz reports liveness.
type Server struct {
	registry *network.Registry
	metrics  *observability.ProjectionCollector
	log      logging.Logger
}

// NewServer constructs a Server bound to a detector registry. metrics and log
// may be nil.
func NewServer(registry *network.Registry, metrics *observability.ProjectionCollector, log logging.Logger) *Server {
	if log == nil {
		log = logging.Noop()
	}
	return &Server{
		registry: registry,
		metrics:  metrics,
		log:      log,
	}
}

// Routes assembles the handler chain: OpenTelemetry server spans on the
// outside, then request-id annotation, then per-route Prometheus metrics.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("POST /v1/response", s.metrics.Middleware("response", http.HandlerFunc(s.handleResponse)))
	mux.Handle("GET /v1/detectors", s.metrics.Middleware("detectors", http.HandlerFunc(s.handleListDetectors)))
	mux.Handle("POST /v1/detectors", s.metrics.Middleware("detectors", http.HandlerFunc(s.handleRegisterDetector)))
	mux.Handle("GET /healthz", s.metrics.Middleware("healthz", http.HandlerFunc(s.handleHealthz)))

	return otelhttp.NewHandler(RequestIDMiddleware(s.log, mux), "strain-api")
}

// handleResponse runs the projection driver over a precomputed plus/cross
// waveform and returns the per-detector strain series.
func (s *Server) handleResponse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req responseRequestJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(ctx, w, fmt.Errorf("%w: decode body: %v", ErrInvalidRequest, err))
		return
	}
	if err := validateResponseRequest(&req); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	presets, err := s.registry.Presets(req.Detectors...)
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	plus := pairsToComplex(req.Waveform["plus"])
	cross := pairsToComplex(req.Waveform["cross"])
	gen := func([]float64, network.WaveformParams) ([]complex128, []complex128) {
		return plus, cross
	}

	_, span := StartChildSpan(ctx, "httpapi.project",
		attribute.Int("detectors", len(presets)),
		attribute.Int("bins", len(req.FrequenciesHz)),
	)
	responses, err := network.Respond(req.FrequenciesHz, model.Params(req.Parameters), gen, presets)
	if err != nil {
		span.RecordError(err)
	}
	span.End()
	if err != nil {
		s.writeError(ctx, w, err)
		return
	}

	body := responseBodyJSON{Responses: make(map[string][][2]float64, len(responses))}
	for name, series := range responses {
		body.Responses[name] = complexToPairs(series)
		s.metrics.ObserveProjection(name, len(series))
	}

	s.requestLogger(ctx).Info(ctx, "projection served",
		logging.Int("detectors", len(responses)),
		logging.Int("bins", len(req.FrequenciesHz)),
	)
	writeJSON(w, http.StatusOK, body)
}

// handleListDetectors returns the sorted catalog of registered specs.
func (s *Server) handleListDetectors(w http.ResponseWriter, r *http.Request) {
	entries := s.registry.List()
	out := detectorListJSON{Detectors: make([]detectorSpecJSON, 0, len(entries))}
	for _, e := range entries {
		out.Detectors = append(out.Detectors, specToJSON(e.Spec))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleRegisterDetector validates and registers a custom detector spec.
func (s *Server) handleRegisterDetector(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var spec detectorSpecJSON
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		s.writeError(ctx, w, fmt.Errorf("%w: decode body: %v", ErrInvalidRequest, err))
		return
	}
	if err := validateDetectorSpec(&spec); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	if err := s.registry.Add(spec.toSpec()); err != nil {
		s.writeError(ctx, w, err)
		return
	}

	s.requestLogger(ctx).Info(ctx, "detector registered", logging.String("name", spec.Name))
	writeJSON(w, http.StatusCreated, spec)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) requestLogger(ctx context.Context) logging.Logger {
	if log := logging.LoggerFromContext(ctx); log != nil {
		return log
	}
	return s.log
}

func (s *Server) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := ToHTTPStatus(err)

	log := s.requestLogger(ctx)
	if status >= http.StatusInternalServerError {
		log.Error(ctx, "request failed", logging.Err(err), logging.Int("status", status))
	} else {
		log.Warn(ctx, "request rejected", logging.Err(err), logging.Int("status", status))
	}

	writeJSON(w, status, errorBodyJSON{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
