package httpapi

import (
	"net/http"

	"github.com/signalsfoundry/strain-projector/internal/logging"
)

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware ensures a request_id is present on the context, sourcing
// it from the X-Request-Id header if provided, and attaches a per-request
// logger annotated with request_id and route. The ID is echoed back on the
// response.
func RequestIDMiddleware(base logging.Logger, next http.Handler) http.Handler {
	if base == nil {
		base = logging.Noop()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if incoming := r.Header.Get(requestIDHeader); incoming != "" {
			ctx = logging.ContextWithRequestID(ctx, incoming)
		}

		ctx, reqLog := logging.WithRequestLogger(ctx, base.With(logging.String("route", r.Method+" "+r.URL.Path)))
		ctx = logging.ContextWithLogger(ctx, reqLog)
		annotateSpan(ctx)

		w.Header().Set(requestIDHeader, logging.RequestIDFromContext(ctx))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
