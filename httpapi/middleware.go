package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/akshara/lipi/observability"
)

type ctxKey int

const requestIDKey ctxKey = iota

// RequestIDHeader carries the per-request ULID on responses.
const RequestIDHeader = "X-Request-Id"

// RequestID returns the ULID assigned to the request, or "" outside the
// middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = ulid.Make().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			observability.String("request_id", RequestID(r.Context())),
			observability.String("method", r.Method),
			observability.String("path", r.URL.Path),
			observability.Int("status", rec.status),
			observability.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000))
	})
}
