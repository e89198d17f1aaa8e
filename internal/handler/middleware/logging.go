package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schoolhub/pkg/ctxdata"
	"schoolhub/pkg/logging"
)

const TraceHeader = "X-Trace-Id"

// responseRecorder remembers what the handler sent back.
type responseRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (rr *responseRecorder) WriteHeader(code int) {
	if rr.status == 0 {
		rr.status = code
	}
	rr.ResponseWriter.WriteHeader(code)
}

func (rr *responseRecorder) Write(p []byte) (int, error) {
	if rr.status == 0 {
		rr.status = http.StatusOK
	}
	n, err := rr.ResponseWriter.Write(p)
	rr.written += n
	return n, err
}

func (rr *responseRecorder) code() int {
	if rr.status == 0 {
		return http.StatusOK
	}
	return rr.status
}

// requestTrace reuses a caller supplied trace id when it is a UUID.
func requestTrace(r *http.Request) string {
	if incoming, err := uuid.Parse(r.Header.Get(TraceHeader)); err == nil {
		return incoming.String()
	}
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

// NewLoggingMiddleware tags every request with a trace id and writes one
// access line per request. 5xx lines go out at error level, 4xx at warn.
func NewLoggingMiddleware(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			began := time.Now()
			trace := requestTrace(r)
			w.Header().Set(TraceHeader, trace)

			ctx := logging.ContextWithLogger(ctxdata.WithTraceID(r.Context(), trace), logger)
			rr := &responseRecorder{ResponseWriter: w}
			next.ServeHTTP(rr, r.WithContext(ctx))

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rr.code()),
				zap.Int("bytes", rr.written),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("elapsed", time.Since(began)),
			}
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				fields = append(fields, zap.String("route", rc.RoutePattern()))
			}

			switch status := rr.code(); {
			case status >= http.StatusInternalServerError:
				logger.Error(ctx, "http request", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn(ctx, "http request", fields...)
			default:
				logger.Info(ctx, "http request", fields...)
			}
		})
	}
}
