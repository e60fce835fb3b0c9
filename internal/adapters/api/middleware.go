package api

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/karbobc/workday/internal/core/ports"
	"go.trai.ch/zerr"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Recovery turns handler panics into a 500 envelope.
func Recovery(logger ports.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err := zerr.With(zerr.New(fmt.Sprintf("panic: %v", rec)), "stack", string(debug.Stack()))
					logger.Error(err, "method", r.Method, "path", r.URL.Path)
					writeError(w, http.StatusInternalServerError, MessageInternalError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogging logs one line per request once it completes.
func RequestLogging(logger ports.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", wrapped.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}
