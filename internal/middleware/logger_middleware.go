package middleware

import (
	"net/http"
	"time"

	"landmark-gallery/internal/logger"

	"github.com/sirupsen/logrus"
)

// LoggingMiddleware logs the details of each request and response
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		level := logrus.InfoLevel
		if rw.statusCode >= http.StatusInternalServerError {
			level = logrus.ErrorLevel
		}

		logger.LogEvent(level, "Request handled", logrus.Fields{
			"method":        r.Method,
			"url":           r.URL.Path,
			"status_code":   rw.statusCode,
			"bytes":         rw.written,
			"response_time": time.Since(start).Milliseconds(),
			"ip":            r.RemoteAddr,
			"request_id":    RequestIDFromContext(r.Context()),
		})
	})
}

// responseWriter is a wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int
}

// WriteHeader captures the status code
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += n
	return n, err
}
