package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"landmark-gallery/internal/logger"

	"github.com/sirupsen/logrus"
)

type RequestRecorder interface {
	RecordRequest(responseTime time.Duration, isError bool)
}

// Uptime records every request's duration and outcome. A panic in a handler
// is logged and answered with 500 so it counts as an error.
func Uptime(recorder RequestRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			defer func() {
				if err := recover(); err != nil {
					rw.statusCode = http.StatusInternalServerError
					logger.LogEvent(logrus.ErrorLevel, "Handler panicked", logrus.Fields{
						"panic":      err,
						"stack":      string(debug.Stack()),
						"url":        r.URL.Path,
						"request_id": RequestIDFromContext(r.Context()),
					})
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
				recorder.RecordRequest(time.Since(start), rw.statusCode >= http.StatusInternalServerError)
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
