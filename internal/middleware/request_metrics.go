package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func(begin time.Time) {
				metricsManager.HistogramRequestDuration.Observe(time.Since(begin).Seconds())
			}(time.Now())

			resp := &responseWriter{respWriter, http.StatusOK}

			// handler call
			next.ServeHTTP(resp, req)

			metricsManager.CounterRequests.With(
				prometheus.Labels{
					"method": req.Method,
					"status": strconv.Itoa(resp.statusCode),
				},
			).Inc()
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}

// Flush lets handlers stream through the metrics wrapper.
func (r *responseWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
