package middleware

import (
	"net/http"
	"strconv"
	"time"

	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestLogger records request metrics and writes one structured log line
// per request. Routes are labelled by pattern to keep metric cardinality low.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		duration := metrics.MeasureDuration(start)
		statusStr := strconv.Itoa(status)

		metrics.HTTPRequestDuration.WithLabelValues(r.Method, route, statusStr).Observe(duration)
		metrics.HTTPRequestTotal.WithLabelValues(r.Method, route, statusStr).Inc()

		logger.LogHTTPRequest(r.Method, r.URL.Path, status, duration,
			zap.String("route", route),
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.String("client_ip", r.RemoteAddr),
			zap.String("user_agent", r.UserAgent()),
			zap.Int("response_size", ww.BytesWritten()),
		)
	})
}
