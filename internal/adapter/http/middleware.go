package http

import (
	"net/http"
	"time"
)

// statusRecorder captures the response code for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// wrap applies rate limiting and records lookup metrics for one operation.
func (a *API) wrap(op string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		if a.limiter != nil && !a.limiter.Allow() {
			rec.Header().Set("Retry-After", "1")
			writeError(rec, http.StatusTooManyRequests, "rate limit exceeded")
		} else {
			h(rec, r)
		}

		if a.metrics != nil {
			a.metrics.Lookups.WithLabelValues(op, outcomeOf(rec.status)).Inc()
			a.metrics.LookupDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		}
	})
}

func outcomeOf(status int) string {
	switch status {
	case http.StatusOK:
		return "success"
	case http.StatusBadRequest:
		return "invalid"
	case http.StatusNotFound:
		return "not_found"
	case http.StatusTooManyRequests:
		return "limited"
	default:
		return "error"
	}
}
