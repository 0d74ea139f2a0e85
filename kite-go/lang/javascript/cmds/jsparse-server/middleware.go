package main

import (
	"net/http"
	"time"

	"github.com/codegangsta/negroni"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-Id"

// newRequestLogger logs one line per request, tagged with a request id that is
// also returned to the client.
func newRequestLogger(logger *zap.Logger) negroni.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		start := time.Now()

		id := r.Header.Get(requestIDHeader)
		if id == "" {
			if u, err := uuid.NewV4(); err == nil {
				id = u.String()
			}
		}
		rw.Header().Set(requestIDHeader, id)

		next(rw, r)

		res := rw.(negroni.ResponseWriter)
		fields := []zap.Field{
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", res.Status()),
			zap.Int("size", res.Size()),
			zap.Duration("duration", time.Since(start)),
		}
		if res.Status() >= http.StatusInternalServerError {
			logger.Error("request", fields...)
		} else {
			logger.Info("request", fields...)
		}
	}
}

// newRateLimiter rejects requests beyond perSecond on average, allowing bursts
// of up to burst requests. A non-positive perSecond disables the limit.
func newRateLimiter(perSecond float64, burst int) negroni.HandlerFunc {
	if perSecond <= 0 {
		return func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
			next(rw, r)
		}
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return func(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		if !limiter.Allow() {
			http.Error(rw, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next(rw, r)
	}
}

// newHandler assembles the middleware stack around h.
func newHandler(logger *zap.Logger, perSecond float64, burst int, h http.Handler) http.Handler {
	return negroni.New(
		negroni.NewRecovery(),
		newRequestLogger(logger),
		newRateLimiter(perSecond, burst),
		negroni.Wrap(h),
	)
}
