package server

import (
	"net/http"
	"time"

	"creator-api/internal/common/errors"
	apphttp "creator-api/internal/common/http"
	"creator-api/internal/common/logger"

	"github.com/google/uuid"
)

type middleware func(http.Handler) http.Handler

// chain applies middlewares so the first one listed is outermost.
func chain(h http.Handler, mws ...middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// requestID propagates X-Request-ID, generating one when the caller sent none.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(apphttp.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(apphttp.RequestIDHeader, id)
		}
		w.Header().Set(apphttp.RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func recovery(log logger.Logger) middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Error("Panic while handling request", map[string]interface{}{
						"path":      r.URL.Path,
						"panic":     rec,
						"requestId": r.Header.Get(apphttp.RequestIDHeader),
					})
					apphttp.WriteError(w, http.StatusInternalServerError, errors.DefaultMessage)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func accessLog(log logger.Logger) middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.Info("request completed", map[string]interface{}{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     rec.status,
				"durationMs": time.Since(start).Milliseconds(),
				"requestId":  r.Header.Get(apphttp.RequestIDHeader),
			})
		})
	}
}
