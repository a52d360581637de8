package middlewares

import (
	"net/http"
	"time"

	"code.cloudfoundry.org/lager"
)

// statusWriter records the status and stamps X-Response-Time before the
// header goes out.
type statusWriter struct {
	http.ResponseWriter
	start       time.Time
	wroteHeader bool
	status      int
	bytes       int
}

func (w *statusWriter) stamp() {
	if !w.wroteHeader {
		w.Header().Set("X-Response-Time", time.Since(w.start).String())
		w.wroteHeader = true
	}
}

func (w *statusWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.status = code
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.stamp()
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func wrap(w http.ResponseWriter) *statusWriter {
	if sw, ok := w.(*statusWriter); ok {
		return sw
	}
	return &statusWriter{ResponseWriter: w, start: time.Now(), status: http.StatusOK}
}

func ResponseTime(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := wrap(w)
		next.ServeHTTP(rw, r)
		// nothing written (e.g. HEAD)
		if !rw.wroteHeader {
			rw.Header().Set("X-Response-Time", time.Since(rw.start).String())
		}
	})
}

// AccessLog logs one line per request. Bodies and query strings are never
// logged since they may carry a password.
func AccessLog(logger lager.Logger) Middleware {
	logger = logger.Session("access")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := wrap(w)
			next.ServeHTTP(rw, r)
			logger.Info("request", lager.Data{
				"request_id":  GetRequestID(r),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      rw.status,
				"bytes":       rw.bytes,
				"duration_ms": time.Since(rw.start).Milliseconds(),
			})
		})
	}
}
