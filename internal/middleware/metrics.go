package middleware

import (
	"bufio"
	"net"
	"net/http"
	"strconv"
	"time"

	"caderneta-backend/internal/metrics"

	"github.com/gorilla/mux"
)

// responseWriter wraps http.ResponseWriter to capture status code and size.
type responseWriter struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	hijacked     bool
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.bytesWritten += n
	return n, err
}

// Hijack passes websocket upgrades through to the underlying connection.
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, http.ErrNotSupported
	}
	rw.hijacked = true
	return hj.Hijack()
}

// Metrics records request count and latency per route template. Static
// assets and the metrics endpoint itself are skipped.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := routePath(r)
		if skipMetrics(path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		// A hijacked connection's lifetime is not a request latency.
		if wrapped.hijacked {
			return
		}
		metrics.ObserveRequest(r.Method, path, strconv.Itoa(wrapped.statusCode), time.Since(start))
	})
}

// routePath prefers the mux route template ("/api/persons/{id}") over
// the raw path so IDs don't explode the label cardinality.
func routePath(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

func skipMetrics(path string) bool {
	switch path {
	case "/metrics", "/health", "/favicon.ico":
		return true
	}
	return len(path) >= 8 && path[:8] == "/static/"
}
