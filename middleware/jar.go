package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/cookiekit/core/jar"
)

// jarContextKey is used as a key for storing the request's jar in context.
type jarContextKey struct{}

// requestIDContextKey is used as a key for storing the request ID in context.
type requestIDContextKey struct{}

// defaultRequestIDHeader carries the correlation ID on requests and responses.
const defaultRequestIDHeader = "X-Request-ID"

// JarConfig configures the cookie jar middleware.
type JarConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Logger receives debug records about emitted Set-Cookie lines (default: slog.Default())
	Logger *slog.Logger
	// RequestIDHeader specifies the header carrying the request ID (default: "X-Request-ID")
	RequestIDHeader string
	// RequestID generates new request IDs when the incoming request carries
	// none (default: UUID v4)
	RequestID func() string
}

// Jar creates the cookie jar middleware with default configuration. It builds
// one jar per request from the Cookie header, stores it in the request
// context, and flushes pending Set-Cookie lines exactly once, right before
// the response headers are written. Each request is tagged with a request ID
// (reused from the incoming header when present) that lands in the context,
// the response header, and the middleware's log records.
func Jar(m *jar.Manager) func(http.Handler) http.Handler {
	return JarWithConfig(m, JarConfig{})
}

// JarWithConfig creates the cookie jar middleware with custom configuration.
func JarWithConfig(m *jar.Manager, cfg JarConfig) func(http.Handler) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.RequestIDHeader == "" {
		cfg.RequestIDHeader = defaultRequestIDHeader
	}
	if cfg.RequestID == nil {
		cfg.RequestID = func() string {
			return uuid.New().String()
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			requestID := r.Header.Get(cfg.RequestIDHeader)
			if requestID == "" {
				requestID = cfg.RequestID()
			}
			w.Header().Set(cfg.RequestIDHeader, requestID)

			j := m.NewJar(r)
			jw := &jarWriter{ResponseWriter: w, jar: j}

			ctx := context.WithValue(r.Context(), jarContextKey{}, j)
			ctx = context.WithValue(ctx, requestIDContextKey{}, requestID)
			next.ServeHTTP(jw, r.WithContext(ctx))

			// Handlers that never write leave header emission to net/http
			// after return, so the flush here still lands in time.
			jw.flush()

			if pending := j.Len(); pending > 0 {
				cfg.Logger.DebugContext(ctx, "cookie jar serialized",
					slog.String("component", "middleware.jar"),
					slog.String("request_id", requestID),
					slog.String("path", r.URL.Path),
					slog.Int("set_cookie_lines", pending),
				)
			}
		})
	}
}

// JarFromContext retrieves the request's jar from the context. Returns the
// jar and a boolean indicating whether the middleware installed one.
func JarFromContext(ctx context.Context) (*jar.Jar, bool) {
	j, ok := ctx.Value(jarContextKey{}).(*jar.Jar)
	return j, ok
}

// RequestIDFromContext retrieves the request ID the middleware assigned to
// this request, so handlers can tag their own log records with it.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}

// jarWriter wraps http.ResponseWriter to serialize the jar exactly once,
// before the first byte of the response goes out. Headers added after
// WriteHeader are silently dropped by net/http, hence the interception.
type jarWriter struct {
	http.ResponseWriter
	jar     *jar.Jar
	flushed bool
}

func (w *jarWriter) WriteHeader(status int) {
	w.flush()
	w.ResponseWriter.WriteHeader(status)
}

func (w *jarWriter) Write(b []byte) (int, error) {
	w.flush()
	return w.ResponseWriter.Write(b)
}

func (w *jarWriter) flush() {
	if w.flushed {
		return
	}
	w.flushed = true
	w.jar.WriteHeaders(w.Header())
}

// Flush implements http.Flusher if the underlying ResponseWriter supports it.
func (w *jarWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
