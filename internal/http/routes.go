package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pulsehub/activity-feed-api/internal/observability/statsd"
)

// RouterServices groups the handlers the router exposes.
type RouterServices struct {
	Feed    *FeedHandlers
	Logger  *slog.Logger
	Metrics statsd.Sink
}

// NewRouter builds the read API route table.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("HEAD /healthz", healthHandler)

	mux.HandleFunc("GET /api/activity", services.Feed.ListActivities)
	mux.HandleFunc("GET /api/activity/{id}", services.Feed.GetActivity)

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return requestLogMiddleware(logger, services.Metrics, mux)
}

const healthResponse = `{"status":"ok"}`

// healthHandler returns a simple 200 OK status for readiness/liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, healthResponse); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}

// requestLogMiddleware tags each request with a correlation id, logs its
// outcome, and emits request metrics when a sink is configured.
func requestLogMiddleware(logger *slog.Logger, metrics statsd.Sink, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		elapsed := time.Since(start)

		logger.InfoContext(r.Context(), "request completed",
			"request_id", reqID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration_ms", elapsed.Milliseconds())

		if metrics != nil {
			tags := map[string]string{
				"method": r.Method,
				"status": strconv.Itoa(sw.status),
			}
			metrics.Count("http.request", 1, tags)
			metrics.Timing("http.request.duration", elapsed, tags)
		}
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
