package op

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rs/xid"
	"github.com/zitadel/logging"
)

// LogMiddleware puts a logger carrying a fresh request id into the
// request context (see [logging.FromContext]) and logs every
// finished request.
func LogMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With("request_id", xid.New().String())
			r = r.WithContext(logging.ToContext(r.Context(), reqLogger))
			lw := &loggedWriter{
				ResponseWriter: w,
			}
			next.ServeHTTP(lw, r)
			done := reqLogger.With(
				slog.Group("request", "method", r.Method, "path", r.URL.Path),
				slog.Group("response", "duration", time.Since(start), "status", lw.statusCode, "written", lw.written),
			)
			if lw.err != nil {
				done.ErrorContext(r.Context(), "response writer", "error", lw.err)
				return
			}
			done.InfoContext(r.Context(), "done")
		})
	}
}

type loggedWriter struct {
	http.ResponseWriter

	statusCode int
	written    int
	err        error
}

func (w *loggedWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *loggedWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += n
	w.err = err
	return n, err
}
