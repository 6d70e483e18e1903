package op

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/zitadel/logging"

	httphelper "github.com/zitadel/endsession/pkg/http"
	"github.com/zitadel/endsession/pkg/oidc"
)

// WriteError logs the error and writes it as OAuth error JSON.
// The status code is taken from a wrapped [StatusError],
// or derived from the error type otherwise.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	e := oidc.DefaultToServerError(err, err.Error())
	loggerFromContext(r.Context(), logger).Log(r.Context(), e.LogLevel(), "request error", "oidc_error", e)
	httphelper.MarshalJSONWithStatus(w, e, errorStatus(err, e))
}

func errorStatus(err error, e *oidc.Error) int {
	var statusError StatusError
	if errors.As(err, &statusError) {
		return statusError.statusCode
	}
	switch e.ErrorType {
	case oidc.InvalidClient:
		return http.StatusUnauthorized
	case oidc.ServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// loggerFromContext prefers the request scoped logger set by [LogMiddleware].
func loggerFromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := logging.FromContext(ctx); ok {
		return logger
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
