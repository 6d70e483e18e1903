package exampleop

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zitadel/endsession/example/server/config"
	"github.com/zitadel/endsession/example/server/storage"
	"github.com/zitadel/endsession/pkg/http/mw"
	"github.com/zitadel/endsession/pkg/op"
)

const (
	pathLoggedOut = "/logged-out"
	pathLogin     = "/login"
)

// SetupServer creates the end_session endpoint with its logout page,
// mounted on the configured base path.
// Metrics of the store are served on /metrics.
func SetupServer(cfg *config.Config, store op.MessageStore, clients op.ClientStorage, sessions *storage.Sessions, registry *prometheus.Registry, logger *slog.Logger, readyChecks ...op.ReadyCheck) (http.Handler, error) {
	result, err := op.NewEndSessionResult(cfg.UserInteraction, store, op.WithResultLogger(logger))
	if err != nil {
		return nil, err
	}
	validator := op.NewEndSessionValidator(clients, op.WithSessionReader(sessions))

	hostFromRequest := op.ForwardedHost(cfg.BasePath)
	if cfg.Origin != "" {
		hostFromRequest = op.StaticHost(cfg.Origin, cfg.BasePath)
	}
	provider := op.RegisterServer(validator, result,
		op.WithFallbackLogger(logger),
		op.WithHTTPMiddleware(op.NewHostInterceptor(hostFromRequest).Handler),
		op.WithReadyChecks(readyChecks...),
	)

	app := chi.NewRouter()

	// for simplicity, we provide a very small default page for users who have signed out
	app.Get(pathLoggedOut, func(w http.ResponseWriter, req *http.Request) {
		_, err := w.Write([]byte("signed out successfully"))
		if err != nil {
			logger.ErrorContext(req.Context(), "error serving logged out page", "error", err)
		}
	})

	// the login UI is not part of this example,
	// this only starts a session for the passed subject
	app.Get(pathLogin, func(w http.ResponseWriter, req *http.Request) {
		session := &op.UserSession{
			Subject:   req.URL.Query().Get("sub"),
			SessionID: req.URL.Query().Get("sid"),
		}
		if session.Subject == "" {
			http.Error(w, "sub missing", http.StatusBadRequest)
			return
		}
		if err := sessions.Start(w, session); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("signed in as " + session.Subject))
	})

	logoutPath, err := logoutPagePath(cfg.UserInteraction.LogoutURL)
	if err != nil {
		return nil, err
	}
	if logoutPath != "" {
		done := path.Join("/", cfg.BasePath, pathLoggedOut)
		logout := NewLogout(store, sessions, cfg.UserInteraction.LogoutIDParameter, done)
		app.Mount(logoutPath, mw.Chain(mw.NoStore, mw.DenyFraming)(logout.router))
	}
	app.Mount("/", provider)

	router := chi.NewRouter()
	router.Use(op.LogMiddleware(logger))
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	router.Mount(path.Join("/", cfg.BasePath), app)
	return router, nil
}

// localOrigin never matches the host of an absolute logout URL.
const localOrigin = "http://logout.invalid"

// logoutPagePath returns the path of a local logout page
// relative to the base path, or an empty string if the
// logout page is served elsewhere.
func logoutPagePath(logoutURL string) (string, error) {
	resolved, err := op.ResolveLogoutURL(localOrigin, "/", logoutURL)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(resolved)
	if err != nil {
		return "", err
	}
	if u.Scheme+"://"+u.Host != localOrigin {
		return "", nil
	}
	p := strings.TrimSuffix(u.Path, "/")
	if p == "" {
		return "", errors.New("logout page must not be served on the base path")
	}
	return p, nil
}
