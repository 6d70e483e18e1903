package op

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"github.com/zitadel/schema"

	httphelper "github.com/zitadel/endsession/pkg/http"
	"github.com/zitadel/endsession/pkg/http/mw"
	"github.com/zitadel/endsession/pkg/oidc"
)

// RegisterServer returns the HTTP handler serving the end_session endpoint.
// Every request is validated by validator and answered by result.
func RegisterServer(validator EndSessionValidator, result *EndSessionResult, options ...ServerOption) http.Handler {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	ws := &webServer{
		validator:  validator,
		result:     result,
		endSession: DefaultEndSessionEndpoint,
		decoder:    decoder,
		logger:     slog.Default(),
	}

	for _, option := range options {
		option(ws)
	}

	ws.createRouter()
	return ws
}

type ServerOption func(s *webServer)

// WithHTTPMiddleware sets the passed middleware chain to the root of
// the Server's router.
func WithHTTPMiddleware(m ...func(http.Handler) http.Handler) ServerOption {
	return func(s *webServer) {
		s.middleware = m
	}
}

// WithDecoder overrides the default decoder,
// which is a [schema.Decoder] with IgnoreUnknownKeys set to true.
func WithDecoder(decoder httphelper.Decoder) ServerOption {
	return func(s *webServer) {
		s.decoder = decoder
	}
}

// WithFallbackLogger overrides the fallback logger, which
// is used when no logger was found in the context.
// Defaults to [slog.Default].
func WithFallbackLogger(logger *slog.Logger) ServerOption {
	return func(s *webServer) {
		s.logger = logger
	}
}

func WithEndSessionEndpoint(endpoint Endpoint) ServerOption {
	return func(s *webServer) {
		s.endSession = endpoint
	}
}

// ReadyCheck returns an error when a dependency,
// such as the message store, is not ready.
type ReadyCheck func(r *http.Request) error

func WithReadyChecks(checks ...ReadyCheck) ServerOption {
	return func(s *webServer) {
		s.readyChecks = append(s.readyChecks, checks...)
	}
}

type webServer struct {
	http.Handler
	validator   EndSessionValidator
	result      *EndSessionResult
	middleware  []func(http.Handler) http.Handler
	endSession  Endpoint
	decoder     httphelper.Decoder
	logger      *slog.Logger
	readyChecks []ReadyCheck
}

func (s *webServer) createRouter() {
	router := chi.NewRouter()
	router.Use(cors.New(defaultCORSOptions).Handler)
	router.Use(s.middleware...)
	router.HandleFunc(healthEndpoint, s.healthHandler)
	router.HandleFunc(readinessEndpoint, s.readyHandler)
	router.With(mw.NoStore).HandleFunc(s.endSession.Relative(), s.endSessionHandler)
	s.Handler = router
}

type status struct {
	Status string `json:"status,omitempty"`
}

func (s *webServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	httphelper.MarshalJSON(w, status{Status: "ok"})
}

func (s *webServer) readyHandler(w http.ResponseWriter, r *http.Request) {
	for _, check := range s.readyChecks {
		if err := check(r); err != nil {
			WriteError(w, r, NewStatusError(oidc.ErrServerError().WithDescription("not ready").WithParent(err), http.StatusServiceUnavailable), s.logger)
			return
		}
	}
	httphelper.MarshalJSON(w, status{Status: "ok"})
}

func decodeRequest[R any](decoder httphelper.Decoder, r *http.Request, postOnly bool) (*R, error) {
	dst := new(R)
	if err := r.ParseForm(); err != nil {
		return nil, oidc.ErrInvalidRequest().WithDescription("error parsing form").WithParent(err)
	}
	form := r.Form
	if postOnly {
		form = r.PostForm
	}
	if err := decoder.Decode(dst, form); err != nil {
		return nil, oidc.ErrInvalidRequest().WithDescription("error decoding form").WithParent(err)
	}
	return dst, nil
}
