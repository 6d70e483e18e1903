package op

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/zitadel/endsession/internal/otel"
	"github.com/zitadel/endsession/pkg/oidc"
)

// EndSessionOutcome is the result of validating an end session request.
// It is one of [*ValidatedEndSession], [*FailedEndSession] or [AnonymousEndSession].
type EndSessionOutcome interface {
	endSessionOutcome()
}

// ValidatedEndSession is a fully validated end session request.
type ValidatedEndSession struct {
	ClientID              string
	PostLogoutRedirectURI string
	SessionID             string
	SubjectID             string
	State                 string
	UILocales             oidc.Locales
}

func (*ValidatedEndSession) endSessionOutcome() {}

func (v *ValidatedEndSession) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("client_id", v.ClientID),
		slog.String("post_logout_redirect_uri", v.PostLogoutRedirectURI),
	)
}

// FailedEndSession is an end session request which failed validation.
// It never carries request data.
type FailedEndSession struct {
	Err error
}

func (*FailedEndSession) endSessionOutcome() {}

// AnonymousEndSession is an end session request without
// any client or session to validate, and without errors.
type AnonymousEndSession struct{}

func (AnonymousEndSession) endSessionOutcome() {}

// EndSessionResult turns an [EndSessionOutcome] into a redirect to the logout page.
// Only validated outcomes pass a [oidc.LogoutMessage] through the [MessageStore].
type EndSessionResult struct {
	config UserInteraction
	store  MessageStore
	logger *slog.Logger
}

type EndSessionResultOption func(*EndSessionResult)

func WithResultLogger(logger *slog.Logger) EndSessionResultOption {
	return func(e *EndSessionResult) {
		e.logger = logger
	}
}

var ErrMissingMessageStore = errors.New("message store must not be nil")

func NewEndSessionResult(config UserInteraction, store MessageStore, opts ...EndSessionResultOption) (*EndSessionResult, error) {
	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrMissingMessageStore
	}
	e := &EndSessionResult{
		config: config,
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

func (e *EndSessionResult) Config() UserInteraction {
	return e.config
}

// Redirect writes at most one logout message and returns the redirect
// to the logout page. The logout id parameter is only added
// if a message was written.
// Failed validations are not reported in the URL.
func (e *EndSessionResult) Redirect(ctx context.Context, host Host, outcome EndSessionOutcome) (_ *Redirect, err error) {
	ctx, span := tracer.Start(ctx, "EndSessionResult.Redirect")
	defer span.End()
	span.SetAttributes(otel.String("outcome", outcomeName(outcome)))

	var logoutID string
	if msg := e.logoutMessage(ctx, outcome); msg != nil {
		logoutID, err = e.store.WriteMessage(ctx, msg)
		if err != nil {
			return nil, oidc.ErrServerError().WithDescription("error storing logout message").WithParent(err)
		}
		span.SetAttributes(otel.Bool("logout_message_written", true))
		loggerFromContext(ctx, e.logger).DebugContext(ctx, "logout message stored", "logout_message", msg)
	}

	logoutURL, err := ResolveLogoutURL(host.Origin, host.BasePath, e.config.LogoutURL)
	if err != nil {
		return nil, oidc.ErrServerError().WithDescription("error resolving logout url").WithParent(err)
	}
	if logoutID != "" {
		logoutURL += "?" + url.Values{e.config.LogoutIDParameter: {logoutID}}.Encode()
	}
	return NewRedirect(logoutURL), nil
}

// logoutMessage returns nil for failed and anonymous outcomes.
// The failed case is checked first, so that an error always suppresses the message.
func (e *EndSessionResult) logoutMessage(ctx context.Context, outcome EndSessionOutcome) *oidc.LogoutMessage {
	switch o := outcome.(type) {
	case *FailedEndSession:
		var err error
		if o != nil {
			err = o.Err
		}
		loggerFromContext(ctx, e.logger).WarnContext(ctx, "end session request invalid", "error", err)
		return nil
	case *ValidatedEndSession:
		if o == nil || o.ClientID == "" {
			return nil
		}
		return &oidc.LogoutMessage{
			ClientID:              o.ClientID,
			PostLogoutRedirectURI: o.PostLogoutRedirectURI,
			SessionID:             o.SessionID,
			SubjectID:             o.SubjectID,
			UILocales:             o.UILocales.Strings(),
		}
	default:
		return nil
	}
}

func outcomeName(outcome EndSessionOutcome) string {
	switch outcome.(type) {
	case *ValidatedEndSession:
		return "validated"
	case *FailedEndSession:
		return "failed"
	default:
		return "anonymous"
	}
}

// Execute writes the redirect for outcome to w.
// The host is taken from the request context (see [HostInterceptor]),
// or derived from the request if none was set.
func (e *EndSessionResult) Execute(w http.ResponseWriter, r *http.Request, outcome EndSessionOutcome) {
	host, ok := HostFromContext(r.Context())
	if !ok {
		host = RequestHost("/")(r)
	}
	redirect, err := e.Redirect(r.Context(), host, outcome)
	if err != nil {
		WriteError(w, r, err, e.logger)
		return
	}
	redirect.writeOut(w, r)
}
