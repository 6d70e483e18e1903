package op

import (
	"context"
	"net/http"
	"net/url"

	"github.com/zitadel/endsession/pkg/oidc"
)

// EndSessionValidator validates end session requests.
// Validation failures are returned as [*FailedEndSession],
// never as an error, so the caller always redirects to the logout page.
type EndSessionValidator interface {
	ValidateEndSession(ctx context.Context, r *Request[oidc.EndSessionRequest]) EndSessionOutcome
}

// IDTokenHintClaims are the claims of a verified id_token_hint
// needed to end a session.
type IDTokenHintClaims struct {
	Subject         string
	AuthorizedParty string
	SessionID       string
}

// IDTokenHintVerifier verifies the signature of an id_token_hint.
// Expired tokens must be accepted.
type IDTokenHintVerifier func(ctx context.Context, idTokenHint string) (*IDTokenHintClaims, error)

// UserSession is the authenticated session of the current user agent.
type UserSession struct {
	Subject   string `json:"sub"`
	SessionID string `json:"sid"`
}

// SessionReader returns the authenticated session of the user agent, if any.
type SessionReader interface {
	CurrentSession(ctx context.Context, r *Request[oidc.EndSessionRequest]) (*UserSession, bool)
}

type endSessionValidator struct {
	storage    ClientStorage
	verifyHint IDTokenHintVerifier
	sessions   SessionReader
}

type EndSessionValidatorOption func(*endSessionValidator)

func WithIDTokenHintVerifier(verifier IDTokenHintVerifier) EndSessionValidatorOption {
	return func(v *endSessionValidator) {
		v.verifyHint = verifier
	}
}

func WithSessionReader(sessions SessionReader) EndSessionValidatorOption {
	return func(v *endSessionValidator) {
		v.sessions = sessions
	}
}

func NewEndSessionValidator(storage ClientStorage, opts ...EndSessionValidatorOption) EndSessionValidator {
	v := &endSessionValidator{
		storage: storage,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *endSessionValidator) ValidateEndSession(ctx context.Context, r *Request[oidc.EndSessionRequest]) EndSessionOutcome {
	ctx, span := tracer.Start(ctx, "ValidateEndSession")
	defer span.End()

	session, err := v.validate(ctx, r)
	if err != nil {
		return &FailedEndSession{Err: err}
	}
	if session == nil {
		return AnonymousEndSession{}
	}
	return session
}

func (v *endSessionValidator) validate(ctx context.Context, r *Request[oidc.EndSessionRequest]) (*ValidatedEndSession, error) {
	req := r.Data
	session := &ValidatedEndSession{
		UILocales: req.UILocales,
		State:     req.State,
	}
	clientID := req.ClientID
	if req.IdTokenHint != "" {
		if v.verifyHint == nil {
			return nil, oidc.ErrInvalidRequest().WithDescription("id_token_hint not supported")
		}
		claims, err := v.verifyHint(ctx, req.IdTokenHint)
		if err != nil {
			return nil, oidc.ErrInvalidRequest().WithDescription("id_token_hint invalid").WithParent(err)
		}
		if claims == nil {
			return nil, oidc.ErrInvalidRequest().WithDescription("id_token_hint invalid")
		}
		if clientID != "" && clientID != claims.AuthorizedParty {
			return nil, oidc.ErrInvalidRequest().WithDescription("client_id does not match azp of id_token_hint")
		}
		clientID = claims.AuthorizedParty
		session.SubjectID = claims.Subject
		session.SessionID = claims.SessionID
	}
	if clientID == "" {
		if req.PostLogoutRedirectURI != "" {
			return nil, oidc.ErrInvalidRequest().WithDescription("post_logout_redirect_uri requires client_id or id_token_hint")
		}
		return nil, nil
	}

	client, err := v.storage.GetClientByClientID(ctx, clientID)
	if err != nil {
		return nil, oidc.DefaultToServerError(err, "error loading client")
	}
	session.ClientID = client.GetID()
	if req.PostLogoutRedirectURI != "" {
		if err := ValidateEndSessionPostLogoutRedirectURI(req.PostLogoutRedirectURI, client); err != nil {
			return nil, err
		}
		session.PostLogoutRedirectURI = req.PostLogoutRedirectURI
		if req.State != "" {
			redirect, err := url.Parse(session.PostLogoutRedirectURI)
			if err != nil {
				return nil, oidc.DefaultToServerError(err, "")
			}
			session.PostLogoutRedirectURI = mergeQueryParams(redirect, url.Values{"state": {req.State}})
		}
	}

	if v.sessions != nil {
		if current, ok := v.sessions.CurrentSession(ctx, r); ok {
			if session.SubjectID != "" && session.SubjectID != current.Subject {
				return nil, oidc.ErrInvalidRequest().WithDescription("id_token_hint does not match the current user")
			}
			session.SubjectID = current.Subject
			if session.SessionID == "" {
				session.SessionID = current.SessionID
			}
		}
	}
	return session, nil
}

func ValidateEndSessionPostLogoutRedirectURI(postLogoutRedirectURI string, client Client) error {
	for _, uri := range client.PostLogoutRedirectURIs() {
		if uri == postLogoutRedirectURI {
			return nil
		}
	}
	if globClient, ok := client.(HasRedirectGlobs); ok {
		for _, uriGlob := range globClient.PostLogoutRedirectURIGlobs() {
			matcher, err := CompileGlob(uriGlob)
			if err != nil {
				return oidc.ErrServerError().WithParent(err)
			}
			if matcher.Match(postLogoutRedirectURI) {
				return nil
			}
		}
	}
	return oidc.ErrInvalidRequestRedirectURI().WithDescription("post_logout_redirect_uri invalid")
}

func mergeQueryParams(uri *url.URL, params url.Values) string {
	queries := uri.Query()
	for param, values := range params {
		for _, value := range values {
			queries.Add(param, value)
		}
	}
	uri.RawQuery = queries.Encode()
	return uri.String()
}

func (s *webServer) endSessionHandler(w http.ResponseWriter, r *http.Request) {
	request, err := decodeRequest[oidc.EndSessionRequest](s.decoder, r, false)
	if err != nil {
		s.result.Execute(w, r, &FailedEndSession{Err: err})
		return
	}
	outcome := s.validator.ValidateEndSession(r.Context(), newRequest(r, request))
	s.result.Execute(w, r, outcome)
}
