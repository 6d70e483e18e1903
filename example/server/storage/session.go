package storage

import (
	"context"
	"log/slog"
	"net/http"

	httphelper "github.com/zitadel/endsession/pkg/http"
	"github.com/zitadel/endsession/pkg/oidc"
	"github.com/zitadel/endsession/pkg/op"
)

const SessionCookieName = "user_session"

// Sessions keeps the session of the user agent in a signed
// and encrypted cookie. It implements [op.SessionReader].
type Sessions struct {
	cookies *httphelper.CookieHandler
}

func NewSessions(cookies *httphelper.CookieHandler) *Sessions {
	return &Sessions{
		cookies: cookies,
	}
}

func (s *Sessions) Start(w http.ResponseWriter, session *op.UserSession) error {
	return s.cookies.SetCookie(w, SessionCookieName, session)
}

func (s *Sessions) End(w http.ResponseWriter) {
	s.cookies.DeleteCookie(w, SessionCookieName)
}

// Current returns the session of the request, if any.
func (s *Sessions) Current(r *http.Request) (*op.UserSession, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, false
	}
	return s.fromCookie(r.Context(), cookie)
}

func (s *Sessions) CurrentSession(ctx context.Context, r *op.Request[oidc.EndSessionRequest]) (*op.UserSession, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, false
	}
	return s.fromCookie(ctx, cookie)
}

func (s *Sessions) fromCookie(ctx context.Context, cookie *http.Cookie) (*op.UserSession, bool) {
	session := new(op.UserSession)
	if err := s.cookies.CheckCookie(cookie, session); err != nil {
		slog.WarnContext(ctx, "invalid session cookie", "error", err)
		return nil, false
	}
	return session, session.Subject != ""
}
