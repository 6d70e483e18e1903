package oidc

import (
	"log/slog"
	"maps"
	"slices"
)

// EndSessionRequest for the RP-Initiated Logout according to:
// https://openid.net/specs/openid-connect-rpinitiated-1_0.html#RPLogout
type EndSessionRequest struct {
	IdTokenHint           string  `schema:"id_token_hint"`
	LogoutHint            string  `schema:"logout_hint"`
	ClientID              string  `schema:"client_id"`
	PostLogoutRedirectURI string  `schema:"post_logout_redirect_uri"`
	State                 string  `schema:"state"`
	UILocales             Locales `schema:"ui_locales"`
}

// LogoutMessage is the context of a validated end session request,
// handed from the end_session endpoint to the logout page through
// an ephemeral message store.
//
// A LogoutMessage must not be modified after it was written to a store.
// Stores keep their own copy and return a new copy on every read.
type LogoutMessage struct {
	ClientID              string            `json:"client_id"`
	PostLogoutRedirectURI string            `json:"post_logout_redirect_uri,omitempty"`
	SessionID             string            `json:"sid,omitempty"`
	SubjectID             string            `json:"sub,omitempty"`
	UILocales             []string          `json:"ui_locales,omitempty"`
	Parameters            map[string]string `json:"parameters,omitempty"`
}

// Clone returns a deep copy of the message.
func (m *LogoutMessage) Clone() *LogoutMessage {
	if m == nil {
		return nil
	}
	c := *m
	c.UILocales = slices.Clone(m.UILocales)
	c.Parameters = maps.Clone(m.Parameters)
	return &c
}

func (m *LogoutMessage) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs, slog.String("client_id", m.ClientID))
	if m.PostLogoutRedirectURI != "" {
		attrs = append(attrs, slog.String("post_logout_redirect_uri", m.PostLogoutRedirectURI))
	}
	if m.SessionID != "" {
		attrs = append(attrs, slog.String("sid", m.SessionID))
	}
	if m.SubjectID != "" {
		attrs = append(attrs, slog.String("sub", m.SubjectID))
	}
	return slog.GroupValue(attrs...)
}
