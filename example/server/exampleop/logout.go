package exampleop

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zitadel/endsession/example/server/storage"
	"github.com/zitadel/endsession/pkg/oidc"
	"github.com/zitadel/endsession/pkg/op"
)

var logoutTmpl = template.Must(template.New("logout").Parse(`
	<!DOCTYPE html>
	<html>
		<head>
			<meta charset="UTF-8">
			<title>Logout</title>
		</head>
		<body style="display: flex; align-items: center; justify-content: center; height: 100vh;">
			<form method="POST" action="{{.Action}}" style="width: 300px;">

				<input type="hidden" name="{{.Param}}" value="{{.ID}}">

				{{if .ClientID}}
				<p>Do you want to sign out of <b>{{.ClientID}}</b>?</p>
				{{else}}
				<p>Do you want to sign out?</p>
				{{end}}

				<button type="submit">Logout</button>
			</form>
		</body>
	</html>`))

type logout struct {
	store    op.MessageStore
	sessions *storage.Sessions
	param    string
	done     string
	router   chi.Router
}

// NewLogout returns the logout confirmation page for the messages
// written by the end_session endpoint.
// Users without a post_logout_redirect_uri are sent to done.
func NewLogout(store op.MessageStore, sessions *storage.Sessions, param, done string) *logout {
	l := &logout{
		store:    store,
		sessions: sessions,
		param:    param,
		done:     done,
	}
	l.createRouter()
	return l
}

func (l *logout) createRouter() {
	l.router = chi.NewRouter()
	l.router.Get("/", l.confirmHandler)
	l.router.Post("/", l.logoutHandler)
}

func (l *logout) confirmHandler(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(l.param)
	msg, err := l.readMessage(r, id)
	if err != nil {
		http.Error(w, "logout request unavailable", http.StatusServiceUnavailable)
		return
	}
	data := &struct {
		Action   string
		Param    string
		ID       string
		ClientID string
	}{
		Action: r.URL.Path,
		Param:  l.param,
		ID:     id,
	}
	if msg != nil {
		data.ClientID = msg.ClientID
	}
	if err := logoutTmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (l *logout) logoutHandler(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		http.Error(w, fmt.Sprintf("cannot parse form:%s", err), http.StatusBadRequest)
		return
	}
	id := r.FormValue(l.param)
	msg, err := l.readMessage(r, id)
	if err != nil {
		http.Error(w, "logout request unavailable", http.StatusServiceUnavailable)
		return
	}
	l.sessions.End(w)

	redirect := l.done
	if msg != nil {
		if err := l.store.DeleteMessage(r.Context(), id); err != nil {
			slog.WarnContext(r.Context(), "delete logout message", "error", err)
		}
		if msg.PostLogoutRedirectURI != "" {
			redirect = msg.PostLogoutRedirectURI
		}
	}
	http.Redirect(w, r, redirect, http.StatusFound)
}

// readMessage returns nil without an error for
// requests without (known) logout id.
func (l *logout) readMessage(r *http.Request, id string) (*oidc.LogoutMessage, error) {
	if id == "" {
		return nil, nil
	}
	msg, err := l.store.ReadMessage(r.Context(), id)
	if errors.Is(err, op.ErrMessageNotFound) {
		return nil, nil
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "read logout message", "error", err)
		return nil, err
	}
	return msg, nil
}
