package storage

import (
	"context"
	"sync"

	"github.com/zitadel/endsession/pkg/oidc"
	"github.com/zitadel/endsession/pkg/op"
)

// Client represents the storage model of an OAuth/OIDC client
// this could also be your database model
type Client struct {
	id                         string
	postLogoutRedirectURIs     []string
	postLogoutRedirectURIGlobs []string
}

// NewClient returns a client accepting the passed post_logout_redirect_uris.
func NewClient(id string, postLogoutRedirectURIs ...string) *Client {
	return &Client{
		id:                     id,
		postLogoutRedirectURIs: postLogoutRedirectURIs,
	}
}

// WithPostLogoutRedirectURIGlobs adds glob patterns to the accepted post_logout_redirect_uris.
func (c *Client) WithPostLogoutRedirectURIGlobs(globs ...string) *Client {
	c.postLogoutRedirectURIGlobs = append(c.postLogoutRedirectURIGlobs, globs...)
	return c
}

// GetID must return the client_id
func (c *Client) GetID() string {
	return c.id
}

// PostLogoutRedirectURIs must return the registered post_logout_redirect_uris for sign-outs
func (c *Client) PostLogoutRedirectURIs() []string {
	return c.postLogoutRedirectURIs
}

// PostLogoutRedirectURIGlobs provide the glob patterns, see [op.HasRedirectGlobs].
func (c *Client) PostLogoutRedirectURIGlobs() []string {
	return c.postLogoutRedirectURIGlobs
}

// Clients is an in-memory client registry implementing [op.ClientStorage].
type Clients struct {
	lock    sync.RWMutex
	clients map[string]*Client
}

func NewClients(clients ...*Client) *Clients {
	s := &Clients{
		clients: make(map[string]*Client, len(clients)),
	}
	s.Register(clients...)
	return s
}

// Register allows adding clients, replacing clients with the same id.
func (s *Clients) Register(clients ...*Client) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, client := range clients {
		s.clients[client.id] = client
	}
}

// GetClientByClientID implements the op.ClientStorage interface
// it will be called whenever a client_id is passed to the end_session endpoint
func (s *Clients) GetClientByClientID(_ context.Context, clientID string) (op.Client, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	client, ok := s.clients[clientID]
	if !ok {
		return nil, oidc.ErrInvalidClient().WithDescription("client not found")
	}
	return client, nil
}
