package op

import "context"

// Client is the part of a registered client
// needed to validate end session requests.
type Client interface {
	GetID() string
	PostLogoutRedirectURIs() []string
}

// HasRedirectGlobs is an optional interface that can be implemented by implementors of
// Client. See https://pkg.go.dev/github.com/gobwas/glob#Compile for glob
// interpretation. Redirect URIs that match either the non-glob version or the
// glob version will be accepted. Single wildcards do not cross '/'.
type HasRedirectGlobs interface {
	Client
	PostLogoutRedirectURIGlobs() []string
}

type ClientStorage interface {
	GetClientByClientID(ctx context.Context, clientID string) (Client, error)
}
