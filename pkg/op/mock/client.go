package mock

import (
	"testing"

	gomock "github.com/golang/mock/gomock"

	op "github.com/zitadel/endsession/pkg/op"
)

// NewClientWithGlobs returns a client mock registered with the
// passed post logout redirect URIs and globs.
func NewClientWithGlobs(t *testing.T, id string, uris, globs []string) op.HasRedirectGlobs {
	m := NewMockHasRedirectGlobs(gomock.NewController(t))
	m.EXPECT().GetID().AnyTimes().Return(id)
	m.EXPECT().PostLogoutRedirectURIs().AnyTimes().Return(uris)
	m.EXPECT().PostLogoutRedirectURIGlobs().AnyTimes().Return(globs)
	return m
}

// NewClientStorage returns a storage mock which knows exactly the passed clients.
func NewClientStorage(t *testing.T, clients ...op.Client) *MockClientStorage {
	m := NewMockClientStorage(gomock.NewController(t))
	byID := make(map[string]op.Client, len(clients))
	for _, c := range clients {
		byID[c.GetID()] = c
	}
	m.EXPECT().GetClientByClientID(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ interface{}, id string) (op.Client, error) {
			c, ok := byID[id]
			if !ok {
				return nil, ErrClientNotFound
			}
			return c, nil
		})
	return m
}
