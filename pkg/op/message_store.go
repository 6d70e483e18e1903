package op

import (
	"context"
	"errors"

	"github.com/zitadel/endsession/pkg/oidc"
)

var (
	// ErrStoreUnavailable is returned (wrapped) when the backing medium
	// of a [MessageStore] cannot accept a write or serve a read.
	ErrStoreUnavailable = errors.New("logout message store unavailable")

	// ErrMessageNotFound is returned (wrapped) by [MessageStore.ReadMessage]
	// for unknown or expired keys.
	ErrMessageNotFound = errors.New("logout message not found")
)

// MessageStore passes [oidc.LogoutMessage] values across the
// redirect from the end_session endpoint to the logout page.
//
// Implementations must be safe for concurrent use.
// WriteMessage must be atomic: either the complete message becomes
// readable under the returned key, or nothing is stored.
// Keys must be unguessable and never reused.
//
// ReadMessage does not consume the entry. It stays readable until
// it expires or is removed by DeleteMessage.
type MessageStore interface {
	WriteMessage(ctx context.Context, msg *oidc.LogoutMessage) (key string, err error)
	ReadMessage(ctx context.Context, key string) (*oidc.LogoutMessage, error)
	DeleteMessage(ctx context.Context, key string) error
}

// KeyGenerator returns fresh opaque keys
// from a cryptographically secure random source.
type KeyGenerator interface {
	GenerateKey() (string, error)
}

// KeyGeneratorFunc adapts a function to a [KeyGenerator].
type KeyGeneratorFunc func() (string, error)

func (f KeyGeneratorFunc) GenerateKey() (string, error) {
	return f()
}
