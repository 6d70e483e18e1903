// Package store contains building blocks shared by the
// [op.MessageStore] implementations in its sub packages.
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/zitadel/endsession/pkg/oidc"
	"github.com/zitadel/endsession/pkg/op"
)

// codecName is part of the authenticated payload,
// values of other codecs can't be decoded by this one.
const codecName = "logout_message"

var ErrMissingHashKey = errors.New("store: codec requires a hash key")

// Codec encodes logout messages into authenticated,
// optionally encrypted strings and back.
// Encoded values carry their creation time and are
// rejected after lifetime has passed.
type Codec struct {
	sc *securecookie.SecureCookie
}

type CodecOption func(*securecookie.SecureCookie)

// WithMaxLength limits the length of encoded values, 0 disables the limit (default).
func WithMaxLength(length int) CodecOption {
	return func(sc *securecookie.SecureCookie) {
		sc.MaxLength(length)
	}
}

// NewCodec returns a Codec signing with hashKey (32 or 64 bytes recommended).
// If blockKey is not empty (16, 24 or 32 bytes), values are encrypted with AES.
func NewCodec(hashKey, blockKey []byte, lifetime time.Duration, opts ...CodecOption) (*Codec, error) {
	if len(hashKey) == 0 {
		return nil, ErrMissingHashKey
	}
	if len(blockKey) == 0 {
		blockKey = nil
	}
	sc := securecookie.New(hashKey, blockKey).
		SetSerializer(securecookie.JSONEncoder{}).
		MaxAge(int(lifetime.Seconds())).
		MaxLength(0)
	// securecookie keeps key errors until the first Encode
	if _, err := sc.Encode(codecName, &oidc.LogoutMessage{}); err != nil {
		return nil, fmt.Errorf("store: invalid codec keys: %w", err)
	}
	for _, opt := range opts {
		opt(sc)
	}
	return &Codec{sc: sc}, nil
}

func (c *Codec) Encode(msg *oidc.LogoutMessage) (string, error) {
	value, err := c.sc.Encode(codecName, msg)
	if err != nil {
		return "", fmt.Errorf("store: encode logout message: %w", err)
	}
	return value, nil
}

// Decode returns [op.ErrMessageNotFound] for values which
// are tampered, expired or otherwise undecodable.
func (c *Codec) Decode(value string) (*oidc.LogoutMessage, error) {
	msg := new(oidc.LogoutMessage)
	if err := c.sc.Decode(codecName, value, msg); err != nil {
		return nil, fmt.Errorf("%w: %w", op.ErrMessageNotFound, err)
	}
	return msg, nil
}
