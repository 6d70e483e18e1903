// Package redis implements an [op.MessageStore] on Redis,
// shared by all instances of a provider.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	rdb "github.com/redis/go-redis/v9"

	"github.com/zitadel/endsession/pkg/crypto"
	"github.com/zitadel/endsession/pkg/oidc"
	"github.com/zitadel/endsession/pkg/op"
	"github.com/zitadel/endsession/pkg/store"
)

const (
	DefaultKeyPrefix = "logout_message:"

	maxWriteAttempts = 3
)

var ErrKeyConflict = errors.New("redis store: no unused key found")

// Store keeps codec encoded messages under prefixed keys with a TTL.
type Store struct {
	client   rdb.UniversalClient
	codec    *store.Codec
	keys     op.KeyGenerator
	lifetime time.Duration
	prefix   string
}

type Option func(*Store)

func WithKeyGenerator(keys op.KeyGenerator) Option {
	return func(s *Store) {
		s.keys = keys
	}
}

func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

func New(client rdb.UniversalClient, codec *store.Codec, lifetime time.Duration, opts ...Option) *Store {
	s := &Store{
		client:   client,
		codec:    codec,
		keys:     crypto.DefaultKeyGenerator(),
		lifetime: lifetime,
		prefix:   DefaultKeyPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromAddr connects to a single Redis server.
func NewFromAddr(addr string, db int, codec *store.Codec, lifetime time.Duration, opts ...Option) *Store {
	return New(rdb.NewClient(&rdb.Options{Addr: addr, DB: db}), codec, lifetime, opts...)
}

func (s *Store) WriteMessage(ctx context.Context, msg *oidc.LogoutMessage) (string, error) {
	value, err := s.codec.Encode(msg)
	if err != nil {
		return "", fmt.Errorf("%w: %w", op.ErrStoreUnavailable, err)
	}
	for i := 0; i < maxWriteAttempts; i++ {
		key, err := s.keys.GenerateKey()
		if err != nil {
			return "", fmt.Errorf("%w: %w", op.ErrStoreUnavailable, err)
		}
		ok, err := s.client.SetNX(ctx, s.prefix+key, value, s.lifetime).Result()
		if err != nil {
			return "", fmt.Errorf("%w: %w", op.ErrStoreUnavailable, err)
		}
		if ok {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %w", op.ErrStoreUnavailable, ErrKeyConflict)
}

func (s *Store) ReadMessage(ctx context.Context, key string) (*oidc.LogoutMessage, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, rdb.Nil) {
		return nil, op.ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", op.ErrStoreUnavailable, err)
	}
	return s.codec.Decode(value)
}

func (s *Store) DeleteMessage(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("%w: %w", op.ErrStoreUnavailable, err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %w", op.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
