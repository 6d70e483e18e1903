// Package memory implements an in-process [op.MessageStore].
// Entries are lost on restart and not shared between instances.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zitadel/endsession/pkg/crypto"
	"github.com/zitadel/endsession/pkg/oidc"
	"github.com/zitadel/endsession/pkg/op"
)

const (
	DefaultCleanupInterval = time.Minute

	// maxWriteAttempts bounds key regeneration on collisions.
	maxWriteAttempts = 3
)

var (
	ErrStoreFull   = errors.New("memory store: capacity reached")
	ErrKeyConflict = errors.New("memory store: no unused key found")
)

type entry struct {
	message *oidc.LogoutMessage
	created time.Time
}

type Store struct {
	cache           *gocache.Cache
	keys            op.KeyGenerator
	maxEntries      int
	cleanupInterval time.Duration

	// mu serializes the capacity check with the insert.
	mu        sync.Mutex
	stop      chan struct{}
	closeOnce sync.Once
}

type Option func(*Store)

// WithKeyGenerator overrides the default [crypto.RandomKeyGenerator].
func WithKeyGenerator(keys op.KeyGenerator) Option {
	return func(s *Store) {
		s.keys = keys
	}
}

// WithMaxEntries bounds the number of stored entries.
// Writes beyond that fail with [op.ErrStoreUnavailable].
// 0 means unbounded.
func WithMaxEntries(max int) Option {
	return func(s *Store) {
		s.maxEntries = max
	}
}

func WithCleanupInterval(interval time.Duration) Option {
	return func(s *Store) {
		s.cleanupInterval = interval
	}
}

// New returns a store keeping every entry for lifetime.
// Expired entries are removed periodically until [Store.Close] is called.
func New(lifetime time.Duration, opts ...Option) *Store {
	s := &Store{
		// no go-cache janitor, it can't be stopped.
		cache:           gocache.New(lifetime, 0),
		keys:            crypto.DefaultKeyGenerator(),
		cleanupInterval: DefaultCleanupInterval,
		stop:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cleanupInterval > 0 {
		go s.janitor()
	}
	return s
}

func (s *Store) janitor() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.cache.DeleteExpired()
		case <-s.stop:
			return
		}
	}
}

// Close stops the cleanup of expired entries.
// The store remains usable.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
	})
	return nil
}

func (s *Store) WriteMessage(ctx context.Context, msg *oidc.LogoutMessage) (string, error) {
	e := &entry{
		message: msg.Clone(),
		created: time.Now(),
	}
	for i := 0; i < maxWriteAttempts; i++ {
		key, err := s.keys.GenerateKey()
		if err != nil {
			return "", fmt.Errorf("%w: %w", op.ErrStoreUnavailable, err)
		}
		err = s.add(ctx, key, e)
		if err == nil {
			return key, nil
		}
		if errors.Is(err, op.ErrStoreUnavailable) {
			return "", err
		}
	}
	return "", fmt.Errorf("%w: %w", op.ErrStoreUnavailable, ErrKeyConflict)
}

func (s *Store) add(ctx context.Context, key string, e *entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxEntries > 0 && s.cache.ItemCount() >= s.maxEntries {
		s.cache.DeleteExpired()
		if s.cache.ItemCount() >= s.maxEntries {
			return fmt.Errorf("%w: %w", op.ErrStoreUnavailable, ErrStoreFull)
		}
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", op.ErrStoreUnavailable, err)
	}
	return s.cache.Add(key, e, gocache.DefaultExpiration)
}

func (s *Store) ReadMessage(ctx context.Context, key string) (*oidc.LogoutMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", op.ErrStoreUnavailable, err)
	}
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, op.ErrMessageNotFound
	}
	return v.(*entry).message.Clone(), nil
}

func (s *Store) DeleteMessage(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", op.ErrStoreUnavailable, err)
	}
	s.cache.Delete(key)
	return nil
}

// Len returns the number of entries, including
// expired entries which weren't cleaned up yet.
func (s *Store) Len() int {
	return s.cache.ItemCount()
}
