package redis_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	rdb "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/zitadel/endsession/pkg/oidc"
	"github.com/zitadel/endsession/pkg/op"
	"github.com/zitadel/endsession/pkg/store"
	"github.com/zitadel/endsession/pkg/store/redis"
)

var testMessage = &oidc.LogoutMessage{
	ClientID:              "client",
	PostLogoutRedirectURI: "http://client/post-logout-callback",
	SessionID:             "sid",
}

func newCodec(t *testing.T) *store.Codec {
	codec, err := store.NewCodec([]byte("0123456789abcdef0123456789abcdef"), []byte("0123456789abcdef"), time.Minute)
	require.NoError(t, err)
	return codec
}

func newMiniredisStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	s := redis.New(rdb.NewClient(&rdb.Options{Addr: mr.Addr()}), newCodec(t), time.Minute, opts...)
	t.Cleanup(func() { s.Close() })
	return s, mr
}

// sequence returns the passed keys in order.
func sequence(keys ...string) op.KeyGeneratorFunc {
	var (
		mu sync.Mutex
		i  int
	)
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		key := keys[i%len(keys)]
		i++
		return key, nil
	}
}

func TestStore_miniredis(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()
	require.NoError(t, s.Ping(ctx))

	key, err := s.WriteMessage(ctx, testMessage)
	require.NoError(t, err)
	require.NotEmpty(t, key)
	assert.True(t, mr.Exists(redis.DefaultKeyPrefix+key))
	assert.Equal(t, time.Minute, mr.TTL(redis.DefaultKeyPrefix+key))

	got, err := s.ReadMessage(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, testMessage, got)

	got, err = s.ReadMessage(ctx, key)
	require.NoError(t, err, "reads must not consume")
	assert.Equal(t, testMessage, got)

	require.NoError(t, s.DeleteMessage(ctx, key))
	_, err = s.ReadMessage(ctx, key)
	assert.ErrorIs(t, err, op.ErrMessageNotFound)
	assert.NoError(t, s.DeleteMessage(ctx, key), "deleting a missing key")
}

func TestStore_miniredisExpiry(t *testing.T) {
	s, mr := newMiniredisStore(t)
	ctx := context.Background()

	key, err := s.WriteMessage(ctx, testMessage)
	require.NoError(t, err)
	mr.FastForward(2 * time.Minute)

	_, err = s.ReadMessage(ctx, key)
	assert.ErrorIs(t, err, op.ErrMessageNotFound)
}

func TestStore_miniredisTampered(t *testing.T) {
	s, mr := newMiniredisStore(t, redis.WithKeyPrefix("test:"))
	ctx := context.Background()

	key, err := s.WriteMessage(ctx, testMessage)
	require.NoError(t, err)
	require.NoError(t, mr.Set("test:"+key, "garbage"))

	_, err = s.ReadMessage(ctx, key)
	assert.ErrorIs(t, err, op.ErrMessageNotFound)
}

func TestStore_miniredisCollision(t *testing.T) {
	ctx := context.Background()

	t.Run("regenerate", func(t *testing.T) {
		s, _ := newMiniredisStore(t, redis.WithKeyGenerator(sequence("a", "a", "b")))
		first, err := s.WriteMessage(ctx, testMessage)
		require.NoError(t, err)
		assert.Equal(t, "a", first)

		second, err := s.WriteMessage(ctx, testMessage)
		require.NoError(t, err)
		assert.Equal(t, "b", second)
	})
	t.Run("exhausted", func(t *testing.T) {
		s, _ := newMiniredisStore(t, redis.WithKeyGenerator(sequence("fixed")))
		_, err := s.WriteMessage(ctx, testMessage)
		require.NoError(t, err)

		key, err := s.WriteMessage(ctx, testMessage)
		assert.ErrorIs(t, err, redis.ErrKeyConflict)
		assert.ErrorIs(t, err, op.ErrStoreUnavailable)
		assert.Empty(t, key)

		got, err := s.ReadMessage(ctx, "fixed")
		require.NoError(t, err)
		assert.Equal(t, testMessage, got, "first message must not be overwritten")
	})
}

func TestStore_miniredisConcurrentWrites(t *testing.T) {
	s, _ := newMiniredisStore(t)
	ctx := context.Background()

	const writes = 1000
	keys := make([]string, writes)
	var g errgroup.Group
	g.SetLimit(32)
	for i := range writes {
		g.Go(func() error {
			key, err := s.WriteMessage(ctx, testMessage)
			keys[i] = key
			return err
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[string]struct{}, writes)
	for _, key := range keys {
		seen[key] = struct{}{}
	}
	assert.Len(t, seen, writes)
}

func TestStore_encodeError(t *testing.T) {
	mr := miniredis.RunT(t)
	codec, err := store.NewCodec([]byte("0123456789abcdef0123456789abcdef"), nil, time.Minute, store.WithMaxLength(32))
	require.NoError(t, err)
	s := redis.New(rdb.NewClient(&rdb.Options{Addr: mr.Addr()}), codec, time.Minute)
	defer s.Close()

	key, err := s.WriteMessage(context.Background(), testMessage)
	assert.ErrorIs(t, err, op.ErrStoreUnavailable)
	assert.Empty(t, key)
	assert.Empty(t, mr.Keys())
}

func TestStore_unavailable(t *testing.T) {
	client := rdb.NewClient(&rdb.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	s := redis.New(client, newCodec(t), time.Minute)
	defer s.Close()
	ctx := context.Background()

	key, err := s.WriteMessage(ctx, testMessage)
	assert.ErrorIs(t, err, op.ErrStoreUnavailable)
	assert.Empty(t, key)

	_, err = s.ReadMessage(ctx, "key")
	assert.ErrorIs(t, err, op.ErrStoreUnavailable)

	err = s.DeleteMessage(ctx, "key")
	assert.ErrorIs(t, err, op.ErrStoreUnavailable)

	assert.ErrorIs(t, s.Ping(ctx), op.ErrStoreUnavailable)
}

// TestStore runs against the server in REDIS_ADDR, if set.
func TestStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	s := redis.NewFromAddr(addr, 0, newCodec(t), time.Second, redis.WithKeyPrefix("test_logout_message:"))
	defer s.Close()
	require.NoError(t, s.Ping(ctx))

	key, err := s.WriteMessage(ctx, testMessage)
	require.NoError(t, err)

	got, err := s.ReadMessage(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, testMessage, got)

	_, err = s.ReadMessage(ctx, key)
	require.NoError(t, err, "reads must not consume")

	require.NoError(t, s.DeleteMessage(ctx, key))
	_, err = s.ReadMessage(ctx, key)
	assert.ErrorIs(t, err, op.ErrMessageNotFound)

	t.Run("expiry", func(t *testing.T) {
		key, err := s.WriteMessage(ctx, testMessage)
		require.NoError(t, err)
		assert.Eventually(t, func() bool {
			_, err := s.ReadMessage(ctx, key)
			return err != nil
		}, 3*time.Second, 100*time.Millisecond)
	})
	t.Run("collision", func(t *testing.T) {
		s := redis.NewFromAddr(addr, 0, newCodec(t), time.Second,
			redis.WithKeyPrefix("test_logout_message:"),
			redis.WithKeyGenerator(op.KeyGeneratorFunc(func() (string, error) { return "fixed", nil })),
		)
		defer s.Close()
		defer s.DeleteMessage(ctx, "fixed")

		_, err := s.WriteMessage(ctx, testMessage)
		require.NoError(t, err)
		_, err = s.WriteMessage(ctx, testMessage)
		assert.ErrorIs(t, err, redis.ErrKeyConflict)
	})
}
