package drafts

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Step  int      `json:"step"`
	Items []string `json:"items"`
}

// exerciseStore runs the behaviour every Store must share.
func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()
	key := Key("wizard", uuid.NewString())

	var got sample
	found, err := store.Load(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, found)

	want := sample{Step: 3, Items: []string{"Go", "SQL"}}
	require.NoError(t, store.Save(ctx, key, want))

	found, err = store.Load(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	require.NoError(t, store.Delete(ctx, key))
	found, err = store.Load(ctx, key, &sample{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "profile:abc", Key("profile", "abc"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Hour))
}

func TestMemoryStore_NoAliasing(t *testing.T) {
	store := NewMemoryStore(0)
	ctx := context.Background()

	v := sample{Items: []string{"a"}}
	require.NoError(t, store.Save(ctx, "k", v))
	v.Items[0] = "changed"

	var got sample
	_, err := store.Load(ctx, "k", &got)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got.Items)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(context.Background(), "k", sample{Step: 2}))

	now = now.Add(59 * time.Second)
	found, err := store.Load(context.Background(), "k", &sample{})
	require.NoError(t, err)
	assert.True(t, found)

	now = now.Add(time.Second)
	found, err = store.Load(context.Background(), "k", &sample{})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, store.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := Key("wizard", uuid.NewString())
			assert.NoError(t, store.Save(ctx, key, sample{Step: i}))
			_, err := store.Load(ctx, key, &sample{})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}

func TestMemoryStore_DecodeError(t *testing.T) {
	store := NewMemoryStore(0)
	require.NoError(t, store.Save(context.Background(), "k", "a string"))

	_, err := store.Load(context.Background(), "k", &sample{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode draft")
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set, skipping Redis integration test")
	}

	store, err := NewRedisStore(context.Background(), RedisOptions{Addr: addr, TTL: time.Minute})
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	exerciseStore(t, store)
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisStore(ctx, RedisOptions{Addr: "127.0.0.1:1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}
