package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/TomoakiAbebe/rac-tourist/internal/domain"
	"github.com/TomoakiAbebe/rac-tourist/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRejectsBadURL(t *testing.T) {
	t.Parallel()

	_, _, err := Open(context.Background(), "", time.Hour)
	assert.ErrorContains(t, err, "redis url is required")

	_, _, err = Open(context.Background(), "http://localhost:6379", time.Hour)
	assert.ErrorContains(t, err, "parse redis url")
}

func TestNewStoreDefaultsNegativeTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(nil, -time.Second)
	assert.Equal(t, DefaultTTL, store.ttl)
}

func TestStoreRoundTripAgainstServer(t *testing.T) {
	redisURL := os.Getenv("RAC_TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("RAC_TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	store, client, err := Open(ctx, redisURL, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	key := "rac-tourist-test/" + t.Name()
	t.Cleanup(func() { _ = store.Delete(context.Background(), key) })

	_, err = store.Get(ctx, key)
	require.ErrorIs(t, err, domain.ErrStateKeyNotFound)

	require.NoError(t, store.Put(ctx, key, `{"morning":"v1"}`))
	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"morning":"v1"}`, got)

	ttl, err := client.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Positive(t, ttl)

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, domain.ErrStateKeyNotFound)
}

func TestStorePutAllAgainstServer(t *testing.T) {
	redisURL := os.Getenv("RAC_TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("RAC_TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	store, client, err := Open(ctx, redisURL, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	prefix := "rac-tourist-test/" + t.Name() + "/"
	entries := []ports.StateEntry{
		{Key: prefix + "selectedPlaces", Value: "{}"},
		{Key: prefix + "selectedCustomerId", Value: "c1"},
	}
	t.Cleanup(func() {
		for _, entry := range entries {
			_ = store.Delete(context.Background(), entry.Key)
		}
	})

	require.NoError(t, store.PutAll(ctx, entries))
	for _, entry := range entries {
		got, err := store.Get(ctx, entry.Key)
		require.NoError(t, err)
		assert.Equal(t, entry.Value, got)
	}
}
