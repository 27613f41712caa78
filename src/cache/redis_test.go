package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	Client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		Client.Close()
		Client = nil
	})
}

type payload struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

func TestGetSetJSONRoundtrip(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	found, err := GetJSON(ctx, "missing", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "k", payload{Name: "tech", Count: 3}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "tech", Count: 3}, got)
}

func TestCacheAsideFetchesOnMissThenHits(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			calls++
			*dest = payload{Name: "fresh", Count: int64(calls)}
			return nil
		}
	}

	var first payload
	require.NoError(t, CacheAside(ctx, "stats", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fresh", first.Name)

	// second read is served from the cache; fetch does not run again
	var second payload
	require.NoError(t, CacheAside(ctx, "stats", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
}

func TestCacheAsidePropagatesFetchError(t *testing.T) {
	setupMiniredis(t)

	wantErr := errors.New("source down")
	var dest payload
	err := CacheAside(context.Background(), "broken", &dest, time.Minute, func() error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	// nothing was cached for the failed key
	found, err := GetJSON(context.Background(), "broken", &dest)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidateRemovesKeys(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "a", payload{Name: "a"}, time.Minute))
	require.NoError(t, SetJSON(ctx, "b", payload{Name: "b"}, time.Minute))

	Invalidate(ctx, "a", "b")

	var got payload
	found, err := GetJSON(ctx, "a", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestHelpersNoOpWithoutClient(t *testing.T) {
	Client = nil
	ctx := context.Background()

	found, err := GetJSON(ctx, "k", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "k", payload{}, time.Minute))
	Invalidate(ctx, "k")

	// cache-aside degrades to a plain fetch
	calls := 0
	var dest payload
	require.NoError(t, CacheAside(ctx, "k", &dest, time.Minute, func() error {
		calls++
		dest = payload{Name: "direct"}
		return nil
	}))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "direct", dest.Name)
}
