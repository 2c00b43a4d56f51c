package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	SetClient(rdb)
	t.Cleanup(func() {
		SetClient(nil)
		_ = rdb.Close()
	})
	return mr
}

type cachedItem struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func TestGetSetJSONRoundTrip(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	var got cachedItem
	found, err := GetJSON(ctx, QuestionKey(1), &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, QuestionKey(1), cachedItem{ID: 1, Title: "hello"}, QuestionTTL))

	found, err = GetJSON(ctx, QuestionKey(1), &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hello", got.Title)
}

func TestAsideFetchesOnMissOnly(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *cachedItem) func() error {
		return func() error {
			calls++
			*dest = cachedItem{ID: 7, Title: "fetched"}
			return nil
		}
	}

	var first cachedItem
	require.NoError(t, Aside(ctx, TrendingKey("basic", 7, 10), &first, TrendingTTL, fetch(&first)))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "fetched", first.Title)

	var second cachedItem
	require.NoError(t, Aside(ctx, TrendingKey("basic", 7, 10), &second, TrendingTTL, fetch(&second)))
	assert.Equal(t, 1, calls, "second call should hit the cache")
	assert.Equal(t, "fetched", second.Title)
}

func TestAsideExpiry(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	var item cachedItem
	fetch := func() error {
		calls++
		item = cachedItem{ID: 2, Title: "refetched"}
		return nil
	}

	require.NoError(t, Aside(ctx, StatsKey, &item, time.Minute, fetch))
	mr.FastForward(2 * time.Minute)
	require.NoError(t, Aside(ctx, StatsKey, &item, time.Minute, fetch))
	assert.Equal(t, 2, calls)
}

func TestInvalidateTrendingDropsOnlyRankedKeys(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, TrendingKey("basic", 7, 10), cachedItem{}, TrendingTTL))
	require.NoError(t, SetJSON(ctx, TrendingKey("enhanced", 7, 10), cachedItem{}, TrendingTTL))
	require.NoError(t, SetJSON(ctx, TrendingKey("most_viewed", 0, 5), cachedItem{}, TrendingTTL))
	require.NoError(t, SetJSON(ctx, QuestionKey(9), cachedItem{ID: 9}, QuestionTTL))

	InvalidateTrending(ctx)

	assert.False(t, mr.Exists(TrendingKey("basic", 7, 10)))
	assert.False(t, mr.Exists(TrendingKey("enhanced", 7, 10)))
	assert.False(t, mr.Exists(TrendingKey("most_viewed", 0, 5)))
	assert.True(t, mr.Exists(QuestionKey(9)))
}

func TestNilClientIsNoop(t *testing.T) {
	SetClient(nil)
	ctx := context.Background()

	var got cachedItem
	found, err := GetJSON(ctx, "question:1", &got)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "question:1", cachedItem{}, QuestionTTL))

	calls := 0
	require.NoError(t, Aside(ctx, "question:1", &got, QuestionTTL, func() error {
		calls++
		got = cachedItem{ID: 1}
		return nil
	}))
	assert.Equal(t, 1, calls)

	// These must not panic without a client.
	Invalidate(ctx, "question:1")
	InvalidateQuestion(ctx, 1)
	InvalidateUser(ctx, 1)
	InvalidateTrending(ctx)
}
