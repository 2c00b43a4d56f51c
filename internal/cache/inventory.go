package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	QuestionKeyPrefix = "question:%d"
	UserKeyPrefix     = "user:%d"
	TrendingKeyPrefix = "trending:%s:%d:%d"
	StatsKey          = "platform:stats"
)

const (
	QuestionTTL = 10 * time.Minute
	UserTTL     = 5 * time.Minute
	// Trending listings tolerate short staleness; the counters behind them
	// move constantly so the TTL stays small.
	TrendingTTL = 1 * time.Minute
	StatsTTL    = 5 * time.Minute
)

func QuestionKey(questionID uint) string {
	return fmt.Sprintf(QuestionKeyPrefix, questionID)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// TrendingKey identifies a ranked listing by variant ("basic", "enhanced",
// "most_viewed"), lookback days and limit.
func TrendingKey(variant string, days, limit int) string {
	return fmt.Sprintf(TrendingKeyPrefix, variant, days, limit)
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first, on miss it calls fetch (which must populate dest),
// then stores the result with ttl. Cache failures fall through to fetch.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err == nil && found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	// Store into cache (best-effort)
	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateQuestion(ctx context.Context, questionID uint) {
	Invalidate(ctx, QuestionKey(questionID))
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateTrending drops all cached ranked listings. Called when a write
// changes any ranking signal (star, accepted view, new answer).
func InvalidateTrending(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "trending:*", 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
