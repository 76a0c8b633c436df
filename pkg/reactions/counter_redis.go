package reactions

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const (
	TargetPost    = "post"
	TargetComment = "comment"
)

type Cmdable interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Decr(ctx context.Context, key string) *redis.IntCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

// CounterRedis keeps per-target like counters in Redis. The feed only reads
// them; writes come from the reaction endpoints.
type CounterRedis struct {
	rdb Cmdable
}

func NewCounterRedis(rdb Cmdable) *CounterRedis {
	return &CounterRedis{rdb: rdb}
}

func likeKey(targetType, targetID string) string {
	return fmt.Sprintf("likes:%s:%s", targetType, targetID)
}

func (c *CounterRedis) AddLike(ctx context.Context, targetType, targetID string) (int64, error) {
	return c.rdb.Incr(ctx, likeKey(targetType, targetID)).Result()
}

func (c *CounterRedis) RemoveLike(ctx context.Context, targetType, targetID string) (int64, error) {
	return c.rdb.Decr(ctx, likeKey(targetType, targetID)).Result()
}

func (c *CounterRedis) CountLikes(ctx context.Context, targetType, targetID string) (int64, error) {
	val, err := c.rdb.Get(ctx, likeKey(targetType, targetID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return val, nil
}

// CountLikesBatch resolves the counters for a whole feed page in one MGET.
// Targets that were never liked are absent from Redis and come back as 0.
func (c *CounterRedis) CountLikesBatch(ctx context.Context, targetType string, targetIDs []string) (map[string]int64, error) {
	if len(targetIDs) == 0 {
		return map[string]int64{}, nil
	}

	keys := make([]string, 0, len(targetIDs))
	for _, id := range targetIDs {
		keys = append(keys, likeKey(targetType, id))
	}

	values, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(targetIDs))
	for i, id := range targetIDs {
		counts[id] = parseCount(values[i])
	}

	return counts, nil
}

func parseCount(v interface{}) int64 {
	s, ok := v.(string)
	if !ok {
		return 0
	}

	var n int64
	_, err := fmt.Sscanf(s, "%d", &n)
	if err != nil {
		return 0
	}

	return n
}
