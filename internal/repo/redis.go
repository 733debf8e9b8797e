package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
	"github.com/redis/go-redis/v9"
)

// SnapshotCache keeps recently read snapshots in Redis so snapshot reads
// do not hit Mongo on every request. The refresh cycle repopulates the
// entry for the month it just wrote.
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{client: client, ttl: ttl}
}

func snapshotKey(key model.MonthKey) string {
	return fmt.Sprintf("leaderboard:%s", key.DocumentID())
}

// Get returns the cached snapshot for a month key, or nil on a miss.
// Cache errors are reported so the caller can fall through to Mongo.
func (c *SnapshotCache) Get(ctx context.Context, key model.MonthKey) (*model.MonthlyLeaderboard, error) {
	data, err := c.client.Get(ctx, snapshotKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached snapshot %s: %w", key.DocumentID(), err)
	}

	var lb model.MonthlyLeaderboard
	if err := json.Unmarshal(data, &lb); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached snapshot %s: %w", key.DocumentID(), err)
	}
	return &lb, nil
}

// Set stores a snapshot under its month key with the cache TTL.
func (c *SnapshotCache) Set(ctx context.Context, lb *model.MonthlyLeaderboard) error {
	data, err := json.Marshal(lb)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %s: %w", lb.Key().DocumentID(), err)
	}
	return c.client.Set(ctx, snapshotKey(lb.Key()), data, c.ttl).Err()
}

// Invalidate drops the cached snapshot for a month key.
func (c *SnapshotCache) Invalidate(ctx context.Context, key model.MonthKey) error {
	return c.client.Del(ctx, snapshotKey(key)).Err()
}
