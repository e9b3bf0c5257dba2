package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taskhive/todo-api/internal/core/domain"
)

const cacheTTL = time.Minute

// TaskCache is a read-through cache of per-user task lists, invalidated on
// every task mutation. Key format: tasks:<user_id>. Mongo stays
// authoritative: callers treat any cache error as a miss.
type TaskCache struct {
	client *redis.Client
}

// NewTaskCache creates a TaskCache wrapping the given Redis client.
func NewTaskCache(client *redis.Client) *TaskCache {
	return &TaskCache{client: client}
}

// Get returns the cached list and whether it was present.
func (c *TaskCache) Get(ctx context.Context, userID string) ([]*domain.Task, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("task cache get: %w", err)
	}

	var tasks []*domain.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, false, fmt.Errorf("task cache decode: %w", err)
	}
	return tasks, true, nil
}

// Set stores the user's task list, expiring after cacheTTL.
func (c *TaskCache) Set(ctx context.Context, userID string, tasks []*domain.Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("task cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(userID), raw, cacheTTL).Err()
}

// Invalidate drops the user's cached list.
func (c *TaskCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *TaskCache) key(userID string) string {
	return "tasks:" + userID
}
