package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"wealth-objective/domain"
)

// RedisHistory stores projection records as JSON in a capped Redis list.
type RedisHistory struct {
	client  redis.UniversalClient
	key     string
	maxSize int
}

// NewRedisClient builds the client used by RedisHistory.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisHistory(client redis.UniversalClient, key string, maxSize int) *RedisHistory {
	return &RedisHistory{
		client:  client,
		key:     key,
		maxSize: maxSize,
	}
}

// Ping checks that the server is reachable.
func (r *RedisHistory) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisHistory) Save(ctx context.Context, record domain.ProjectionRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode projection record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, r.key, payload)
	if r.maxSize > 0 {
		pipe.LTrim(ctx, r.key, 0, int64(r.maxSize-1))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save projection record: %w", err)
	}
	return nil
}

func (r *RedisHistory) Recent(ctx context.Context, limit int) ([]domain.ProjectionRecord, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	raw, err := r.client.LRange(ctx, r.key, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("read projection history: %w", err)
	}

	out := make([]domain.ProjectionRecord, 0, len(raw))
	for _, item := range raw {
		var rec domain.ProjectionRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, fmt.Errorf("decode projection record: %w", err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Close releases the underlying connection pool.
func (r *RedisHistory) Close() error {
	return r.client.Close()
}
