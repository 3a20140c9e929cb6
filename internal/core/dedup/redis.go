package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "recipe-finder:dedup:"

// RedisStore 以 Redis 共用指紋，多個實例之間也能去重
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 連線 Redis 並確認可用
func NewRedisStore(ctx context.Context, addr string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	// 測試連接
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Seen 實作 Store，SETNX 成功代表第一次出現，TTL 即去重窗口
func (s *RedisStore) Seen(ctx context.Context, fingerprint string, window time.Duration) (bool, error) {
	created, err := s.client.SetNX(ctx, keyPrefix+fingerprint, time.Now().UnixNano(), window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record fingerprint: %w", err)
	}
	return !created, nil
}

// Close 關閉連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
