package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MikeSquared-Agency/Readiness/internal/scoring"
)

const keyPrefix = "readiness:report:"

// ReportCache stores scored reports keyed by scorer fingerprint. Reports are
// pure functions of the fingerprint, so entries never need invalidating; the
// TTL only bounds memory.
type ReportCache interface {
	Get(ctx context.Context, fingerprint string) (*scoring.Report, error)
	Set(ctx context.Context, fingerprint string, report *scoring.Report) error
	Close() error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient builds a go-redis client and verifies the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}

func NewReportCache(client *redis.Client, ttl time.Duration) ReportCache {
	return &redisReportCache{client: client, ttl: ttl}
}

// Get returns (nil, nil) on a miss.
func (c *redisReportCache) Get(ctx context.Context, fingerprint string) (*scoring.Report, error) {
	data, err := c.client.Get(ctx, keyPrefix+fingerprint).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var report scoring.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decode cached report: %w", err)
	}
	return &report, nil
}

func (c *redisReportCache) Set(ctx context.Context, fingerprint string, report *scoring.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+fingerprint, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *redisReportCache) Close() error {
	return c.client.Close()
}
