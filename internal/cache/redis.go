package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"matching-service/internal/config"
	"matching-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// Client caches assembled recommendation rails. A nil *Client is valid and
// disables caching, so callers never need to branch on availability.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(cfg config.RedisConfig, ttl time.Duration) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &Client{rdb: rdb, ttl: ttl}, nil
}

// GetCandidates returns the cached pool for key, or nil on miss or error.
// Cache failures are never fatal; the caller falls through to the database.
func (c *Client) GetCandidates(ctx context.Context, key string) []models.Candidate {
	if c == nil {
		return nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis get %s: %v", key, err)
		}
		return nil
	}
	var pool []models.Candidate
	if err := json.Unmarshal(data, &pool); err != nil {
		log.Printf("redis decode %s: %v", key, err)
		return nil
	}
	return pool
}

func (c *Client) SetCandidates(ctx context.Context, key string, pool []models.Candidate) {
	if c == nil {
		return
	}
	data, err := json.Marshal(pool)
	if err != nil {
		log.Printf("redis encode %s: %v", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Printf("redis set %s: %v", key, err)
	}
}

func (c *Client) Close() {
	if c == nil {
		return
	}
	if err := c.rdb.Close(); err != nil {
		log.Printf("error closing redis client: %v", err)
	}
}
