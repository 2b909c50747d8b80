package server

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a small redis-backed response cache. A nil *Cache is valid and
// misses everything.
type Cache struct {
	Addr     string
	Password string
	DB       int
	client   *redis.Client
	ctx      context.Context
}

func NewCache(addr, password string, db int) *Cache {
	ctx := context.Background()

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Cache{Addr: addr, Password: password, DB: db, client: rdb, ctx: ctx}
}

func (c *Cache) Get(key string, out any) error {
	if c == nil {
		return redis.Nil
	}
	data, err := c.client.Get(c.ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), out)
}

func (c *Cache) Set(key string, value any, expiration time.Duration) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(c.ctx, key, data, expiration).Err()
}

func (c *Cache) Close() {
	if c != nil {
		c.client.Close()
	}
}
