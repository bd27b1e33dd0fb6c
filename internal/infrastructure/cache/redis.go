package cache

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect opens the Redis client used for request read caching.
//
// Returns nil when REDIS_ADDR is unset or the server is unreachable; callers
// degrade to uncached reads (the cache is an optimization, never a
// dependency).
func Connect() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[cache] redis unreachable addr=%s err=%v; continuing without cache", addr, err)
		_ = client.Close()
		return nil
	}
	log.Printf("[cache] redis connected addr=%s", addr)
	return client
}
