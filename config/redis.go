package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis wires the optional Redis client. The storefront has no
// required backend: without REDIS_URL the theme store falls back to memory
// and the admin rate limiter becomes a no-op.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, theme store and rate limiter run in-memory")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL, running without Redis: %v", err)
		return
	}

	client := redis.NewClient(opt)
	res, err := client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("❌ failed to connect to Redis, running without it: %v", err)
		return
	}
	log.Println("✅ Connected to Redis:", res)

	RedisClient = client
}
