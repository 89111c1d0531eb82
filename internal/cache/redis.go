package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/NovaCutsHQ/barber-dashboard/internal/config"
)

func NewRedisClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s: %v (caching disabled paths will fall through to the database)", cfg.RedisAddr, err)
	}

	return client
}
