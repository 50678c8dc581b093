package database

import (
	"catering_manager/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis opens the client backing the report cache and the
// availability pub/sub channel.
func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
	})
}
