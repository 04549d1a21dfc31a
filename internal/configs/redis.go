package config

import (
	"log"

	"github.com/redis/rueidis"
)

// NewRedisClient returns nil when no address is configured; callers
// treat a nil client as "rate limit locally".
func NewRedisClient(addr string) rueidis.Client {
	if addr == "" {
		return nil
	}

	redisClient, err := rueidis.NewClient(
		rueidis.ClientOption{
			InitAddress: []string{addr},
		},
	)
	if err != nil {
		log.Fatalf("failed to create redis client: %v", err)
	}

	return redisClient
}
