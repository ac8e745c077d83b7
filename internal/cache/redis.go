package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ibomair/appcore/config"
	"github.com/ibomair/appcore/internal/domain"
	"github.com/redis/go-redis/v9"
)

// SearchCache keeps recent search results so repeated lookups for the
// same route and day skip the simulated network latency.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSearchCache(cfg config.RedisConfig, ttl time.Duration) *SearchCache {
	return &SearchCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *SearchCache) GetResults(ctx context.Context, key string) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, resultsKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *SearchCache) SetResults(ctx context.Context, key string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, resultsKey(key), payload, c.ttl).Err()
}

func resultsKey(key string) string {
	return fmt.Sprintf("cache:search:%s", key)
}
