package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Dileepadari/placement-navigator/pkg/model"
)

const companiesKey = "companies:all"

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// Cache holds the company-list snapshot. Filtering and sorting always run
// in-process on the snapshot, so one key is enough; every company write
// invalidates it.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// GetCompanies returns the cached snapshot and whether it was present.
// A broken or missing entry is just a miss.
func (c *Cache) GetCompanies(ctx context.Context) ([]model.Company, bool) {
	raw, err := c.rdb.Get(ctx, companiesKey).Bytes()
	if err != nil {
		return nil, false
	}
	var out []model.Company
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *Cache) SetCompanies(ctx context.Context, companies []model.Company) error {
	raw, err := json.Marshal(companies)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, companiesKey, raw, c.ttl).Err()
}

func (c *Cache) InvalidateCompanies(ctx context.Context) error {
	err := c.rdb.Del(ctx, companiesKey).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
