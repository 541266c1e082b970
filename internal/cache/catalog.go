// Package cache is a small read-through cache for the service catalog,
// the one list every repair form loads. A nil *Catalog (no REDIS_ADDR)
// disables caching entirely.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ivcho02/mechanic-api/internal/models"
)

const (
	servicesKey = "catalog:services"
	servicesTTL = 5 * time.Minute
)

type Catalog struct {
	rdb *redis.Client
}

func NewCatalog(addr string) *Catalog {
	if addr == "" {
		return nil
	}
	return &Catalog{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *Catalog) GetServices(ctx context.Context) ([]models.Service, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, servicesKey).Bytes()
	if err != nil {
		return nil, false
	}
	var services []models.Service
	if err := json.Unmarshal(raw, &services); err != nil {
		return nil, false
	}
	return services, true
}

func (c *Catalog) SetServices(ctx context.Context, services []models.Service) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(services)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, servicesKey, raw, servicesTTL)
}

// Invalidate drops the cached catalog; called on every catalog write so
// staff never see a stale list after adding or deleting a service.
func (c *Catalog) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, servicesKey)
}
