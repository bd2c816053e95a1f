package services

import (
	"context"
	"log"
	"time"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
	"github.com/DamianMlM/yummy-bakery-web/internal/redis"
)

// OrderSource is the read side of the order store.
type OrderSource interface {
	LoadOrders(ctx context.Context) ([]models.Order, error)
	WatchOrders(ctx context.Context) (<-chan []models.Order, error)
}

// Feed keeps the latest full order collection in the cache. The store
// re-delivers the whole collection on every change, so each delivery simply
// replaces the snapshot; there is no delta handling.
type Feed struct {
	source OrderSource
	cache  *redis.Client
	ttl    time.Duration
}

func NewFeed(source OrderSource, cache *redis.Client, ttl time.Duration) *Feed {
	return &Feed{source: source, cache: cache, ttl: ttl}
}

// Run blocks consuming the watch channel until ctx is cancelled. Intended
// to be started as a goroutine from main.
func (f *Feed) Run(ctx context.Context) {
	snapshots, err := f.source.WatchOrders(ctx)
	if err != nil {
		log.Printf("order feed: failed to start watch: %v", err)
		return
	}
	for orders := range snapshots {
		if f.cache == nil {
			continue
		}
		if err := f.cache.SetOrdersSnapshot(orders, f.ttl); err != nil {
			log.Printf("order feed: failed to cache snapshot: %v", err)
		}
	}
	log.Println("order feed stopped")
}

// Orders returns the cached snapshot when fresh, falling back to a direct
// store load. A cache miss is normal right after startup; a nil cache means
// every read goes to the store.
func (f *Feed) Orders(ctx context.Context) ([]models.Order, error) {
	if f.cache != nil {
		if orders, err := f.cache.GetOrdersSnapshot(); err == nil {
			return orders, nil
		}
	}
	return f.source.LoadOrders(ctx)
}
