package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/DamianMlM/yummy-bakery-web/internal/models"
)

type Client struct {
	rdb *redis.Client
}

// SessionData is an active admin session, keyed by the token ID embedded in
// the JWT. Logging out deletes the record, which invalidates the token
// before its expiry.
type SessionData struct {
	TokenID   string    `json:"token_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Session management
func (c *Client) SetSession(sessionID string, data *SessionData, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session data: %w", err)
	}

	return c.rdb.Set(ctx, "session:"+sessionID, jsonData, ttl).Err()
}

func (c *Client) GetSession(sessionID string) (*SessionData, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session SessionData
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}

	return &session, nil
}

func (c *Client) DeleteSession(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "session:"+sessionID).Err()
}

// Orders snapshot cache, fed by the store watch loop. The read path treats
// a miss as "load directly from the store", so TTL expiry is harmless.
func (c *Client) SetOrdersSnapshot(orders []models.Order, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to marshal orders snapshot: %w", err)
	}

	return c.rdb.Set(ctx, "orders:snapshot", jsonData, ttl).Err()
}

func (c *Client) GetOrdersSnapshot() ([]models.Order, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "orders:snapshot").Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("orders snapshot not cached")
		}
		return nil, fmt.Errorf("failed to get orders snapshot: %w", err)
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(val), &orders); err != nil {
		return nil, fmt.Errorf("failed to unmarshal orders snapshot: %w", err)
	}

	return orders, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
