package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"payment-settlement/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// SettingsCache implements ports.SettingsCache using Redis.
// Keys are gateway_settings:<gateway>.
type SettingsCache struct {
	client *goredis.Client
	prefix string
}

// NewSettingsCache creates a new Redis-backed gateway settings cache.
func NewSettingsCache(client *goredis.Client) *SettingsCache {
	return &SettingsCache{
		client: client,
		prefix: "gateway_settings:",
	}
}

// Key returns the cache key of a gateway.
func (c *SettingsCache) Key(gateway domain.GatewayTag) string {
	return c.prefix + string(gateway)
}

// Get returns the cached settings. found is false on a miss.
func (c *SettingsCache) Get(ctx context.Context, gateway domain.GatewayTag) (*domain.GatewaySettings, bool, error) {
	val, err := c.client.Get(ctx, c.Key(gateway)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis settings get: %w", err)
	}

	var settings domain.GatewaySettings
	if err := json.Unmarshal(val, &settings); err != nil {
		// A corrupt entry is treated as a miss and overwritten on the next Set.
		return nil, false, nil
	}
	return &settings, true, nil
}

// Set stores resolved settings with a TTL.
func (c *SettingsCache) Set(ctx context.Context, gateway domain.GatewayTag, settings *domain.GatewaySettings, ttl time.Duration) error {
	val, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal gateway settings: %w", err)
	}
	if err := c.client.Set(ctx, c.Key(gateway), val, ttl).Err(); err != nil {
		return fmt.Errorf("redis settings set: %w", err)
	}
	return nil
}

// Delete drops the cached settings of a gateway.
func (c *SettingsCache) Delete(ctx context.Context, gateway domain.GatewayTag) error {
	if err := c.client.Del(ctx, c.Key(gateway)).Err(); err != nil {
		return fmt.Errorf("redis settings delete: %w", err)
	}
	return nil
}
