package redis

import (
	"context"
	"testing"
	"time"

	"payment-settlement/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSettingsCache(t *testing.T) (*SettingsCache, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSettingsCache(client), s
}

func TestSettingsCache_SetAndGet(t *testing.T) {
	cache, s := newTestSettingsCache(t)
	ctx := context.Background()

	settings := &domain.GatewaySettings{
		Gateway: domain.GatewayCard,
		Card:    &domain.CardSettings{SecretKey: "sk_test", WebhookSecret: "whsec", Enabled: true},
	}

	got, found, err := cache.Get(ctx, domain.GatewayCard)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)

	require.NoError(t, cache.Set(ctx, domain.GatewayCard, settings, 5*time.Minute))
	assert.True(t, s.Exists("gateway_settings:card"))

	got, found, err = cache.Get(ctx, domain.GatewayCard)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, settings, got)
}

func TestSettingsCache_TTLExpiry(t *testing.T) {
	cache, s := newTestSettingsCache(t)
	ctx := context.Background()

	settings := &domain.GatewaySettings{
		Gateway:  domain.GatewayRegional,
		Regional: &domain.RegionalSettings{StoreID: "store", StorePassword: "pw", Sandbox: true},
	}
	require.NoError(t, cache.Set(ctx, domain.GatewayRegional, settings, time.Second))

	s.FastForward(2 * time.Second)

	_, found, err := cache.Get(ctx, domain.GatewayRegional)
	assert.NoError(t, err)
	assert.False(t, found, "expired entry should be a miss")
}

func TestSettingsCache_Delete(t *testing.T) {
	cache, s := newTestSettingsCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, domain.GatewayCard, &domain.GatewaySettings{Gateway: domain.GatewayCard}, time.Minute))
	require.NoError(t, cache.Delete(ctx, domain.GatewayCard))
	assert.False(t, s.Exists("gateway_settings:card"))

	// deleting a missing key is not an error
	assert.NoError(t, cache.Delete(ctx, domain.GatewayRegional))
}

func TestSettingsCache_CorruptEntryIsMiss(t *testing.T) {
	cache, s := newTestSettingsCache(t)
	require.NoError(t, s.Set("gateway_settings:card", "{not json"))

	_, found, err := cache.Get(context.Background(), domain.GatewayCard)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestSettingsCache_Unavailable(t *testing.T) {
	cache, s := newTestSettingsCache(t)
	s.Close()

	_, _, err := cache.Get(context.Background(), domain.GatewayCard)
	assert.ErrorContains(t, err, "redis settings get")
}
