package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenVault_StoreAndClear(t *testing.T) {
	client := setupTestRedis(t)

	vault := NewTokenVaultWithPrefix(client, "planboard-test:")
	ctx := context.Background()

	require.NoError(t, vault.Store(ctx, "tok-123"))

	held, err := client.Get(ctx, "planboard-test:"+tokenKey).Result()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", held)

	ttl, err := client.TTL(ctx, "planboard-test:"+tokenKey).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl.Seconds(), 0.0, "stored token carries a TTL")

	require.NoError(t, vault.Clear(ctx))
	exists, err := client.Exists(ctx, "planboard-test:"+tokenKey).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestTokenVault_ClearIsIdempotent(t *testing.T) {
	client := setupTestRedis(t)

	vault := NewTokenVaultWithPrefix(client, "planboard-test:")
	ctx := context.Background()

	require.NoError(t, vault.Clear(ctx))
	require.NoError(t, vault.Clear(ctx))
}

func TestTokenVault_RejectsEmptyToken(t *testing.T) {
	client := setupTestRedis(t)

	vault := NewTokenVaultWithPrefix(client, "planboard-test:")
	assert.Error(t, vault.Store(context.Background(), ""))
}
