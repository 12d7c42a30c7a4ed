package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/planboard/planboard/internal/ports"
)

const tokenKey = "session_token"

// DefaultTokenTTL bounds how long an orphaned token can sit in the vault if
// the process dies without clearing it.
const DefaultTokenTTL = 24 * time.Hour

// TokenVault stores the bearer token between session mutations. It is
// write-and-erase only; nothing reads the token back out, so a restart can
// never resume the session it belonged to.
type TokenVault struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ ports.TokenVault = (*TokenVault)(nil)

// NewTokenVault creates a TokenVault with the default prefix and TTL.
func NewTokenVault(client redis.UniversalClient) *TokenVault {
	return &TokenVault{client: client, prefix: "planboard:", ttl: DefaultTokenTTL}
}

// NewTokenVaultWithPrefix creates a TokenVault with a custom key prefix.
func NewTokenVaultWithPrefix(client redis.UniversalClient, prefix string) *TokenVault {
	return &TokenVault{client: client, prefix: prefix, ttl: DefaultTokenTTL}
}

func (v *TokenVault) Store(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if err := v.client.Set(ctx, v.prefix+tokenKey, token, v.ttl).Err(); err != nil {
		return fmt.Errorf("redis set token: %w", err)
	}
	return nil
}

func (v *TokenVault) Clear(ctx context.Context) error {
	if err := v.client.Del(ctx, v.prefix+tokenKey).Err(); err != nil {
		return fmt.Errorf("redis del token: %w", err)
	}
	return nil
}
