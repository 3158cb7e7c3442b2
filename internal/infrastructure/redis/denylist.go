package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/vales-api/internal/application/auth"
)

var _ auth.TokenRevoker = (*TokenDenylist)(nil)

// TokenDenylist guarda los jti revocados por logout. La clave expira junto con el token.
// Formato de clave: vales:revoked:<jti>
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist envuelve el cliente dado.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke marca el jti como revocado durante ttl.
func (d *TokenDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := d.client.Set(ctx, key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revocar token: %w", err)
	}
	return nil
}

// IsRevoked indica si el jti figura en la lista.
func (d *TokenDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.client.Exists(ctx, key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("consultar revocación: %w", err)
	}
	return n > 0, nil
}

func key(jti string) string {
	return "vales:revoked:" + jti
}
