package auth

import (
	"context"
	"time"

	"github.com/jhoicas/vales-api/internal/domain/entity"
)

// StoreDirectory lo que auth necesita del directorio de locales.
type StoreDirectory interface {
	Authenticate(ctx context.Context, login, password string) (*entity.Store, error)
	FindByID(ctx context.Context, id int64) (*entity.Store, error)
}

// TokenRevoker guarda los jti revocados hasta que el token hubiera expirado.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// NoopRevoker se usa cuando no hay Redis configurado: el logout sólo ocurre en el cliente.
type NoopRevoker struct{}

func (NoopRevoker) Revoke(context.Context, string, time.Duration) error { return nil }
func (NoopRevoker) IsRevoked(context.Context, string) (bool, error)     { return false, nil }
