// Package auth implementa login, sesión actual y logout de los locales.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/vales-api/internal/application/directory"
	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/internal/domain"
	"github.com/jhoicas/vales-api/internal/metrics"
	"github.com/jhoicas/vales-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	stores  StoreDirectory
	revoker TokenRevoker
	jwtCfg  JWTConfig
	log     zerolog.Logger
}

// NewAuthUseCase construye el caso de uso de auth. revoker nil equivale a NoopRevoker.
func NewAuthUseCase(stores StoreDirectory, revoker TokenRevoker, jwtCfg JWTConfig, log zerolog.Logger) *AuthUseCase {
	if revoker == nil {
		revoker = NoopRevoker{}
	}
	return &AuthUseCase{
		stores:  stores,
		revoker: revoker,
		jwtCfg:  jwtCfg,
		log:     log.With().Str("component", "auth").Logger(),
	}
}

// Login verifica usuario/password, genera JWT y retorna token + local.
// Usuario inexistente y password incorrecta devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	login := strings.TrimSpace(in.Login)
	if login == "" || in.Password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.NewValidationError("usuario", "usuario y contraseña son requeridos")
	}

	store, err := uc.stores.Authenticate(ctx, login, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
			uc.log.Warn().Str("usuario", login).Msg("login rechazado")
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	token, _, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Identity{
		StoreID: store.ID,
		Login:   store.Login,
		Name:    store.Name,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		uc.log.Error().Err(err).Int64("store_id", store.ID).Msg("firmar token")
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	uc.log.Info().Int64("store_id", store.ID).Str("usuario", store.Login).Msg("login")
	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User:    directory.ToStoreResponse(store),
	}, nil
}

// CurrentUser devuelve el local del token. Si fue eliminado, domain.ErrUnauthorized.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, storeID int64) (*dto.StoreResponse, error) {
	store, err := uc.stores.FindByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrUnauthorized
	}
	out := directory.ToStoreResponse(store)
	return &out, nil
}

// Logout revoca el token hasta su expiración. Un token ya vencido no necesita registro.
func (uc *AuthUseCase) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if jti == "" {
		return domain.ErrUnauthorized
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := uc.revoker.Revoke(ctx, jti, ttl); err != nil {
		uc.log.Error().Err(err).Str("jti", jti).Msg("revocar token")
		return err
	}
	return nil
}

// IsRevoked indica si el jti fue revocado por un logout.
func (uc *AuthUseCase) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	return uc.revoker.IsRevoked(ctx, jti)
}
