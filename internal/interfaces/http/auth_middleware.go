package http

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/pkg/jwt"
)

// Locals keys con la identidad del local autenticado.
const (
	LocalStoreID   = "store_id"
	LocalLogin     = "usuario"
	LocalStoreName = "nombre"
	LocalTokenID   = "jti"
	LocalTokenExp  = "token_exp"
)

// revocationChecker es el contrato mínimo para rechazar tokens cerrados con logout.
// Lo implementa *auth.AuthUseCase.
type revocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware valida el Bearer Token JWT y carga la identidad del local en c.Locals.
// checker puede ser nil; si falla la consulta de revocación responde 503.
func AuthMiddleware(jwtSecret string, checker revocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("MISSING_TOKEN", "Authorization header requerido"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("INVALID_TOKEN", "formato: Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("MISSING_TOKEN", "token vacío"))
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("INVALID_TOKEN", "token inválido o expirado"))
		}
		if checker != nil {
			revoked, err := checker.IsRevoked(c.UserContext(), claims.ID)
			if err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.NewError("REVOCATION_CHECK_FAILED", "no se pudo verificar la sesión, intente más tarde"))
			}
			if revoked {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("REVOKED_TOKEN", "la sesión fue cerrada"))
			}
		}

		c.Locals(LocalStoreID, claims.StoreID)
		c.Locals(LocalLogin, claims.Login)
		c.Locals(LocalStoreName, claims.Name)
		c.Locals(LocalTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Locals(LocalTokenExp, claims.ExpiresAt.Time)
		}
		return c.Next()
	}
}

// GetStoreID devuelve el ID del local autenticado (0 si no pasó por AuthMiddleware).
func GetStoreID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalStoreID).(int64)
	return id
}

// GetLogin devuelve el usuario del local autenticado.
func GetLogin(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalLogin).(string)
	return s
}

// GetStoreName devuelve el nombre del local autenticado.
func GetStoreName(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalStoreName).(string)
	return s
}

// GetTokenID devuelve el jti del token de la petición.
func GetTokenID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalTokenID).(string)
	return s
}

// GetTokenExpiry devuelve la expiración del token de la petición.
func GetTokenExpiry(c *fiber.Ctx) time.Time {
	t, _ := c.Locals(LocalTokenExp).(time.Time)
	return t
}
