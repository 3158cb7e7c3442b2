package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/internal/domain"
)

// genericError es lo único que ve el cliente de un error no previsto; el detalle va al log.
const genericError = "Error en el servidor"

// respondError traduce errores de dominio a HTTP:
//   - ErrNotFound      → 404
//   - ErrConflict      → 409
//   - ErrInvalidInput  → 400 (con el mensaje del campo)
//   - ErrUnauthorized  → 401
//   - ErrForbidden     → 403
//   - cualquier otro   → 500 genérico
func respondError(c *fiber.Ctx, log zerolog.Logger, err error, notFoundMsg string) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", ve.Error()))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("VALIDATION", err.Error()))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.NewError("NOT_FOUND", notFoundMsg))
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.NewError("CONFLICT", err.Error()))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.NewError("UNAUTHORIZED", "credenciales inválidas"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.NewError("FORBIDDEN", "acceso denegado"))
	}
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", requestID(c)).
		Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.NewError("INTERNAL", genericError))
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
}

func requestID(c *fiber.Ctx) string {
	if v, ok := c.Locals("requestid").(string); ok {
		return v
	}
	return c.GetRespHeader(fiber.HeaderXRequestID)
}
