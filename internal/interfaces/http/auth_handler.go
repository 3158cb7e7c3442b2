package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vales-api/internal/application/auth"
	"github.com/jhoicas/vales-api/internal/application/dto"
)

// AuthHandler maneja login, sesión actual y logout.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	validate *requestValidator
	log      zerolog.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, validate: newRequestValidator(), log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.validate.Validate(in); err != nil {
		return respondError(c, h.log, err, "")
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(out)
}

// CurrentUser godoc
// @Summary      Local autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CurrentUserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/user [get]
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	out, err := h.uc.CurrentUser(c.UserContext(), GetStoreID(c))
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(dto.CurrentUserResponse{Success: true, User: *out})
}

// Logout godoc
// @Summary      Cerrar sesión (revoca el token actual)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext(), GetTokenID(c), GetTokenExpiry(c)); err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Sesión cerrada"})
}
