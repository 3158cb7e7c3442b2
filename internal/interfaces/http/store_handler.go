package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vales-api/internal/application/directory"
	"github.com/jhoicas/vales-api/internal/application/dto"
)

// StoreHandler expone el directorio de locales (protegido).
type StoreHandler struct {
	uc  *directory.DirectoryUseCase
	log zerolog.Logger
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *directory.DirectoryUseCase, log zerolog.Logger) *StoreHandler {
	return &StoreHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar locales
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StoreListResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/usuarios [get]
func (h *StoreHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(dto.StoreListResponse{Success: true, Stores: out})
}
