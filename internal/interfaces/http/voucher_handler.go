package http

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/internal/application/ledger"
	"github.com/jhoicas/vales-api/internal/domain"
)

const voucherNotFound = "vale no encontrado"

// VoucherHandler maneja las peticiones HTTP de vales (protegido).
type VoucherHandler struct {
	uc       *ledger.LedgerUseCase
	validate *requestValidator
	log      zerolog.Logger
}

// NewVoucherHandler construye el handler.
func NewVoucherHandler(uc *ledger.LedgerUseCase, log zerolog.Logger) *VoucherHandler {
	return &VoucherHandler{uc: uc, validate: newRequestValidator(), log: log}
}

// List godoc
// @Summary      Listar vales
// @Tags         vales
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VoucherListResponse
// @Router       /api/vales [get]
func (h *VoucherHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetAll(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(dto.VoucherListResponse{Success: true, Vouchers: out})
}

// Search godoc
// @Summary      Buscar vales
// @Tags         vales
// @Security     Bearer
// @Produce      json
// @Param        fechaDesde    query  string  false  "AAAA-MM-DD (inclusive)"
// @Param        fechaHasta    query  string  false  "AAAA-MM-DD (inclusive)"
// @Param        localOrigen   query  int     false  "ID del local origen"
// @Param        localDestino  query  int     false  "ID del local destino"
// @Param        local         query  int     false  "ID de local como origen o destino"
// @Param        estado        query  string  false  "pendiente | completado"
// @Param        mercaderia    query  string  false  "texto contenido en algún item"
// @Success      200  {object}  dto.VoucherListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/vales/buscar [get]
func (h *VoucherHandler) Search(c *fiber.Ctx) error {
	var q dto.VoucherSearchQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_QUERY", "parámetros inválidos"))
	}
	filter, err := ledger.ParseFilter(q)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	out, err := h.uc.Search(c.UserContext(), filter)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.JSON(dto.VoucherListResponse{Success: true, Vouchers: out})
}

// Export godoc
// @Summary      Exportar vales a CSV
// @Tags         vales
// @Security     Bearer
// @Produce      text/csv
// @Param        fechaDesde    query  string  false  "AAAA-MM-DD"
// @Param        fechaHasta    query  string  false  "AAAA-MM-DD"
// @Param        localOrigen   query  int     false  "ID del local origen"
// @Param        localDestino  query  int     false  "ID del local destino"
// @Param        local         query  int     false  "ID de local como origen o destino"
// @Param        estado        query  string  false  "pendiente | completado"
// @Param        mercaderia    query  string  false  "texto contenido en algún item"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/vales/exportar [get]
func (h *VoucherHandler) Export(c *fiber.Ctx) error {
	var q dto.VoucherSearchQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_QUERY", "parámetros inválidos"))
	}
	filter, err := ledger.ParseFilter(q)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	var buf bytes.Buffer
	if _, err := h.uc.ExportCSV(c.UserContext(), filter, &buf); err != nil {
		return respondError(c, h.log, err, "")
	}
	filename := fmt.Sprintf("vales_%s.csv", time.Now().Format(exportFileDate))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// GetByID godoc
// @Summary      Obtener vale por ID
// @Tags         vales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del vale"
// @Success      200  {object}  dto.VoucherEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vales/{id} [get]
func (h *VoucherHandler) GetByID(c *fiber.Ctx) error {
	id, err := voucherID(c)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	out, err := h.uc.FindByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err, voucherNotFound)
	}
	return c.JSON(dto.VoucherEnvelope{Success: true, Voucher: *out})
}

// PDF godoc
// @Summary      Vale imprimible
// @Tags         vales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del vale"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vales/{id}/pdf [get]
func (h *VoucherHandler) PDF(c *fiber.Ctx) error {
	id, err := voucherID(c)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	pdfBytes, filename, err := h.uc.RenderPDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err, voucherNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Create godoc
// @Summary      Crear vale
// @Tags         vales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVoucherRequest  true  "El local origen es el autenticado"
// @Success      201   {object}  dto.VoucherEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vales [post]
func (h *VoucherHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.validate.Validate(in); err != nil {
		return respondError(c, h.log, err, "")
	}
	out, err := h.uc.Create(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.VoucherEnvelope{
		Success: true,
		Message: "Vale creado exitosamente",
		Voucher: *out,
	})
}

// Update godoc
// @Summary      Actualizar vale (reemplazo completo)
// @Tags         vales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID del vale"
// @Param        body  body  dto.UpdateVoucherRequest  true  "items omitido conserva los actuales"
// @Success      200   {object}  dto.VoucherEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vales/{id} [put]
func (h *VoucherHandler) Update(c *fiber.Ctx) error {
	id, err := voucherID(c)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	var in dto.UpdateVoucherRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.validate.Validate(in); err != nil {
		return respondError(c, h.log, err, "")
	}
	out, err := h.uc.Update(c.UserContext(), id, GetStoreID(c), in)
	if err != nil {
		return respondError(c, h.log, err, voucherNotFound)
	}
	return c.JSON(dto.VoucherEnvelope{Success: true, Message: "Vale actualizado", Voucher: *out})
}

// MarkSettled godoc
// @Summary      Marcar vale como completado
// @Description  Sólo el local origen; repetirlo no es error.
// @Tags         vales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del vale"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vales/{id}/pagar [put]
func (h *VoucherHandler) MarkSettled(c *fiber.Ctx) error {
	id, err := voucherID(c)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	if err := h.uc.MarkSettled(c.UserContext(), id, GetStoreID(c)); err != nil {
		return respondError(c, h.log, err, "vale no encontrado o no pertenece a este local")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Vale marcado como completado"})
}

// Delete godoc
// @Summary      Eliminar vale
// @Tags         vales
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del vale"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vales/{id} [delete]
func (h *VoucherHandler) Delete(c *fiber.Ctx) error {
	id, err := voucherID(c)
	if err != nil {
		return respondError(c, h.log, err, "")
	}
	if err := h.uc.Delete(c.UserContext(), id, GetStoreID(c)); err != nil {
		return respondError(c, h.log, err, "vale no encontrado o no pertenece a este local")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Vale eliminado"})
}

// exportFileDate fecha compacta del nombre del archivo exportado.
const exportFileDate = "20060102"

func voucherID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "debe ser un número positivo")
	}
	return id, nil
}
