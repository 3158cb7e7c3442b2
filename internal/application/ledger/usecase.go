// Package ledger implementa el ciclo de vida de los vales: alta atómica con items,
// búsqueda filtrada, marca de completado, edición, baja, exportación CSV y PDF.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/internal/domain"
	"github.com/jhoicas/vales-api/internal/domain/entity"
	"github.com/jhoicas/vales-api/internal/domain/repository"
	"github.com/jhoicas/vales-api/internal/metrics"
)

// LedgerUseCase casos de uso del libro de vales.
type LedgerUseCase struct {
	txRunner  TxRunner
	vouchers  repository.VoucherRepository
	stores    repository.StoreRepository
	generator VoucherPDFGenerator
	log       zerolog.Logger
}

// NewLedgerUseCase construye el caso de uso. generator puede ser nil si no se expone el PDF.
func NewLedgerUseCase(
	txRunner TxRunner,
	vouchers repository.VoucherRepository,
	stores repository.StoreRepository,
	generator VoucherPDFGenerator,
	log zerolog.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:  txRunner,
		vouchers:  vouchers,
		stores:    stores,
		generator: generator,
		log:       log.With().Str("component", "ledger").Logger(),
	}
}

// voucherInput campos comunes de alta y edición ya validados.
type voucherInput struct {
	date        time.Time
	destination int64
	responsible string
	items       []string
}

// Create registra un vale pendiente con sus items en una sola transacción.
// El origen es siempre el local autenticado.
func (uc *LedgerUseCase) Create(ctx context.Context, originStoreID int64, in dto.CreateVoucherRequest) (*dto.VoucherResponse, error) {
	input, err := uc.validate(ctx, originStoreID, in.Date, in.DestinationStoreID, in.ResponsiblePerson)
	if err != nil {
		return nil, err
	}
	input.items = cleanItems(in.Items)
	if len(input.items) == 0 {
		return nil, domain.NewValidationError("items", "debe incluir al menos un item de mercadería")
	}

	var created *entity.Voucher
	err = uc.txRunner.Run(ctx, func(vouchers repository.VoucherRepository) error {
		v := &entity.Voucher{
			Date:               input.date,
			OriginStoreID:      originStoreID,
			DestinationStoreID: input.destination,
			ResponsiblePerson:  input.responsible,
			State:              entity.VoucherStatePending,
		}
		if err := vouchers.Create(ctx, v); err != nil {
			return fmt.Errorf("insertar vale: %w", err)
		}
		items, err := vouchers.AddItems(ctx, v.ID, input.items)
		if err != nil {
			return fmt.Errorf("insertar items: %w", err)
		}
		v.Items = items
		created = v
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Int64("origen_id", originStoreID).Msg("crear vale")
		return nil, err
	}

	metrics.VouchersCreatedTotal.Inc()
	uc.log.Info().Int64("vale_id", created.ID).Int64("origen_id", originStoreID).
		Int64("destino_id", input.destination).Int("items", len(created.Items)).Msg("vale creado")

	return uc.reload(ctx, created)
}

// GetAll devuelve todos los vales, más recientes primero.
func (uc *LedgerUseCase) GetAll(ctx context.Context) ([]dto.VoucherResponse, error) {
	return uc.Search(ctx, entity.VoucherFilter{})
}

// FindByID devuelve un vale con sus items. domain.ErrNotFound si no existe.
func (uc *LedgerUseCase) FindByID(ctx context.Context, id int64) (*dto.VoucherResponse, error) {
	v, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := ToVoucherResponse(v)
	return &out, nil
}

// Search aplica los filtros (AND). Mercadería se resuelve en memoria sobre los items.
func (uc *LedgerUseCase) Search(ctx context.Context, filter entity.VoucherFilter) ([]dto.VoucherResponse, error) {
	list, err := uc.search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toVoucherResponses(list), nil
}

// MarkSettled marca el vale como completado. Sólo el local origen puede hacerlo;
// inexistente y no permitido devuelven el mismo domain.ErrNotFound. Repetirlo no es error.
func (uc *LedgerUseCase) MarkSettled(ctx context.Context, id, originStoreID int64) error {
	ok, err := uc.vouchers.MarkSettled(ctx, id, originStoreID)
	if err != nil {
		uc.log.Error().Err(err).Int64("vale_id", id).Msg("marcar vale completado")
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	metrics.VouchersSettledTotal.Inc()
	uc.log.Info().Int64("vale_id", id).Int64("origen_id", originStoreID).Msg("vale completado")
	return nil
}

// Update reemplaza fecha, destino, persona responsable y estado; si Items no es nil
// también reemplaza los items. Completado no puede volver a pendiente.
func (uc *LedgerUseCase) Update(ctx context.Context, id, originStoreID int64, in dto.UpdateVoucherRequest) (*dto.VoucherResponse, error) {
	input, err := uc.validate(ctx, originStoreID, in.Date, in.DestinationStoreID, in.ResponsiblePerson)
	if err != nil {
		return nil, err
	}
	var state string
	if strings.TrimSpace(in.State) != "" {
		s, ok := entity.ParseVoucherState(in.State)
		if !ok {
			return nil, domain.NewValidationError("estado", "debe ser pendiente o completado")
		}
		state = s
	}
	if in.Items != nil {
		input.items = cleanItems(in.Items)
		if len(input.items) == 0 {
			return nil, domain.NewValidationError("items", "debe incluir al menos un item de mercadería")
		}
	}

	var updated *entity.Voucher
	err = uc.txRunner.Run(ctx, func(vouchers repository.VoucherRepository) error {
		v, err := vouchers.GetByIDForOrigin(ctx, id, originStoreID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
		if state == "" {
			state = v.State
		}
		if !entity.CanTransition(v.State, state) {
			return fmt.Errorf("%w: un vale completado no puede volver a pendiente", domain.ErrConflict)
		}
		v.Date = input.date
		v.DestinationStoreID = input.destination
		v.ResponsiblePerson = input.responsible
		v.State = state
		if err := vouchers.Update(ctx, v); err != nil {
			return fmt.Errorf("actualizar vale: %w", err)
		}
		if in.Items != nil {
			items, err := vouchers.ReplaceItems(ctx, v.ID, input.items)
			if err != nil {
				return fmt.Errorf("reemplazar items: %w", err)
			}
			v.Items = items
		}
		updated = v
		return nil
	})
	if err != nil {
		if !isExpected(err) {
			uc.log.Error().Err(err).Int64("vale_id", id).Msg("actualizar vale")
		}
		return nil, err
	}

	uc.log.Info().Int64("vale_id", id).Str("estado", updated.State).Msg("vale actualizado")
	return uc.reload(ctx, updated)
}

// Delete elimina el vale y sus items. Sólo el local origen puede hacerlo.
func (uc *LedgerUseCase) Delete(ctx context.Context, id, originStoreID int64) error {
	ok, err := uc.vouchers.Delete(ctx, id, originStoreID)
	if err != nil {
		uc.log.Error().Err(err).Int64("vale_id", id).Msg("eliminar vale")
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	metrics.VouchersDeletedTotal.Inc()
	uc.log.Info().Int64("vale_id", id).Int64("origen_id", originStoreID).Msg("vale eliminado")
	return nil
}

// ExportCSV escribe en w los vales que cumplen el filtro, en el mismo orden que Search.
// Devuelve la cantidad de filas de datos escritas.
func (uc *LedgerUseCase) ExportCSV(ctx context.Context, filter entity.VoucherFilter, w io.Writer) (int, error) {
	list, err := uc.search(ctx, filter)
	if err != nil {
		return 0, err
	}
	if err := WriteCSV(w, list); err != nil {
		return 0, fmt.Errorf("exportar csv: %w", err)
	}
	metrics.VouchersExportedTotal.Add(float64(len(list)))
	return len(list), nil
}

// RenderPDF genera el vale imprimible y su nombre de archivo.
func (uc *LedgerUseCase) RenderPDF(ctx context.Context, id int64) (pdfBytes []byte, filename string, err error) {
	if uc.generator == nil {
		return nil, "", errors.New("pdf: generador no configurado")
	}
	v, err := uc.get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateVoucherPDF(ctx, v)
	if err != nil {
		uc.log.Error().Err(err).Int64("vale_id", id).Msg("generar pdf")
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("vale_%d.pdf", v.ID), nil
}

func (uc *LedgerUseCase) get(ctx context.Context, id int64) (*entity.Voucher, error) {
	v, err := uc.vouchers.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Int64("vale_id", id).Msg("obtener vale")
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

func (uc *LedgerUseCase) search(ctx context.Context, filter entity.VoucherFilter) ([]*entity.Voucher, error) {
	list, err := uc.vouchers.List(ctx, filter)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar vales")
		return nil, err
	}
	return filterByMerchandise(list, filter.Merchandise), nil
}

// reload relee el vale tras el commit para devolverlo con los nombres de los locales.
func (uc *LedgerUseCase) reload(ctx context.Context, v *entity.Voucher) (*dto.VoucherResponse, error) {
	fresh, err := uc.vouchers.GetByID(ctx, v.ID)
	if err != nil || fresh == nil {
		uc.log.Warn().Err(err).Int64("vale_id", v.ID).
			Msg("releer vale tras commit; se responde sin nombres de locales")
		out := ToVoucherResponse(v)
		return &out, nil
	}
	out := ToVoucherResponse(fresh)
	return &out, nil
}

func (uc *LedgerUseCase) validate(ctx context.Context, originStoreID int64, rawDate string, destination int64, responsible string) (voucherInput, error) {
	var in voucherInput
	if originStoreID <= 0 {
		return in, domain.ErrUnauthorized
	}
	date, err := time.Parse(entity.DateLayout, strings.TrimSpace(rawDate))
	if err != nil {
		return in, domain.NewValidationError("fecha", "formato esperado AAAA-MM-DD")
	}
	in.responsible = cleanText(responsible)
	if in.responsible == "" {
		return in, domain.NewValidationError("persona_responsable", "es requerida")
	}
	if destination <= 0 {
		return in, domain.NewValidationError("local_destino_id", "es requerido")
	}
	if destination == originStoreID {
		return in, domain.NewValidationError("local_destino_id", "el local destino debe ser distinto del origen")
	}
	dest, err := uc.stores.GetByID(ctx, destination)
	if err != nil {
		uc.log.Error().Err(err).Int64("destino_id", destination).Msg("buscar local destino")
		return in, err
	}
	if dest == nil {
		return in, domain.NewValidationError("local_destino_id", "local destino inexistente")
	}
	in.date = date
	in.destination = destination
	return in, nil
}

// cleanItems descarta descripciones vacías y recorta espacios, preservando el orden.
func cleanItems(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = cleanText(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// lineBreaks unifica \r\n y \r en \n, que es como encoding/csv relee los saltos entre comillas.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// cleanText recorta espacios y normaliza saltos de línea de un texto libre.
func cleanText(s string) string {
	return strings.TrimSpace(lineBreaks.Replace(s))
}

func isExpected(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrInvalidInput)
}
