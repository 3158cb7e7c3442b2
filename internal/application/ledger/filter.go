package ledger

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/internal/domain"
	"github.com/jhoicas/vales-api/internal/domain/entity"
)

// ParseFilter convierte los parámetros de búsqueda en un entity.VoucherFilter.
// Vacío significa "sin filtro"; el estado "todos" también.
func ParseFilter(q dto.VoucherSearchQuery) (entity.VoucherFilter, error) {
	var f entity.VoucherFilter
	var err error

	if f.DateFrom, err = parseDate("fechaDesde", q.DateFrom); err != nil {
		return f, err
	}
	if f.DateTo, err = parseDate("fechaHasta", q.DateTo); err != nil {
		return f, err
	}
	if f.OriginStoreID, err = parseStoreID("localOrigen", q.OriginStoreID); err != nil {
		return f, err
	}
	if f.DestinationStoreID, err = parseStoreID("localDestino", q.DestinationStoreID); err != nil {
		return f, err
	}
	if f.StoreID, err = parseStoreID("local", q.StoreID); err != nil {
		return f, err
	}

	if s := strings.TrimSpace(q.State); s != "" && !strings.EqualFold(s, "todos") {
		state, ok := entity.ParseVoucherState(s)
		if !ok {
			return f, domain.NewValidationError("estado", "debe ser pendiente o completado")
		}
		f.State = state
	}
	f.Merchandise = strings.TrimSpace(q.Merchandise)
	return f, nil
}

func parseDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(entity.DateLayout, raw)
	if err != nil {
		return nil, domain.NewValidationError(field, "formato esperado AAAA-MM-DD")
	}
	return &t, nil
}

func parseStoreID(field, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "todos") {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(field, "debe ser un id de local válido")
	}
	return id, nil
}

// MatchMerchandise indica si alguna descripción del vale contiene needle,
// sin distinguir mayúsculas ni formas Unicode equivalentes por plegado.
func MatchMerchandise(v *entity.Voucher, needle string) bool {
	if needle == "" {
		return true
	}
	fold := cases.Fold()
	n := fold.String(needle)
	for _, it := range v.Items {
		if strings.Contains(fold.String(it.Description), n) {
			return true
		}
	}
	return false
}

func filterByMerchandise(list []*entity.Voucher, needle string) []*entity.Voucher {
	if needle == "" {
		return list
	}
	out := make([]*entity.Voucher, 0, len(list))
	for _, v := range list {
		if MatchMerchandise(v, needle) {
			out = append(out, v)
		}
	}
	return out
}
