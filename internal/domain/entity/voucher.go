package entity

import (
	"strings"
	"time"
)

// Estados válidos de un vale. La única transición es pendiente -> completado.
const (
	VoucherStatePending = "pendiente"
	VoucherStateSettled = "completado"
)

// DateLayout formato de la fecha del vale (día calendario, sin hora).
const DateLayout = "2006-01-02"

// Voucher representa un vale: mercadería que un local (origen) presta a otro (destino).
type Voucher struct {
	ID                   int64
	Date                 time.Time
	OriginStoreID        int64
	OriginStoreName      string
	DestinationStoreID   int64
	DestinationStoreName string
	ResponsiblePerson    string
	State                string
	CreatedAt            time.Time
	Items                []VoucherItem
}

// VoucherItem una línea de mercadería del vale. No tiene ciclo de vida propio.
type VoucherItem struct {
	ID          int64
	VoucherID   int64
	Description string
}

// IsSettled indica si el vale ya fue marcado como completado.
func (v *Voucher) IsSettled() bool {
	return v.State == VoucherStateSettled
}

// Descriptions devuelve las descripciones de los items en orden.
func (v *Voucher) Descriptions() []string {
	out := make([]string, 0, len(v.Items))
	for _, it := range v.Items {
		out = append(out, it.Description)
	}
	return out
}

// ParseVoucherState normaliza un estado recibido de un cliente.
// "pagado" se acepta como sinónimo de completado.
func ParseVoucherState(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case VoucherStatePending:
		return VoucherStatePending, true
	case VoucherStateSettled, "pagado":
		return VoucherStateSettled, true
	}
	return "", false
}

// CanTransition reporta si un vale puede pasar de from a to.
// Completado es terminal; repetir el mismo estado siempre es válido.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	return from == VoucherStatePending && to == VoucherStateSettled
}

// VoucherFilter filtros de búsqueda de vales; todos opcionales y combinados con AND.
// Merchandise no lo resuelve la capa de persistencia: se aplica en memoria sobre los items.
type VoucherFilter struct {
	DateFrom           *time.Time // inclusive
	DateTo             *time.Time // inclusive
	OriginStoreID      int64
	DestinationStoreID int64
	StoreID            int64 // origen O destino
	State              string
	Merchandise        string
}
