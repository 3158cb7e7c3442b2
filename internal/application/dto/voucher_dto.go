package dto

import "time"

// CreateVoucherRequest entrada para crear un vale. El local origen sale del token.
type CreateVoucherRequest struct {
	Date               string   `json:"fecha" validate:"required,datetime=2006-01-02"`
	DestinationStoreID int64    `json:"local_destino_id" validate:"required,gt=0"`
	ResponsiblePerson  string   `json:"persona_responsable" validate:"required,max=200"`
	Items              []string `json:"items" validate:"required,min=1,dive,max=500"`
}

// UpdateVoucherRequest reemplazo completo de un vale. Items nil conserva los actuales.
// Estado lo normaliza entity.ParseVoucherState (sin distinguir mayúsculas; "pagado" = completado).
type UpdateVoucherRequest struct {
	Date               string   `json:"fecha" validate:"required,datetime=2006-01-02"`
	DestinationStoreID int64    `json:"local_destino_id" validate:"required,gt=0"`
	ResponsiblePerson  string   `json:"persona_responsable" validate:"required,max=200"`
	State              string   `json:"estado" validate:"omitempty,max=20"`
	Items              []string `json:"items,omitempty" validate:"omitempty,dive,max=500"`
}

// VoucherSearchQuery filtros de /vales/buscar y /vales/exportar (query string).
type VoucherSearchQuery struct {
	DateFrom           string `query:"fechaDesde"`
	DateTo             string `query:"fechaHasta"`
	OriginStoreID      string `query:"localOrigen"`
	DestinationStoreID string `query:"localDestino"`
	StoreID            string `query:"local"`
	State              string `query:"estado"`
	Merchandise        string `query:"mercaderia"`
}

// VoucherItemResponse item de mercadería.
type VoucherItemResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"descripcion"`
}

// VoucherResponse salida de un vale enriquecido.
type VoucherResponse struct {
	ID                   int64                 `json:"id"`
	Date                 string                `json:"fecha"`
	OriginStoreID        int64                 `json:"origen_id"`
	OriginStoreName      string                `json:"origen_nombre"`
	DestinationStoreID   int64                 `json:"destino_id"`
	DestinationStoreName string                `json:"destino_nombre"`
	ResponsiblePerson    string                `json:"persona_responsable"`
	State                string                `json:"estado"`
	CreatedAt            time.Time             `json:"creado_en"`
	Items                []VoucherItemResponse `json:"items"`
}

// VoucherListResponse listado de vales.
type VoucherListResponse struct {
	Success  bool              `json:"success"`
	Vouchers []VoucherResponse `json:"vales"`
}

// VoucherEnvelope respuesta con un único vale.
type VoucherEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Voucher VoucherResponse `json:"vale"`
}
