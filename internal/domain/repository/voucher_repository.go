package repository

import (
	"context"

	"github.com/jhoicas/vales-api/internal/domain/entity"
)

// VoucherRepository define el puerto de persistencia para el agregado vale + items (DIP).
// Las lecturas devuelven vales enriquecidos con los nombres de los locales y sus items.
type VoucherRepository interface {
	// Create inserta la cabecera; asigna ID, CreatedAt y estado pendiente si viene vacío.
	Create(ctx context.Context, voucher *entity.Voucher) error
	// AddItems inserta las descripciones como items del vale, en orden.
	AddItems(ctx context.Context, voucherID int64, descriptions []string) ([]entity.VoucherItem, error)
	// ReplaceItems borra todos los items del vale e inserta el nuevo conjunto.
	ReplaceItems(ctx context.Context, voucherID int64, descriptions []string) ([]entity.VoucherItem, error)
	GetByID(ctx context.Context, id int64) (*entity.Voucher, error)
	// GetByIDForOrigin busca el vale sólo si originStoreID es su local origen (bloquea la fila dentro de una tx).
	GetByIDForOrigin(ctx context.Context, id, originStoreID int64) (*entity.Voucher, error)
	// List aplica los filtros de fecha, local y estado; ordena por fecha descendente.
	List(ctx context.Context, filter entity.VoucherFilter) ([]*entity.Voucher, error)
	// Update reemplaza fecha, destino, persona responsable y estado.
	Update(ctx context.Context, voucher *entity.Voucher) error
	// MarkSettled pasa el vale a completado si originStoreID es su origen; false si no hubo fila.
	MarkSettled(ctx context.Context, id, originStoreID int64) (bool, error)
	// Delete elimina el vale si originStoreID es su origen; los items caen por cascada.
	Delete(ctx context.Context, id, originStoreID int64) (bool, error)
}
