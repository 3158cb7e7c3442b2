package ledger

import (
	"context"

	"github.com/jhoicas/vales-api/internal/domain/entity"
	"github.com/jhoicas/vales-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio de vales
// atado a esa tx. Si fn devuelve error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(vouchers repository.VoucherRepository) error) error
}

// VoucherPDFGenerator puerto de salida para la versión imprimible de un vale.
type VoucherPDFGenerator interface {
	GenerateVoucherPDF(ctx context.Context, voucher *entity.Voucher) ([]byte, error)
}
