package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vales-api/internal/domain/entity"
)

func sampleVoucher() *entity.Voucher {
	return &entity.Voucher{
		ID:                   42,
		Date:                 time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC),
		OriginStoreID:        1,
		OriginStoreName:      "Local Central",
		DestinationStoreID:   2,
		DestinationStoreName: "Local Norte",
		ResponsiblePerson:    "Ana Pérez",
		State:                entity.VoucherStatePending,
		Items: []entity.VoucherItem{
			{ID: 1, VoucherID: 42, Description: "Resma de papel A4"},
			{ID: 2, VoucherID: 42, Description: "Cartuchos de tinta"},
		},
	}
}

func TestGenerateVoucherPDF(t *testing.T) {
	g := NewMarotoPDFGenerator("vales-api")

	b, err := g.GenerateVoucherPDF(context.Background(), sampleVoucher())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateVoucherPDF_SinItems(t *testing.T) {
	v := sampleVoucher()
	v.Items = nil
	v.State = entity.VoucherStateSettled

	b, err := NewMarotoPDFGenerator("").GenerateVoucherPDF(context.Background(), v)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestQRPayload(t *testing.T) {
	assert.Equal(t, "vale:42|fecha:2025-04-12|origen:1|destino:2", qrPayload(sampleVoucher()))
}
