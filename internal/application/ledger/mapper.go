package ledger

import (
	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/internal/domain/entity"
)

// ToVoucherResponse convierte el agregado a DTO. Items nunca sale como null.
func ToVoucherResponse(v *entity.Voucher) dto.VoucherResponse {
	items := make([]dto.VoucherItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		items = append(items, dto.VoucherItemResponse{ID: it.ID, Description: it.Description})
	}
	return dto.VoucherResponse{
		ID:                   v.ID,
		Date:                 v.Date.Format(entity.DateLayout),
		OriginStoreID:        v.OriginStoreID,
		OriginStoreName:      v.OriginStoreName,
		DestinationStoreID:   v.DestinationStoreID,
		DestinationStoreName: v.DestinationStoreName,
		ResponsiblePerson:    v.ResponsiblePerson,
		State:                v.State,
		CreatedAt:            v.CreatedAt,
		Items:                items,
	}
}

func toVoucherResponses(list []*entity.Voucher) []dto.VoucherResponse {
	out := make([]dto.VoucherResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToVoucherResponse(v))
	}
	return out
}
