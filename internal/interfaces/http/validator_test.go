package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vales-api/internal/application/dto"
	"github.com/jhoicas/vales-api/internal/domain"
)

func TestRequestValidator_UsaNombresJSON(t *testing.T) {
	err := newRequestValidator().Validate(dto.CreateVoucherRequest{Date: "2024-13-40"})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, "fecha", ve.Field)
	assert.Contains(t, ve.Message, "fecha debe tener formato AAAA-MM-DD")
	assert.Contains(t, ve.Message, "local_destino_id es requerido")
	assert.Contains(t, ve.Message, "persona_responsable es requerido")
	assert.Contains(t, ve.Message, "items es requerido")
}

func TestRequestValidator_EstadoLoDecideElDominio(t *testing.T) {
	rv := newRequestValidator()
	base := dto.UpdateVoucherRequest{Date: "2024-03-10", DestinationStoreID: 2, ResponsiblePerson: "Ana"}

	for _, state := range []string{"", "pendiente", "Completado", "PAGADO"} {
		in := base
		in.State = state
		assert.NoError(t, rv.Validate(in), state)
	}
}
