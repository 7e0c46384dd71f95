package stock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashkeeper/stashkeeper-api/internal/application/dto"
	appstock "github.com/stashkeeper/stashkeeper-api/internal/application/stock"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
)

func setupValidate(t *testing.T) *appstock.ValidateStockUseCase {
	t.Helper()
	s := newMemStore()
	s.addProduct(&entity.Product{
		ID: "prod-1", Code: "P001", Unit: "kg", Quantity: dec("2.5"),
	})
	return appstock.NewValidateStockUseCase(&fakeProductRepo{s: s})
}

func TestValidate_FronteiraExataComConversao(t *testing.T) {
	uc := setupValidate(t)
	out, err := uc.Validate(dto.ValidateStockRequest{ProductID: "prod-1", Quantity: dec("2500"), Unit: "g"})
	require.NoError(t, err)
	assert.True(t, out.Valid)
}

func TestValidate_AcimaDoEstoque(t *testing.T) {
	uc := setupValidate(t)
	out, err := uc.Validate(dto.ValidateStockRequest{ProductID: "prod-1", Quantity: dec("2.6")})
	require.NoError(t, err)
	assert.False(t, out.Valid)
	assert.NotEmpty(t, out.Message)
}

func TestValidate_UnidadeIncompativelNaoEhValida(t *testing.T) {
	uc := setupValidate(t)
	out, err := uc.Validate(dto.ValidateStockRequest{ProductID: "prod-1", Quantity: dec("1"), Unit: "l"})
	require.NoError(t, err)
	assert.False(t, out.Valid)
}

func TestValidate_ProdutoInexistente(t *testing.T) {
	uc := setupValidate(t)
	_, err := uc.Validate(dto.ValidateStockRequest{ProductID: "nao-existe", Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
