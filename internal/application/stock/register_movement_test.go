package stock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashkeeper/stashkeeper-api/internal/application/dto"
	appstock "github.com/stashkeeper/stashkeeper-api/internal/application/stock"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
)

func setupRegister(t *testing.T, productQty string) (*memStore, *appstock.RegisterMovementUseCase) {
	t.Helper()
	s := newMemStore()
	s.addProduct(&entity.Product{
		ID:       "prod-1",
		Code:     "P001",
		Name:     "Leite",
		Unit:     "l",
		Quantity: dec(productQty),
	})
	return s, appstock.NewRegisterMovementUseCase(&fakeTxRunner{s: s}, &fakeProductRepo{s: s})
}

func TestRegister_EntradaSomaConvertendo(t *testing.T) {
	s, uc := setupRegister(t, "2")

	out, err := uc.Register(context.Background(), "emp-1", dto.RegisterMovementRequest{
		ProductID: "prod-1",
		Type:      entity.MovementEntrada,
		Quantity:  dec("500"),
		Unit:      "ml",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)
	require.NotNil(t, out.EmployeeID)
	assert.Equal(t, "emp-1", *out.EmployeeID)
	assert.True(t, s.products["prod-1"].Quantity.Equal(dec("2.5")))
	assert.Len(t, s.movements, 1)
}

func TestRegister_SaidaValidaESubtrai(t *testing.T) {
	s, uc := setupRegister(t, "10")

	_, err := uc.Register(context.Background(), "", dto.RegisterMovementRequest{
		ProductID: "prod-1",
		Type:      entity.MovementSaida,
		Quantity:  dec("4"),
	})
	require.NoError(t, err)
	assert.True(t, s.products["prod-1"].Quantity.Equal(dec("6")))
}

func TestRegister_SaidaAcimaDoEstoqueFalha(t *testing.T) {
	s, uc := setupRegister(t, "10")

	_, err := uc.Register(context.Background(), "", dto.RegisterMovementRequest{
		ProductID: "prod-1",
		Type:      entity.MovementSaida,
		Quantity:  dec("10.02"),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Len(t, s.movements, 0, "falha de validação não grava no razão")
	assert.True(t, s.products["prod-1"].Quantity.Equal(dec("10")))
}

// Dentro da tolerância de 0.01 a saída passa e o resíduo negativo é cravado em zero.
func TestRegister_SaidaNaFronteiraDaToleranciaCravaZero(t *testing.T) {
	s, uc := setupRegister(t, "10")

	_, err := uc.Register(context.Background(), "", dto.RegisterMovementRequest{
		ProductID: "prod-1",
		Type:      entity.MovementSaida,
		Quantity:  dec("10.01"),
	})
	require.NoError(t, err)
	assert.False(t, s.products["prod-1"].Quantity.IsNegative())
	assert.True(t, s.products["prod-1"].Quantity.IsZero())
}

func TestRegister_SaidaUnidadeIncompativel(t *testing.T) {
	_, uc := setupRegister(t, "10")

	_, err := uc.Register(context.Background(), "", dto.RegisterMovementRequest{
		ProductID: "prod-1",
		Type:      entity.MovementSaida,
		Quantity:  dec("1"),
		Unit:      "kg",
	})
	assert.ErrorIs(t, err, domain.ErrIncompatibleUnits)
}

func TestRegister_ValidacoesDeEntrada(t *testing.T) {
	_, uc := setupRegister(t, "10")
	ctx := context.Background()

	_, err := uc.Register(ctx, "", dto.RegisterMovementRequest{ProductID: "", Type: entity.MovementEntrada, Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, "", dto.RegisterMovementRequest{ProductID: "prod-1", Type: "ajuste", Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, "", dto.RegisterMovementRequest{ProductID: "prod-1", Type: entity.MovementEntrada, Quantity: dec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, "", dto.RegisterMovementRequest{ProductID: "nao-existe", Type: entity.MovementEntrada, Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
