package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstock "github.com/stashkeeper/stashkeeper-api/internal/application/stock"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
	domstock "github.com/stashkeeper/stashkeeper-api/internal/domain/stock"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setupDelete(t *testing.T, productQty string) (*memStore, *appstock.DeleteMovementUseCase) {
	t.Helper()
	s := newMemStore()
	s.addProduct(&entity.Product{
		ID:       "prod-1",
		Code:     "P001",
		Name:     "Farinha",
		Unit:     "kg",
		Quantity: dec(productQty),
	})
	return s, appstock.NewDeleteMovementUseCase(&fakeTxRunner{s: s})
}

func seedMovement(s *memStore, id, typ, qty, unitSym string) *entity.Movement {
	m := &entity.Movement{
		ID:        id,
		ProductID: "prod-1",
		Type:      typ,
		Quantity:  dec(qty),
		Unit:      unitSym,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	s.movements[id] = m
	return m
}

func TestDelete_EntradaSimplesEstorna(t *testing.T) {
	s, uc := setupDelete(t, "10")
	seedMovement(s, "mov-1", entity.MovementEntrada, "4", "kg")

	out, err := uc.Delete(context.Background(), "mov-1")
	require.NoError(t, err)

	assert.False(t, out.AlreadyDeleted)
	assert.False(t, out.Compensated)
	assert.True(t, out.NewQuantity.Equal(dec("6")))
	assert.True(t, s.products["prod-1"].Quantity.Equal(dec("6")))
	assert.True(t, s.movements["mov-1"].Deleted)
}

// Cenário de referência: produto com 5 kg, exclusão de entrada de 100 →
// compensação de 95, quantidade final 0, original excluída, compensação ativa.
func TestDelete_EntradaComCompensacao(t *testing.T) {
	s, uc := setupDelete(t, "5")
	seedMovement(s, "mov-1", entity.MovementEntrada, "100", "kg")

	out, err := uc.Delete(context.Background(), "mov-1")
	require.NoError(t, err)

	assert.True(t, out.Compensated)
	require.NotNil(t, out.CompensationQty)
	assert.True(t, out.CompensationQty.Equal(dec("95")))
	assert.True(t, out.NewQuantity.IsZero())
	assert.True(t, s.products["prod-1"].Quantity.IsZero())
	assert.True(t, s.movements["mov-1"].Deleted)

	// Deve existir exatamente um lançamento de compensação, ativo, ligado à original.
	var comp *entity.Movement
	for _, m := range s.movements {
		if m.CompensatesMovementID != nil {
			require.Nil(t, comp, "só pode haver uma compensação")
			comp = m
		}
	}
	require.NotNil(t, comp)
	assert.Equal(t, "mov-1", *comp.CompensatesMovementID)
	assert.Equal(t, entity.MovementEntrada, comp.Type)
	assert.True(t, comp.Quantity.Equal(dec("95")))
	assert.False(t, comp.Deleted, "a compensação não nasce excluída")
	assert.Equal(t, domstock.CompensationNote("mov-1"), comp.Notes)
}

func TestDelete_SaidaDevolveAoEstoque(t *testing.T) {
	s, uc := setupDelete(t, "2")
	seedMovement(s, "mov-1", entity.MovementSaida, "3", "kg")

	out, err := uc.Delete(context.Background(), "mov-1")
	require.NoError(t, err)
	assert.False(t, out.Compensated)
	assert.True(t, out.NewQuantity.Equal(dec("5")))
	assert.True(t, s.products["prod-1"].Quantity.Equal(dec("5")))
}

// Idempotência: a segunda exclusão é no-op e o estado final é o mesmo.
func TestDelete_DuasVezesNaoAjustaDuasVezes(t *testing.T) {
	s, uc := setupDelete(t, "10")
	seedMovement(s, "mov-1", entity.MovementEntrada, "4", "kg")

	_, err := uc.Delete(context.Background(), "mov-1")
	require.NoError(t, err)
	first := s.products["prod-1"].Quantity

	out, err := uc.Delete(context.Background(), "mov-1")
	require.NoError(t, err)
	assert.True(t, out.AlreadyDeleted)
	assert.True(t, s.products["prod-1"].Quantity.Equal(first), "segunda exclusão não mexe no estoque")
	assert.Len(t, s.movements, 1, "no-op não insere compensação")
}

func TestDelete_ConverteUnidadeDaMovimentacao(t *testing.T) {
	s, uc := setupDelete(t, "2")
	seedMovement(s, "mov-1", entity.MovementEntrada, "500", "g")

	out, err := uc.Delete(context.Background(), "mov-1")
	require.NoError(t, err)
	assert.True(t, out.NewQuantity.Equal(dec("1.5")))
}

func TestDelete_MovimentacaoInexistente(t *testing.T) {
	_, uc := setupDelete(t, "10")
	_, err := uc.Delete(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_IDVazio(t *testing.T) {
	_, uc := setupDelete(t, "10")
	_, err := uc.Delete(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
