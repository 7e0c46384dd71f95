package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/stock"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func produto(qty, unitSym string) *entity.Product {
	return &entity.Product{
		ID:       "prod-1",
		Code:     "P001",
		Unit:     unitSym,
		Quantity: dec(qty),
	}
}

func entrada(id, qty, unitSym string) *entity.Movement {
	return &entity.Movement{
		ID:        id,
		ProductID: "prod-1",
		Type:      entity.MovementEntrada,
		Quantity:  dec(qty),
		Unit:      unitSym,
		CreatedAt: now,
	}
}

func TestPlanDeletion_EntradaSimples(t *testing.T) {
	p := produto("10", "kg")
	m := entrada("mov-1", "4", "kg")

	plan, err := stock.PlanDeletion(p, m, now)
	require.NoError(t, err)
	assert.False(t, plan.AlreadyDeleted)
	assert.False(t, plan.Compensated())
	assert.True(t, plan.NewQuantity.Equal(dec("6")))
}

func TestPlanDeletion_SaidaDevolveAoEstoque(t *testing.T) {
	p := produto("10", "kg")
	m := &entity.Movement{
		ID: "mov-2", ProductID: "prod-1",
		Type: entity.MovementSaida, Quantity: dec("3"), Unit: "kg",
		CreatedAt: now,
	}

	plan, err := stock.PlanDeletion(p, m, now)
	require.NoError(t, err)
	assert.False(t, plan.Compensated(), "estorno de saída nunca compensa: só aumenta o estoque")
	assert.True(t, plan.NewQuantity.Equal(dec("13")))
}

// Cenário de referência: produto com 5 kg, exclusão de uma entrada de 100 →
// compensação de 95, quantidade final zero.
func TestPlanDeletion_EntradaComCompensacao(t *testing.T) {
	p := produto("5", "kg")
	m := entrada("mov-3", "100", "kg")

	plan, err := stock.PlanDeletion(p, m, now)
	require.NoError(t, err)

	require.True(t, plan.Compensated())
	comp := plan.Compensation
	assert.Equal(t, entity.MovementEntrada, comp.Type)
	assert.True(t, comp.Quantity.Equal(dec("95")), "compensação deve ser abs(5-100)=95, obtido %s", comp.Quantity)
	assert.Equal(t, "kg", comp.Unit)
	assert.False(t, comp.Deleted, "o lançamento de compensação não nasce excluído")
	require.NotNil(t, comp.CompensatesMovementID)
	assert.Equal(t, "mov-3", *comp.CompensatesMovementID)
	assert.Equal(t, stock.CompensationNote("mov-3"), comp.Notes)
	assert.True(t, plan.NewQuantity.IsZero(), "quantidade final cravada em zero, não negativa")
}

func TestPlanDeletion_NormalizaUnidadeDaMovimentacao(t *testing.T) {
	// Produto em kg; a entrada foi lançada em gramas.
	p := produto("2", "kg")
	m := entrada("mov-4", "500", "g")

	plan, err := stock.PlanDeletion(p, m, now)
	require.NoError(t, err)
	assert.False(t, plan.Compensated())
	assert.True(t, plan.NewQuantity.Equal(dec("1.5")))
}

func TestPlanDeletion_UnidadeVaziaAssumeADoProduto(t *testing.T) {
	p := produto("10", "l")
	m := entrada("mov-5", "4", "")

	plan, err := stock.PlanDeletion(p, m, now)
	require.NoError(t, err)
	assert.True(t, plan.NewQuantity.Equal(dec("6")))
}

// Idempotência: excluir duas vezes produz o mesmo estado final que uma vez.
func TestPlanDeletion_JaExcluidaEhNoOp(t *testing.T) {
	p := produto("6", "kg")
	m := entrada("mov-6", "4", "kg")
	m.Deleted = true

	plan, err := stock.PlanDeletion(p, m, now)
	require.NoError(t, err)
	assert.True(t, plan.AlreadyDeleted)
	assert.False(t, plan.Compensated())
	assert.True(t, plan.NewQuantity.Equal(p.Quantity), "no-op não mexe na quantidade")
}

func TestPlanDeletion_CompensacaoExataNaoDispara(t *testing.T) {
	// Estorno que zera o estoque sem ficar negativo: não há compensação.
	p := produto("100", "ml")
	m := entrada("mov-7", "100", "ml")

	plan, err := stock.PlanDeletion(p, m, now)
	require.NoError(t, err)
	assert.False(t, plan.Compensated())
	assert.True(t, plan.NewQuantity.IsZero())
}
