package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/stock"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestValidateWithdrawal_DentroDoEstoque(t *testing.T) {
	err := stock.ValidateWithdrawal(dec("10"), dec("9.5"), "kg", "kg")
	assert.NoError(t, err)
}

// Fronteira da tolerância: 10.01 passa, 10.02 não.
func TestValidateWithdrawal_FronteiraDaTolerancia(t *testing.T) {
	assert.NoError(t, stock.ValidateWithdrawal(dec("10"), dec("10.01"), "kg", "kg"))
	assert.ErrorIs(t,
		stock.ValidateWithdrawal(dec("10"), dec("10.02"), "kg", "kg"),
		domain.ErrInsufficientStock)
}

// 2500 g contra 2.5 kg disponíveis: fronteira exata, válido.
func TestValidateWithdrawal_ConversaoNaFronteiraExata(t *testing.T) {
	assert.NoError(t, stock.ValidateWithdrawal(dec("2.5"), dec("2500"), "g", "kg"))
}

func TestValidateWithdrawal_UnidadesIncompativeis(t *testing.T) {
	assert.ErrorIs(t,
		stock.ValidateWithdrawal(dec("10"), dec("1"), "l", "kg"),
		domain.ErrIncompatibleUnits)
	assert.ErrorIs(t,
		stock.ValidateWithdrawal(dec("10"), dec("1"), "caixa", "unidade"),
		domain.ErrIncompatibleUnits)
}

func TestValidateWithdrawal_UnidadeOpacaIgual(t *testing.T) {
	assert.NoError(t, stock.ValidateWithdrawal(dec("3"), dec("2"), "unidade", "unidade"))
	assert.ErrorIs(t,
		stock.ValidateWithdrawal(dec("3"), dec("4"), "unidade", "unidade"),
		domain.ErrInsufficientStock)
}
