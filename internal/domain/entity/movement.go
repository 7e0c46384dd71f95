package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementEntrada = "entrada" // entrada de estoque
	MovementSaida   = "saida"   // saída de estoque
)

// Movement é um lançamento append-only do razão de estoque.
// Nunca é removido fisicamente: a exclusão é o flag Deleted acompanhado,
// exatamente uma vez, do ajuste de quantidade no produto.
// CompensatesMovementID liga um lançamento de compensação automática à
// movimentação excluída que o originou.
type Movement struct {
	ID                    string
	ProductID             string
	EmployeeID            *string
	Type                  string          // entrada | saida
	Quantity              decimal.Decimal // sem sinal, na unidade da própria movimentação
	Unit                  string          // vazia = unidade do produto
	Notes                 string
	Deleted               bool
	CompensatesMovementID *string
	CreatedAt             time.Time // define a ordem do razão
}

// EffectiveUnit devolve a unidade da movimentação, caindo para a unidade do produto.
func (m *Movement) EffectiveUnit(productUnit string) string {
	if m.Unit != "" {
		return m.Unit
	}
	return productUnit
}

// IsCompensation indica se o lançamento foi gerado pela compensação automática.
func (m *Movement) IsCompensation() bool {
	return m.CompensatesMovementID != nil
}
