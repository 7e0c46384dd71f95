package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um item estocado.
// Quantity é mantida exclusivamente pelo motor de movimentações: nunca é
// editada diretamente por formulário. InitialQuantity é a base do replay
// do razão (initial + Σ movimentações ativas == Quantity).
type Product struct {
	ID              string
	CategoryID      *string
	Code            string // código único do produto
	Name            string
	Unit            string          // símbolo canônico (l, ml, kg, g) ou unidade livre (unidade, caixa)
	Quantity        decimal.Decimal // sempre >= 0 após qualquer operação confirmada
	InitialQuantity decimal.Decimal
	MinQuantity     decimal.Decimal // limiar de estoque baixo
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BelowMinimum indica se o produto está no limiar de estoque baixo ou abaixo dele.
func (p *Product) BelowMinimum() bool {
	return p.Quantity.LessThanOrEqual(p.MinQuantity)
}
