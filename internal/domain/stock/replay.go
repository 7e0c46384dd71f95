package stock

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
)

// Replay recalcula a quantidade de um produto do zero:
// initial + Σ sinal(m) * convert(m.Quantity, m.Unit, productUnit) sobre as
// movimentações não excluídas, em ordem de CreatedAt. Cada passo é
// arredondado a 3 casas, igual ao caminho online, para que o replay
// reproduza exatamente o que as operações incrementais teriam produzido.
func Replay(initial decimal.Decimal, productUnit string, movements []*entity.Movement) (decimal.Decimal, error) {
	ordered := make([]*entity.Movement, 0, len(movements))
	for _, m := range movements {
		if !m.Deleted {
			ordered = append(ordered, m)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	total := initial
	for _, m := range ordered {
		qty, err := NormalizedQuantity(m, productUnit)
		if err != nil {
			return decimal.Zero, err
		}
		switch m.Type {
		case entity.MovementEntrada:
			total = total.Add(qty)
		case entity.MovementSaida:
			total = total.Sub(qty)
		default:
			return decimal.Zero, domain.ErrInvalidInput
		}
		total = total.Round(3)
	}
	return total, nil
}
