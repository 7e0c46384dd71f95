// Package stock concentra a regra de consistência do razão de estoque:
// validação de saída, plano de exclusão com compensação automática e o
// replay do razão. Toda a aritmética de conservação vive aqui; casos de uso,
// handlers e a ferramenta de reconciliação consomem a mesma implementação.
package stock

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/unit"
)

// Epsilon absorve o ruído de arredondamento de conversões repetidas
// (3 casas decimais) ao comparar quantidades.
var Epsilon = decimal.RequireFromString("0.01")

// ValidateWithdrawal decide se uma saída de requested (em requestedUnit) pode
// ser atendida pelo estoque available (em productUnit). Predicado puro, sem
// efeito colateral: primeiro compatibilidade dimensional, depois conversão,
// por fim converted <= available + Epsilon.
func ValidateWithdrawal(available, requested decimal.Decimal, requestedUnit, productUnit string) error {
	if !unit.Compatible(requestedUnit, productUnit) {
		return domain.ErrIncompatibleUnits
	}
	converted, err := unit.Convert(requested, requestedUnit, productUnit)
	if err != nil {
		return err
	}
	if converted.GreaterThan(available.Add(Epsilon)) {
		return domain.ErrInsufficientStock
	}
	return nil
}

// NormalizedQuantity devolve a quantidade da movimentação convertida para a
// unidade do produto.
func NormalizedQuantity(m *entity.Movement, productUnit string) (decimal.Decimal, error) {
	return unit.Convert(m.Quantity, m.EffectiveUnit(productUnit), productUnit)
}

// CompensationNote é a anotação humana do lançamento de compensação. O elo
// estrutural é CompensatesMovementID; a nota existe só para leitura.
func CompensationNote(movementID string) string {
	return fmt.Sprintf("Compensação automática para exclusão da movimentação %s", movementID)
}
