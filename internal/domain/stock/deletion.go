package stock

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
)

// DeletionPlan é o resultado puro do planejamento da exclusão de uma
// movimentação: a nova quantidade do produto e, quando o estorno de uma
// entrada levaria o estoque ao negativo, o lançamento de compensação que
// reconcilia o razão em exatamente zero.
type DeletionPlan struct {
	AlreadyDeleted bool
	NewQuantity    decimal.Decimal
	Compensation   *entity.Movement // nil quando a exclusão não precisa compensar
}

// Compensated indica se o plano inclui lançamento de compensação.
func (p *DeletionPlan) Compensated() bool { return p.Compensation != nil }

// PlanDeletion calcula, sem efeito colateral, o que a exclusão de m deve
// gravar:
//
//   - m já excluída: no-op (idempotência; excluir duas vezes não ajusta
//     o estoque duas vezes).
//   - entrada: NewQuantity = atual - quantidade normalizada. Se ficar
//     negativa, o plano traz uma entrada de compensação de abs(negativo),
//     na unidade do produto, ligada a m por CompensatesMovementID, e a
//     quantidade final é cravada em zero.
//   - saida: NewQuantity = atual + quantidade normalizada. Nunca compensa,
//     porque só aumenta o estoque.
//
// A quantidade da movimentação é sempre normalizada para a unidade do
// produto antes do estorno: é isso que mantém a conservação do razão quando
// a movimentação foi lançada em outra unidade da mesma família.
func PlanDeletion(product *entity.Product, m *entity.Movement, now time.Time) (*DeletionPlan, error) {
	if m.Deleted {
		return &DeletionPlan{AlreadyDeleted: true, NewQuantity: product.Quantity}, nil
	}

	qty, err := NormalizedQuantity(m, product.Unit)
	if err != nil {
		return nil, err
	}

	var newQuantity decimal.Decimal
	switch m.Type {
	case entity.MovementEntrada:
		newQuantity = product.Quantity.Sub(qty)
	case entity.MovementSaida:
		newQuantity = product.Quantity.Add(qty)
	default:
		return nil, domain.ErrInvalidInput
	}

	plan := &DeletionPlan{NewQuantity: newQuantity}
	if m.Type == entity.MovementEntrada && newQuantity.IsNegative() {
		id := m.ID
		plan.Compensation = &entity.Movement{
			ProductID:             m.ProductID,
			Type:                  entity.MovementEntrada,
			Quantity:              newQuantity.Abs(),
			Unit:                  product.Unit,
			Notes:                 CompensationNote(m.ID),
			CompensatesMovementID: &id,
			CreatedAt:             now,
		}
		plan.NewQuantity = decimal.Zero
	}
	return plan, nil
}
