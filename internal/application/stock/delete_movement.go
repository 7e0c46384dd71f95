package stock

import (
	"context"
	"time"

	"github.com/stashkeeper/stashkeeper-api/internal/application/dto"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/repository"
	domstock "github.com/stashkeeper/stashkeeper-api/internal/domain/stock"
)

// DeleteMovementUseCase executa a exclusão (soft) de uma movimentação com
// compensação automática. O plano é calculado pelo domínio (stock.PlanDeletion)
// e aplicado inteiro dentro de UMA transação com a linha do produto
// bloqueada: o par de escritas (quantidade do produto, flag deleted) não tem
// estado parcial observável e duas exclusões concorrentes do mesmo produto
// se serializam no FOR UPDATE.
type DeleteMovementUseCase struct {
	txRunner TxRunner
}

// NewDeleteMovementUseCase constrói o caso de uso.
func NewDeleteMovementUseCase(txRunner TxRunner) *DeleteMovementUseCase {
	return &DeleteMovementUseCase{txRunner: txRunner}
}

// Delete aplica o plano de exclusão da movimentação movementID.
// Movimentação já excluída é no-op com sucesso (idempotência).
func (uc *DeleteMovementUseCase) Delete(ctx context.Context, movementID string) (*dto.DeleteMovementResponse, error) {
	if movementID == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	var out *dto.DeleteMovementResponse

	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		m, err := movRepo.GetByID(movementID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.ErrNotFound
		}

		p, err := productRepo.GetForUpdate(m.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		plan, err := domstock.PlanDeletion(p, m, now)
		if err != nil {
			return err
		}

		out = &dto.DeleteMovementResponse{
			MovementID:     movementID,
			AlreadyDeleted: plan.AlreadyDeleted,
			NewQuantity:    plan.NewQuantity,
		}
		if plan.AlreadyDeleted {
			return nil
		}

		if plan.Compensated() {
			if err := movRepo.Create(plan.Compensation); err != nil {
				return err
			}
			qty := plan.Compensation.Quantity
			out.Compensated = true
			out.CompensationQty = &qty
		}
		if err := productRepo.UpdateQuantity(p.ID, plan.NewQuantity); err != nil {
			return err
		}
		return movRepo.SoftDelete(m.ID)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
