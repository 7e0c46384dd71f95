package stock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stashkeeper/stashkeeper-api/internal/application/dto"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/repository"
	domstock "github.com/stashkeeper/stashkeeper-api/internal/domain/stock"
)

// RegisterMovementUseCase registra movimentações de estoque de forma
// transacional (entrada/saida) com bloqueio de linha (SELECT FOR UPDATE)
// e Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Register valida a entrada, inicia a transação, bloqueia a linha do produto,
// aplica a regra do tipo (entrada soma, saida valida e subtrai) e grava o
// lançamento no razão junto com a nova quantidade.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, employeeID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Type != entity.MovementEntrada && in.Type != entity.MovementSaida {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var created *entity.Movement

	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		p, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		mov := &entity.Movement{
			ProductID: p.ID,
			Type:      in.Type,
			Quantity:  in.Quantity,
			Unit:      in.Unit,
			Notes:     in.Notes,
			CreatedAt: now,
		}
		if employeeID != "" {
			mov.EmployeeID = &employeeID
		}

		converted, err := domstock.NormalizedQuantity(mov, p.Unit)
		if err != nil {
			return err
		}

		var newQuantity decimal.Decimal
		switch in.Type {
		case entity.MovementEntrada:
			newQuantity = p.Quantity.Add(converted).Round(3)
		case entity.MovementSaida:
			if err := domstock.ValidateWithdrawal(p.Quantity, in.Quantity, mov.EffectiveUnit(p.Unit), p.Unit); err != nil {
				return err
			}
			newQuantity = p.Quantity.Sub(converted).Round(3)
			// A tolerância de Epsilon pode deixar um resíduo negativo menor
			// que 0.01; o estado confirmado nunca fica abaixo de zero.
			if newQuantity.IsNegative() {
				newQuantity = decimal.Zero
			}
		}

		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(p.ID, newQuantity); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toMovementResponse(created)
	return &resp, nil
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:                    m.ID,
		ProductID:             m.ProductID,
		EmployeeID:            m.EmployeeID,
		Type:                  m.Type,
		Quantity:              m.Quantity,
		Unit:                  m.Unit,
		Notes:                 m.Notes,
		Deleted:               m.Deleted,
		CompensatesMovementID: m.CompensatesMovementID,
		CreatedAt:             m.CreatedAt,
	}
}
