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

// RecalculateUseCase recomputa a quantidade de um produto do zero pelo replay
// do razão (initial + Σ movimentações ativas, com conversão de unidade) e
// compara com a quantidade armazenada. Em modo fix corrige: sobrescreve
// quando o recomputado é não negativo, ou insere uma entrada corretiva e
// crava zero quando o razão reconstituído ficaria negativo (mesmo primitivo
// de compensação da exclusão). Passo de reconciliação operacional, não faz
// parte do caminho quente.
type RecalculateUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRecalculateUseCase constrói o caso de uso.
func NewRecalculateUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RecalculateUseCase {
	return &RecalculateUseCase{txRunner: txRunner, productRepo: productRepo}
}

// CorrectionNote anotação das entradas corretivas inseridas pelo recálculo.
const CorrectionNote = "Correção automática de estoque (recálculo do razão)"

// Recalculate processa um produto. fix=false é só auditoria.
func (uc *RecalculateUseCase) Recalculate(ctx context.Context, productID string, fix bool) (*dto.RecalculateResult, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}

	var result *dto.RecalculateResult
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, productRepo repository.ProductRepository) error {
		p, err := productRepo.GetForUpdate(productID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		movs, err := movRepo.ListActiveByProduct(p.ID)
		if err != nil {
			return err
		}
		recomputed, err := domstock.Replay(p.InitialQuantity, p.Unit, movs)
		if err != nil {
			return err
		}

		drift := p.Quantity.Sub(recomputed)
		result = &dto.RecalculateResult{
			ProductID:  p.ID,
			Code:       p.Code,
			Stored:     p.Quantity,
			Recomputed: recomputed,
			Drift:      drift,
			Consistent: drift.Abs().LessThanOrEqual(domstock.Epsilon),
		}
		if result.Consistent || !fix {
			return nil
		}

		if recomputed.IsNegative() {
			// Razão reconstituído negativo: entrada corretiva reconcilia em zero.
			correction := &entity.Movement{
				ProductID: p.ID,
				Type:      entity.MovementEntrada,
				Quantity:  recomputed.Abs(),
				Unit:      p.Unit,
				Notes:     CorrectionNote,
				CreatedAt: time.Now(),
			}
			if err := movRepo.Create(correction); err != nil {
				return err
			}
			qty := correction.Quantity
			result.CompensationQty = &qty
			recomputed = decimal.Zero
		}
		if err := productRepo.UpdateQuantity(p.ID, recomputed); err != nil {
			return err
		}
		result.Fixed = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecalculateAll percorre todos os produtos em lotes e aplica Recalculate em
// cada um (cada produto na sua própria transação, para não segurar locks do
// catálogo inteiro de uma vez).
func (uc *RecalculateUseCase) RecalculateAll(ctx context.Context, fix bool) ([]*dto.RecalculateResult, error) {
	const batch = 100
	var results []*dto.RecalculateResult
	for offset := 0; ; offset += batch {
		products, err := uc.productRepo.List(batch, offset)
		if err != nil {
			return results, err
		}
		if len(products) == 0 {
			return results, nil
		}
		for _, p := range products {
			r, err := uc.Recalculate(ctx, p.ID, fix)
			if err != nil {
				return results, err
			}
			results = append(results, r)
		}
		if len(products) < batch {
			return results, nil
		}
	}
}
