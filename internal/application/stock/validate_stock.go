package stock

import (
	"errors"

	"github.com/stashkeeper/stashkeeper-api/internal/application/dto"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/repository"
	domstock "github.com/stashkeeper/stashkeeper-api/internal/domain/stock"
)

// ValidateStockUseCase expõe o predicado de validação de saída sem efeito
// colateral: mesma regra usada pelo Register antes de confirmar uma saida.
type ValidateStockUseCase struct {
	productRepo repository.ProductRepository
}

// NewValidateStockUseCase constrói o caso de uso.
func NewValidateStockUseCase(productRepo repository.ProductRepository) *ValidateStockUseCase {
	return &ValidateStockUseCase{productRepo: productRepo}
}

// Validate responde se a quantidade pedida (na unidade pedida) cabe no
// estoque disponível do produto.
func (uc *ValidateStockUseCase) Validate(in dto.ValidateStockRequest) (*dto.ValidateStockResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	requestedUnit := in.Unit
	if requestedUnit == "" {
		requestedUnit = p.Unit
	}
	err = domstock.ValidateWithdrawal(p.Quantity, in.Quantity, requestedUnit, p.Unit)
	switch {
	case err == nil:
		return &dto.ValidateStockResponse{Valid: true}, nil
	case errors.Is(err, domain.ErrIncompatibleUnits), errors.Is(err, domain.ErrInsufficientStock):
		return &dto.ValidateStockResponse{Valid: false, Message: err.Error()}, nil
	default:
		return nil, err
	}
}
