package stock

import (
	"time"

	"github.com/stashkeeper/stashkeeper-api/internal/application/dto"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/repository"
)

// ListMovementsUseCase consulta o razão de movimentações de um produto.
type ListMovementsUseCase struct {
	movementRepo repository.MovementRepository
}

// NewListMovementsUseCase constrói o caso de uso.
func NewListMovementsUseCase(movementRepo repository.MovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{movementRepo: movementRepo}
}

// List devolve as movimentações de um produto, mais recentes primeiro.
func (uc *ListMovementsUseCase) List(productID string, includeDeleted bool, from, to *time.Time, page dto.PageRequest) (*dto.MovementListResponse, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	page.DefaultPage()

	movs, err := uc.movementRepo.ListByProduct(productID, includeDeleted, from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		items = append(items, toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}
