package repository

import (
	"time"

	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
)

// MovementRepository define o porto de persistência do razão de movimentações.
// O razão é append-only: não existe remoção física, só SoftDelete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// ListByProduct lista movimentações de um produto em ordem decrescente de
	// criação; includeDeleted controla se as excluídas aparecem.
	ListByProduct(productID string, includeDeleted bool, from, to *time.Time, limit, offset int) ([]*entity.Movement, error)
	// ListActiveByProduct devolve todas as movimentações não excluídas em
	// ordem crescente de criação (entrada do replay do razão).
	ListActiveByProduct(productID string) ([]*entity.Movement, error)
	SoftDelete(id string) error
}
