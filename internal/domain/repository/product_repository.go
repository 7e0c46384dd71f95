package repository

import (
	"github.com/shopspring/decimal"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
)

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	// GetForUpdate bloqueia a linha do produto para update (SELECT FOR UPDATE).
	// Usado dentro de transações pelo motor de movimentações.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(id string, quantity decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
	ListBelowMinimum() ([]*entity.Product, error)
	Delete(id string) error
}
