package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stashkeeper/stashkeeper-api/internal/application/dto"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/repository"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/unit"
)

// ProductUseCase casos de uso CRUD de Product.
// A quantidade nasce de InitialQuantity e a partir daí pertence ao motor de
// movimentações; Update não a toca.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create cria um produto com a unidade normalizada e Quantity = InitialQuantity.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialQuantity.IsNegative() || in.MinQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	p := &entity.Product{
		ID:              uuid.New().String(),
		CategoryID:      in.CategoryID,
		Code:            in.Code,
		Name:            in.Name,
		Unit:            unit.Normalize(in.Unit),
		Quantity:        in.InitialQuantity,
		InitialQuantity: in.InitialQuantity,
		MinQuantity:     in.MinQuantity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// GetByID busca um produto; nil se não existir.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil || p == nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// List lista produtos paginados.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
	}, nil
}

// ListBelowMinimum devolve os produtos no limiar de estoque baixo.
func (uc *ProductUseCase) ListBelowMinimum() ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListBelowMinimum()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, toProductResponse(p))
	}
	return items, nil
}

// Update atualiza campos cadastrais. Quantity fica de fora de propósito.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.CategoryID != nil {
		p.CategoryID = in.CategoryID
	}
	if in.Unit != nil {
		p.Unit = unit.Normalize(*in.Unit)
	}
	if in.MinQuantity != nil {
		if in.MinQuantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		p.MinQuantity = *in.MinQuantity
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// Delete remove um produto do catálogo.
func (uc *ProductUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// Import cria em lote os produtos das linhas {code, name} já interpretadas
// pelo colaborador externo. Códigos existentes são pulados, não atualizados.
func (uc *ProductUseCase) Import(in dto.ImportProductsRequest) (*dto.ImportProductsResponse, error) {
	defaultUnit := in.DefaultUnit
	if defaultUnit == "" {
		defaultUnit = "unidade"
	}
	out := &dto.ImportProductsResponse{}
	for i, row := range in.Rows {
		if row.Code == "" || row.Name == "" {
			out.Errors = append(out.Errors, fmt.Sprintf("linha %d: code e name são obrigatórios", i+1))
			continue
		}
		existing, err := uc.repo.GetByCode(row.Code)
		if err != nil {
			return out, err
		}
		if existing != nil {
			out.Skipped++
			continue
		}
		now := time.Now()
		p := &entity.Product{
			ID:        uuid.New().String(),
			Code:      row.Code,
			Name:      row.Name,
			Unit:      unit.Normalize(defaultUnit),
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Create(p); err != nil {
			return out, err
		}
		out.Created++
	}
	return out, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		CategoryID:      p.CategoryID,
		Code:            p.Code,
		Name:            p.Name,
		Unit:            p.Unit,
		Quantity:        p.Quantity,
		InitialQuantity: p.InitialQuantity,
		MinQuantity:     p.MinQuantity,
		BelowMinimum:    p.BelowMinimum(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
