package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar um produto.
type CreateProductRequest struct {
	Code            string          `json:"code" validate:"required,min=1,max=100"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	CategoryID      *string         `json:"category_id,omitempty"`
	Unit            string          `json:"unit" validate:"required"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	MinQuantity     decimal.Decimal `json:"min_quantity"`
}

// UpdateProductRequest entrada para atualizar um produto.
// Quantity fica de fora: só o motor de movimentações mexe nela.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	CategoryID  *string          `json:"category_id"`
	Unit        *string          `json:"unit"`
	MinQuantity *decimal.Decimal `json:"min_quantity"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID              string          `json:"id"`
	CategoryID      *string         `json:"category_id,omitempty"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Quantity        decimal.Decimal `json:"quantity"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	MinQuantity     decimal.Decimal `json:"min_quantity"`
	BelowMinimum    bool            `json:"below_minimum"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ImportProductRow linha de importação já interpretada pelo colaborador
// externo (a planilha em si é parseada fora da API).
type ImportProductRow struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ImportProductsRequest corpo de POST /api/products/import.
type ImportProductsRequest struct {
	Rows        []ImportProductRow `json:"rows"`
	DefaultUnit string             `json:"default_unit,omitempty"`
}

// ImportProductsResponse resumo da importação.
type ImportProductsResponse struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}
