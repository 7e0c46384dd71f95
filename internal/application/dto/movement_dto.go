package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest corpo de POST /api/movements.
type RegisterMovementRequest struct {
	ProductID string          `json:"product_id"`
	Type      string          `json:"type"` // entrada | saida
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit,omitempty"` // vazio = unidade do produto
	Notes     string          `json:"notes,omitempty"`
}

// MovementResponse saída de uma movimentação do razão.
type MovementResponse struct {
	ID                    string          `json:"id"`
	ProductID             string          `json:"product_id"`
	EmployeeID            *string         `json:"employee_id,omitempty"`
	Type                  string          `json:"type"`
	Quantity              decimal.Decimal `json:"quantity"`
	Unit                  string          `json:"unit,omitempty"`
	Notes                 string          `json:"notes,omitempty"`
	Deleted               bool            `json:"deleted"`
	CompensatesMovementID *string         `json:"compensates_movement_id,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
}

// MovementListResponse lista paginada de movimentações.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// DeleteMovementResponse resultado da exclusão (soft) de uma movimentação.
type DeleteMovementResponse struct {
	MovementID      string           `json:"movement_id"`
	AlreadyDeleted  bool             `json:"already_deleted"`
	Compensated     bool             `json:"compensated"`
	CompensationQty *decimal.Decimal `json:"compensation_qty,omitempty"`
	NewQuantity     decimal.Decimal  `json:"new_quantity"`
}

// ValidateStockRequest corpo de POST /api/stock/validate.
type ValidateStockRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit,omitempty"`
}

// ValidateStockResponse resultado do predicado de validação.
type ValidateStockResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// RecalculateRequest corpo de POST /api/stock/recalculate.
type RecalculateRequest struct {
	ProductID string `json:"product_id,omitempty"` // vazio = todos
	Fix       bool   `json:"fix"`
}

// RecalculateResult resultado do recálculo de um produto.
type RecalculateResult struct {
	ProductID       string           `json:"product_id"`
	Code            string           `json:"code"`
	Stored          decimal.Decimal  `json:"stored"`
	Recomputed      decimal.Decimal  `json:"recomputed"`
	Drift           decimal.Decimal  `json:"drift"`
	Consistent      bool             `json:"consistent"`
	Fixed           bool             `json:"fixed"`
	CompensationQty *decimal.Decimal `json:"compensation_qty,omitempty"`
}
