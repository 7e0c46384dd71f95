package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stashkeeper/stashkeeper-api/internal/application/dto"
	"github.com/stashkeeper/stashkeeper-api/internal/application/stock"
	"github.com/stashkeeper/stashkeeper-api/internal/domain"
)

// StockHandler trata validação e recálculo de estoque (protegido).
type StockHandler struct {
	validateUC    *stock.ValidateStockUseCase
	recalculateUC *stock.RecalculateUseCase
}

func NewStockHandler(validateUC *stock.ValidateStockUseCase, recalculateUC *stock.RecalculateUseCase) *StockHandler {
	return &StockHandler{validateUC: validateUC, recalculateUC: recalculateUC}
}

// Validate godoc
// @Summary      Validar disponibilidade de estoque para uma saída
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateStockRequest  true  "Quantidade desejada"
// @Success      200   {object}  dto.ValidateStockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/validate [post]
func (h *StockHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id é obrigatório"})
	}
	out, err := h.validateUC.Validate(in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Recalculate godoc
// @Summary      Recalcular estoque a partir do razão de movimentações
// @Description  Com product_id recalcula um produto; sem ele, todos. Com fix, grava a correção.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecalculateRequest  true  "Escopo do recálculo"
// @Success      200   {array}  dto.RecalculateResult
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/recalculate [post]
func (h *StockHandler) Recalculate(c *fiber.Ctx) error {
	var in dto.RecalculateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.ProductID != "" {
		out, err := h.recalculateUC.Recalculate(c.UserContext(), in.ProductID, in.Fix)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON([]*dto.RecalculateResult{out})
	}
	out, err := h.recalculateUC.RecalculateAll(c.UserContext(), in.Fix)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
