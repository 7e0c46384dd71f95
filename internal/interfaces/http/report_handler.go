package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stashkeeper/stashkeeper-api/internal/application/dto"
	"github.com/stashkeeper/stashkeeper-api/internal/application/report"
)

// ReportHandler exporta relatórios de estoque (protegido).
type ReportHandler struct {
	uc *report.ReportUseCase
}

func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Stock godoc
// @Summary      Relatório de posição de estoque em PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        low_stock  query  bool  false  "Apenas produtos no mínimo ou abaixo"  default(false)
// @Success      200  {file}  binary
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.StockReportPDF(c.UserContext(), c.QueryBool("low_stock", false))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-estoque.pdf"`)
	return c.Send(pdfBytes)
}
