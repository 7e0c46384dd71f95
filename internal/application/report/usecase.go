// Package report monta relatórios de estoque para exportação.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/stashkeeper/stashkeeper-api/internal/domain/entity"
	"github.com/stashkeeper/stashkeeper-api/internal/domain/repository"
)

// StockReportRow é uma linha do relatório de posição de estoque.
type StockReportRow struct {
	Code         string
	Name         string
	Unit         string
	Quantity     string
	MinQuantity  string
	BelowMinimum bool
}

// StockReportData é o que o gerador de PDF recebe.
type StockReportData struct {
	GeneratedAt  time.Time
	OnlyLowStock bool
	Rows         []StockReportRow
	TotalRows    int
	LowStockRows int
}

// PDFGenerator é o porto do gerador de PDF do relatório.
type PDFGenerator interface {
	GenerateStockReport(ctx context.Context, data StockReportData) ([]byte, error)
}

// ReportUseCase gera relatórios a partir da posição atual de estoque.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	pdfGen      PDFGenerator
}

func NewReportUseCase(productRepo repository.ProductRepository, pdfGen PDFGenerator) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, pdfGen: pdfGen}
}

// reportPageSize limita a varredura por página ao montar o relatório.
const reportPageSize = 500

// StockReportPDF monta o relatório de posição de estoque e devolve os bytes
// do PDF. Com onlyLowStock, inclui apenas produtos no mínimo ou abaixo dele.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context, onlyLowStock bool) ([]byte, error) {
	var products []*entity.Product
	var err error
	if onlyLowStock {
		products, err = uc.productRepo.ListBelowMinimum()
	} else {
		products, err = uc.listAll()
	}
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}

	data := StockReportData{
		GeneratedAt:  time.Now(),
		OnlyLowStock: onlyLowStock,
		Rows:         make([]StockReportRow, 0, len(products)),
	}
	for _, p := range products {
		below := p.BelowMinimum()
		if below {
			data.LowStockRows++
		}
		data.Rows = append(data.Rows, StockReportRow{
			Code:         p.Code,
			Name:         p.Name,
			Unit:         p.Unit,
			Quantity:     p.Quantity.StringFixed(3),
			MinQuantity:  p.MinQuantity.StringFixed(3),
			BelowMinimum: below,
		})
	}
	data.TotalRows = len(data.Rows)

	return uc.pdfGen.GenerateStockReport(ctx, data)
}

func (uc *ReportUseCase) listAll() ([]*entity.Product, error) {
	var all []*entity.Product
	offset := 0
	for {
		page, err := uc.productRepo.List(reportPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < reportPageSize {
			return all, nil
		}
		offset += reportPageSize
	}
}
