// Package report genera el informe de posición de inventario y finanzas.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// ProductRow fila de producto para el informe.
type ProductRow struct {
	Code      string
	Name      string
	Category  string
	Stock     int
	MinStock  int
	SalePrice decimal.Decimal
	Margin    decimal.Decimal
	LowStock  bool
}

// Data todo lo que el generador necesita para renderizar el informe.
type Data struct {
	AppName     string
	GeneratedAt time.Time

	TotalProducts int
	TotalStock    int
	Products      []ProductRow

	TotalReceivable decimal.Decimal
	TotalPayable    decimal.Decimal
	OverduePending  int
}

// Generator puerto de renderizado del informe (implementado en infrastructure/pdf).
type Generator interface {
	GenerateInventoryReport(ctx context.Context, data Data) ([]byte, error)
}

// UseCase arma los datos del informe desde el estado actual y delega el
// renderizado al generador.
type UseCase struct {
	products   repository.ProductRepository
	financials repository.FinancialRepository
	generator  Generator
	appName    string
	loc        *time.Location
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	products repository.ProductRepository,
	financials repository.FinancialRepository,
	generator Generator,
	appName string,
	loc *time.Location,
) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		products:   products,
		financials: financials,
		generator:  generator,
		appName:    appName,
		loc:        loc,
	}
}

// InventoryPDF genera el PDF del informe y devuelve sus bytes.
func (uc *UseCase) InventoryPDF(ctx context.Context) ([]byte, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	financials, err := uc.financials.List()
	if err != nil {
		return nil, err
	}

	now := time.Now().In(uc.loc)
	data := Data{
		AppName:         uc.appName,
		GeneratedAt:     now,
		TotalProducts:   len(products),
		Products:        make([]ProductRow, 0, len(products)),
		TotalReceivable: decimal.Zero,
		TotalPayable:    decimal.Zero,
	}

	for _, p := range products {
		data.TotalStock += p.Stock
		data.Products = append(data.Products, ProductRow{
			Code:      p.Code,
			Name:      p.Name,
			Category:  p.Category,
			Stock:     p.Stock,
			MinStock:  p.MinStock,
			SalePrice: p.SalePrice,
			Margin:    p.MarginPercent().Round(1),
			LowStock:  p.LowStock(),
		})
	}

	today := entity.DateOf(now)
	for _, e := range financials {
		if !e.Pending() {
			continue
		}
		switch e.Type {
		case entity.FinancialTypeReceivable:
			data.TotalReceivable = data.TotalReceivable.Add(e.Amount)
		case entity.FinancialTypePayable:
			data.TotalPayable = data.TotalPayable.Add(e.Amount)
		}
		if e.Overdue(today) {
			data.OverduePending++
		}
	}

	return uc.generator.GenerateInventoryReport(ctx, data)
}
