package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/estoque-api/internal/application/report"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/infrastructure/datastore"
	"github.com/estoquepro/estoque-api/internal/infrastructure/storage"
	"github.com/estoquepro/estoque-api/pkg/logger"
)

// captureGenerator retiene los datos recibidos en lugar de renderizar.
type captureGenerator struct {
	data report.Data
}

func (g *captureGenerator) GenerateInventoryReport(_ context.Context, data report.Data) ([]byte, error) {
	g.data = data
	return []byte("%PDF-"), nil
}

func TestInventoryPDF_ArmaLosDatos(t *testing.T) {
	store, err := datastore.Open(storage.NewMemoryStore(), logger.Nop())
	require.NoError(t, err)
	products := datastore.NewProductRepository(store)
	financials := datastore.NewFinancialRepository(store)

	require.NoError(t, products.Create(&entity.Product{
		ID: "p1", Code: "CAF-001", Name: "Café", Category: "Bebidas",
		MinStock:      5,
		PurchasePrice: decimal.NewFromInt(10),
		SalePrice:     decimal.NewFromInt(15),
		Stock:         3, // bajo mínimo
		CreatedAt:     time.Now(),
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: "p2", Code: "SAL-001", Name: "Sal",
		PurchasePrice: decimal.NewFromInt(2),
		SalePrice:     decimal.NewFromInt(3),
		Stock:         40,
		CreatedAt:     time.Now(),
	}))
	require.NoError(t, financials.CreateBatch([]entity.FinancialEntry{
		{ID: "f1", Type: entity.FinancialTypePayable, Description: "Atrasada",
			Amount:  decimal.NewFromInt(100),
			DueDate: entity.NewDate(2020, time.January, 1), // vencida hace años
			Status:  entity.FinancialStatusPending},
		{ID: "f2", Type: entity.FinancialTypeReceivable, Description: "Paga",
			Amount:  decimal.NewFromInt(999),
			DueDate: entity.NewDate(2030, time.January, 1),
			Status:  entity.FinancialStatusPaid},
	}))

	gen := &captureGenerator{}
	uc := report.NewUseCase(products, financials, gen, "estoque-pro", time.UTC)

	pdf, err := uc.InventoryPDF(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	d := gen.data
	assert.Equal(t, "estoque-pro", d.AppName)
	assert.False(t, d.GeneratedAt.IsZero())
	assert.Equal(t, 2, d.TotalProducts)
	assert.Equal(t, 43, d.TotalStock)

	require.Len(t, d.Products, 2)
	assert.True(t, d.Products[0].LowStock, "Café con stock 3 y mínimo 5 se marca bajo")
	assert.False(t, d.Products[1].LowStock)
	assert.True(t, d.Products[0].Margin.Equal(decimal.NewFromInt(50)))

	assert.True(t, d.TotalPayable.Equal(decimal.NewFromInt(100)))
	assert.True(t, d.TotalReceivable.IsZero(), "la entrada pagada no suma")
	assert.Equal(t, 1, d.OverduePending)
}
