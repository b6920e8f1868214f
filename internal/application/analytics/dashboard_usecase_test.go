package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/estoque-api/internal/application/analytics"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/infrastructure/datastore"
	"github.com/estoquepro/estoque-api/internal/infrastructure/storage"
	"github.com/estoquepro/estoque-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *analytics.DashboardUseCase
	products  *datastore.ProductRepo
	movements *datastore.MovementRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := datastore.Open(storage.NewMemoryStore(), logger.Nop())
	require.NoError(t, err)
	products := datastore.NewProductRepository(store)
	movements := datastore.NewMovementRepository(store)
	return &fixture{
		uc:        analytics.NewDashboardUseCase(products, movements),
		products:  products,
		movements: movements,
	}
}

func (f *fixture) seedProduct(t *testing.T, id string, stock, minStock int) {
	t.Helper()
	require.NoError(t, f.products.Create(&entity.Product{
		ID: id, Code: "C-" + id, Name: "Produto " + id,
		MinStock:      minStock,
		PurchasePrice: decimal.NewFromInt(10),
		SalePrice:     decimal.NewFromInt(15),
		Stock:         stock,
		CreatedAt:     time.Now(),
	}))
}

func (f *fixture) seedMovement(t *testing.T, id, tipo string, qty int, date time.Time) {
	t.Helper()
	require.NoError(t, f.movements.Prepend(&entity.Movement{
		ID: id, Type: tipo, ProductID: "p1", ProductName: "Produto p1",
		Quantity: qty, Date: date,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_Vacio(t *testing.T) {
	f := newFixture(t)
	s, err := f.uc.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 0, s.TotalProducts)
	assert.Equal(t, 0, s.TotalStock)
	assert.Empty(t, s.LowStock)
	assert.Empty(t, s.RecentMovements)
}

func TestGetSummary_Totales(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 10, 5)
	f.seedProduct(t, "p2", 3, 5) // bajo mínimo
	f.seedProduct(t, "p3", 0, 0) // 0 <= 0: también bajo

	s, err := f.uc.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 3, s.TotalProducts)
	assert.Equal(t, 13, s.TotalStock)
	require.Len(t, s.LowStock, 2)
	assert.Equal(t, "p2", s.LowStock[0].ProductID, "orden natural de colección")
	assert.Equal(t, "p3", s.LowStock[1].ProductID)
}

func TestGetSummary_CorteMensual(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "p1", 100, 0)

	now := time.Now()
	f.seedMovement(t, "m1", entity.MovementTypeEntry, 10, now)
	f.seedMovement(t, "m2", entity.MovementTypeExit, 4, now)
	// Mes anterior: fuera del corte.
	f.seedMovement(t, "m3", entity.MovementTypeEntry, 99, now.AddDate(0, -1, 0))
	// Mismo mes del año pasado: también fuera (el corte compara mes Y año).
	f.seedMovement(t, "m4", entity.MovementTypeExit, 77, now.AddDate(-1, 0, 0))

	s, err := f.uc.GetSummary()
	require.NoError(t, err)
	assert.Equal(t, 10, s.MonthlyEntries)
	assert.Equal(t, 4, s.MonthlyExits)
}

func TestGetSummary_TopeDeCinco(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 8; i++ {
		f.seedProduct(t, fmt.Sprintf("p%d", i), 0, 5) // todos bajo mínimo
	}
	for i := 0; i < 8; i++ {
		f.seedMovement(t, fmt.Sprintf("m%d", i), entity.MovementTypeEntry, 1, time.Now())
	}

	s, err := f.uc.GetSummary()
	require.NoError(t, err)
	assert.Len(t, s.LowStock, 5, "el widget de stock bajo se corta en 5")
	require.Len(t, s.RecentMovements, 5, "los recientes se cortan en 5")
	assert.Equal(t, "m7", s.RecentMovements[0].ID, "el último registrado encabeza")
}
